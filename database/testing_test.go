package database

import (
	"fmt"
	"testing"

	"github.com/altos-estudio/altos-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database named after the test so parallel
// tests never share state, and migrates the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	return db
}

// createProject inserts a minimal valid project and returns it.
func createProject(t *testing.T, db *gorm.DB, slug string) models.Project {
	t.Helper()

	project := models.Project{
		Slug:             slug,
		Title:            "Title " + slug,
		Location:         "Montevideo",
		Year:             "2024",
		Status:           models.StatusCompleted,
		Typology:         models.TypologyResidential,
		Description:      "Description " + slug,
		ShortDescription: "Short " + slug,
		Images:           `["/uploads/a.webp"]`,
		FeaturedImage:    "/uploads/a.webp",
	}
	require.NoError(t, db.Create(&project).Error)
	return project
}
