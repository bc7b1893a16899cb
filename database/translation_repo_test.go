package database

import (
	"testing"

	"github.com/altos-estudio/altos-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationRepo_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewTranslationRepo(db)

	project := createProject(t, db, "casa-vinedo")

	first := models.ProjectTranslation{
		ProjectID:        project.ID,
		Locale:           "en",
		Title:            "Vineyard House",
		Description:      "A house among vines",
		ShortDescription: "Among vines",
	}
	require.NoError(t, repo.Upsert(&first))

	t.Run("second upsert overwrites instead of duplicating", func(t *testing.T) {
		second := models.ProjectTranslation{
			ProjectID:        project.ID,
			Locale:           "en",
			Title:            "Vineyard Residence",
			Description:      "Rewritten",
			ShortDescription: "Rewritten short",
		}
		require.NoError(t, repo.Upsert(&second))

		var count int64
		require.NoError(t, db.Model(&models.ProjectTranslation{}).
			Where("project_id = ? AND locale = ?", project.ID, "en").
			Count(&count).Error)
		assert.EqualValues(t, 1, count)

		stored, err := repo.FindForProject(project.ID, "en")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Vineyard Residence", stored.Title)
		assert.Equal(t, "Rewritten", stored.Description)
	})

	t.Run("locales stay independent", func(t *testing.T) {
		japanese := models.ProjectTranslation{
			ProjectID:        project.ID,
			Locale:           "ja",
			Title:            "ぶどう園の家",
			Description:      "説明",
			ShortDescription: "短い説明",
		}
		require.NoError(t, repo.Upsert(&japanese))

		stored, err := repo.FindForProject(project.ID, "en")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Vineyard Residence", stored.Title)
	})
}

func TestTranslationRepo_FindForProject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTranslationRepo(db)

	project := createProject(t, db, "sin-traduccion")

	found, err := repo.FindForProject(project.ID, "en")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTranslationRepo_FindForProjects(t *testing.T) {
	db := newTestDB(t)
	repo := NewTranslationRepo(db)

	p1 := createProject(t, db, "lote-1")
	p2 := createProject(t, db, "lote-2")

	require.NoError(t, repo.Upsert(&models.ProjectTranslation{
		ProjectID:        p1.ID,
		Locale:           "pt",
		Title:            "Lote Um",
		Description:      "d",
		ShortDescription: "s",
	}))

	byProject, err := repo.FindForProjects([]uuid.UUID{p1.ID, p2.ID}, "pt")
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, "Lote Um", byProject[p1.ID].Title)

	empty, err := repo.FindForProjects(nil, "pt")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTranslationRepo_DeleteForProject(t *testing.T) {
	db := newTestDB(t)
	repo := NewTranslationRepo(db)

	project := createProject(t, db, "borrar")
	for _, locale := range []string{"en", "zh"} {
		require.NoError(t, repo.Upsert(&models.ProjectTranslation{
			ProjectID:        project.ID,
			Locale:           locale,
			Title:            "t",
			Description:      "d",
			ShortDescription: "s",
		}))
	}

	require.NoError(t, repo.DeleteForProject(project.ID))

	var count int64
	require.NoError(t, db.Model(&models.ProjectTranslation{}).
		Where("project_id = ?", project.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
