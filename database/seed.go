package database

import (
	"errors"

	"github.com/altos-estudio/altos-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var seedCategories = []models.Category{
	{Slug: models.TypologyIndustrial, Name: "Industrial", Enabled: true, Order: 0},
	{Slug: models.TypologyResidential, Name: "Residencial", Enabled: true, Order: 1},
	{Slug: models.TypologyCommercial, Name: "Comercial", Enabled: true, Order: 2},
	{Slug: models.TypologyArt, Name: "Arte", Enabled: true, Order: 3},
}

var seedTags = []string{
	"Sustentable",
	"Hormigón visto",
	"Adaptive reuse",
	"Paisajismo",
	"Interiorismo",
}

// Seed inserts the baseline categories and tags, plus an admin account when
// adminEmail and adminPassword are set. Existing rows are left alone, so
// seeding is safe to run on every boot.
func Seed(db *gorm.DB, adminEmail, adminPassword string) error {
	for i := range seedCategories {
		category := seedCategories[i]
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&category).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}

	for i, name := range seedTags {
		tag := models.Tag{Name: name, Enabled: true, Order: i}
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.First(&existing, "email = ?", adminEmail).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:    adminEmail,
		Name:     "Admin",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	return db.Create(&admin).Error
}
