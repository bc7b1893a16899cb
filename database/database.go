package database

import (
	"github.com/altos-estudio/altos-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo         *ProjectRepo
	translationRepo     *TranslationRepo
	featuredProjectRepo *FeaturedProjectRepo
	categoryRepo        *CategoryRepo
	tagRepo             *TagRepo
	userRepo            *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:         NewProjectRepo(db),
		translationRepo:     NewTranslationRepo(db),
		featuredProjectRepo: NewFeaturedProjectRepo(db),
		categoryRepo:        NewCategoryRepo(db),
		tagRepo:             NewTagRepo(db),
		userRepo:            NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TranslationRepo() *TranslationRepo {
	return d.translationRepo
}

func (d Database) FeaturedProjectRepo() *FeaturedProjectRepo {
	return d.featuredProjectRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// AutoMigrate creates or updates the schema for every entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.ProjectTranslation{},
		&models.FeaturedProject{},
		&models.Category{},
		&models.Tag{},
		&models.User{},
	)
}
