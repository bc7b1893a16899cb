package database

import (
	"errors"

	"github.com/altos-estudio/altos-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, most recently updated first.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("updated_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when it does not exist.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug, or nil when it does not exist.
// The match is exact and case-sensitive.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlugExcluding looks for another project carrying the slug, used by
// update to pre-check uniqueness before hitting the DB constraint.
func (r *ProjectRepo) FindBySlugExcluding(slug string, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ? AND id <> ?", slug, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPopular returns up to five projects flagged popular, most recently
// updated first.
func (r *ProjectRepo) FindPopular() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("popular = ?", true).Order("updated_at DESC").Limit(5).Find(&projects).Error
	return projects, err
}

// DistinctTypologies returns the typology values that at least one project
// uses. The public navigation hides category buckets outside this set.
func (r *ProjectRepo) DistinctTypologies() ([]string, error) {
	var typologies []string
	err := r.db.Model(&models.Project{}).Distinct().Pluck("typology", &typologies).Error
	return typologies, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of projects.
func (r *ProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
