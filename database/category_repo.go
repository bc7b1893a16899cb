package database

import (
	"github.com/altos-estudio/altos-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// FindAll returns every category ordered by its order column.
func (r *CategoryRepo) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order(`"order" ASC`).Find(&categories).Error
	return categories, err
}

// FindEnabled returns the enabled categories ordered by their order column.
func (r *CategoryRepo) FindEnabled() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("enabled = ?", true).Order(`"order" ASC`).Find(&categories).Error
	return categories, err
}

// FindEnabledWithProjects returns the enabled categories whose slug matches
// the typology of at least one existing project, so the public navigation
// never shows an empty filter bucket.
func (r *CategoryRepo) FindEnabledWithProjects() ([]models.Category, error) {
	categories, err := r.FindEnabled()
	if err != nil {
		return nil, err
	}

	var typologies []string
	err = r.db.Model(&models.Project{}).Distinct().Pluck("typology", &typologies).Error
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool, len(typologies))
	for _, t := range typologies {
		used[t] = true
	}

	withProjects := make([]models.Category, 0, len(categories))
	for _, category := range categories {
		if used[category.Slug] {
			withProjects = append(withProjects, category)
		}
	}
	return withProjects, nil
}

// Toggle sets the enabled flag of one category.
func (r *CategoryRepo) Toggle(id uuid.UUID, enabled bool) error {
	res := r.db.Model(&models.Category{}).Where("id = ?", id).Update("enabled", enabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrder sets the order of one category.
func (r *CategoryRepo) UpdateOrder(id uuid.UUID, order int) error {
	res := r.db.Model(&models.Category{}).Where("id = ?", id).Update("order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of categories.
func (r *CategoryRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
