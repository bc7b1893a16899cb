package database

import (
	"errors"

	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns every tag ordered by its order column.
func (r *TagRepo) FindAll() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order(`"order" ASC`).Find(&tags).Error
	return tags, err
}

// FindEnabled returns the enabled tags ordered by their order column.
func (r *TagRepo) FindEnabled() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("enabled = ?", true).Order(`"order" ASC`).Find(&tags).Error
	return tags, err
}

// Create inserts a new enabled tag after the current last one. A duplicate
// name returns errs.ErrConflict.
func (r *TagRepo) Create(name string) (*models.Tag, error) {
	var last models.Tag
	err := r.db.Order(`"order" DESC`).First(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := models.Tag{
		Name:    name,
		Enabled: true,
		Order:   last.Order + 1,
	}
	if err := r.db.Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrConflict
		}
		return nil, err
	}
	return &tag, nil
}

// Delete removes a tag by id.
func (r *TagRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Tag{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Toggle sets the enabled flag of one tag.
func (r *TagRepo) Toggle(id uuid.UUID, enabled bool) error {
	res := r.db.Model(&models.Tag{}).Where("id = ?", id).Update("enabled", enabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateOrder sets the order of one tag.
func (r *TagRepo) UpdateOrder(id uuid.UUID, order int) error {
	res := r.db.Model(&models.Tag{}).Where("id = ?", id).Update("order", order)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of tags.
func (r *TagRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Tag{}).Count(&count).Error
	return count, err
}
