package database

import (
	"errors"

	"github.com/altos-estudio/altos-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TranslationRepo struct {
	db *gorm.DB
}

func NewTranslationRepo(db *gorm.DB) *TranslationRepo {
	return &TranslationRepo{db}
}

// Upsert inserts the translation or, when the (project, locale) pair already
// exists, overwrites its text fields.
func (r *TranslationRepo) Upsert(translation *models.ProjectTranslation) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "locale"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "short_description"}),
	}).Create(translation).Error
}

// FindForProject returns the translation of one project for a locale, or nil
// when none exists.
func (r *TranslationRepo) FindForProject(projectID uuid.UUID, locale string) (*models.ProjectTranslation, error) {
	var translation models.ProjectTranslation
	err := r.db.First(&translation, "project_id = ? AND locale = ?", projectID, locale).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &translation, nil
}

// FindForProjects returns the translations of many projects for a locale,
// keyed by project id.
func (r *TranslationRepo) FindForProjects(projectIDs []uuid.UUID, locale string) (map[uuid.UUID]models.ProjectTranslation, error) {
	byProject := make(map[uuid.UUID]models.ProjectTranslation)
	if len(projectIDs) == 0 {
		return byProject, nil
	}

	var translations []models.ProjectTranslation
	err := r.db.Where("project_id IN ? AND locale = ?", projectIDs, locale).Find(&translations).Error
	if err != nil {
		return nil, err
	}
	for _, t := range translations {
		byProject[t.ProjectID] = t
	}
	return byProject, nil
}

// DeleteForProject removes every translation row of a project.
func (r *TranslationRepo) DeleteForProject(projectID uuid.UUID) error {
	return r.db.Delete(&models.ProjectTranslation{}, "project_id = ?", projectID).Error
}
