package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectTranslation holds the translated text of a project for one locale.
// The default-locale (Spanish) text lives on the Project row itself.
type ProjectTranslation struct {
	ID               uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID        uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_project_translation_locale;constraint:OnDelete:CASCADE"`
	Locale           string    `json:"locale" db:"locale" gorm:"type:text;not null;uniqueIndex:idx_project_translation_locale"`
	Title            string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description      string    `json:"description" db:"description" gorm:"type:text;not null"`
	ShortDescription string    `json:"shortDescription" db:"short_description" gorm:"type:text;not null"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}

func (t *ProjectTranslation) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
