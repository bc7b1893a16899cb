package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeaturedProject promotes a project into the curated homepage subset. A
// project can be featured at most once; the unique index on project_id is
// what the add operation's duplicate detection relies on.
type FeaturedProject struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;uniqueIndex"`
	Order     int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
	Enabled   bool      `json:"enabled" db:"enabled" gorm:"not null;default:true"`

	Project Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (f *FeaturedProject) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
