package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a public navigation filter. Its slug matches a project
// typology value.
type Category struct {
	ID      uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Slug    string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Name    string    `json:"name" db:"name" gorm:"type:text;not null"`
	Enabled bool      `json:"enabled" db:"enabled" gorm:"not null;default:true"`
	Order   int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
