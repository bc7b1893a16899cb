package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is a free-form label. Projects reference tags by name inside their
// serialized tags column, not by foreign key.
type Tag struct {
	ID      uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name    string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`
	Enabled bool      `json:"enabled" db:"enabled" gorm:"not null;default:true"`
	Order   int       `json:"order" db:"order" gorm:"column:order;not null;default:0"`
}

func (t *Tag) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
