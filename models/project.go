package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project statuses accepted by the admin forms.
const (
	StatusCompleted    = "completed"
	StatusInProgress   = "in-progress"
	StatusConcept      = "concept"
	StatusDesign       = "design"
	StatusConstruction = "construction"
)

// Project typologies. Category slugs match these values, which is what ties
// the public category filter to projects.
const (
	TypologyIndustrial  = "industrial"
	TypologyResidential = "residential"
	TypologyCommercial  = "commercial"
	TypologyArt         = "art"
)

// Project represents a portfolio project. The images, tags and team columns
// hold serialized JSON text; use the accessor methods to decode them.
type Project struct {
	ID               uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Slug             string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title            string    `json:"title" db:"title" gorm:"type:text;not null"`
	Location         string    `json:"location" db:"location" gorm:"type:text;not null"`
	Year             string    `json:"year" db:"year" gorm:"type:text;not null"`
	Status           string    `json:"status" db:"status" gorm:"type:text;not null"`
	Typology         string    `json:"typology" db:"typology" gorm:"type:text;not null"`
	Description      string    `json:"description" db:"description" gorm:"type:text;not null"`
	ShortDescription string    `json:"shortDescription" db:"short_description" gorm:"type:text;not null"`
	Images           string    `json:"images" db:"images" gorm:"type:text;not null"`
	FeaturedImage    string    `json:"featuredImage" db:"featured_image" gorm:"type:text;not null"`
	Tags             *string   `json:"tags,omitempty" db:"tags" gorm:"type:text"`
	Area             *string   `json:"area,omitempty" db:"area" gorm:"type:text"`
	Client           *string   `json:"client,omitempty" db:"client" gorm:"type:text"`
	Team             *string   `json:"team,omitempty" db:"team" gorm:"type:text"`
	Featured         bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	Popular          bool      `json:"popular" db:"popular" gorm:"not null;default:false"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`

	Translations []ProjectTranslation `json:"translations,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TeamGroup is one entry of a project's team column: a role and the people
// filling it.
type TeamGroup struct {
	Role    string   `json:"role"`
	Members []string `json:"members"`
}

// ImageList decodes the images column. Absent or malformed JSON decodes to an
// empty list, never an error.
func (p *Project) ImageList() []string {
	return decodeStringList(p.Images)
}

// TagList decodes the tags column with the same fallback as ImageList.
func (p *Project) TagList() []string {
	if p.Tags == nil {
		return []string{}
	}
	return decodeStringList(*p.Tags)
}

// TeamList decodes the team column with the same fallback as ImageList.
func (p *Project) TeamList() []TeamGroup {
	if p.Team == nil {
		return []TeamGroup{}
	}
	var groups []TeamGroup
	if err := json.Unmarshal([]byte(*p.Team), &groups); err != nil || groups == nil {
		return []TeamGroup{}
	}
	return groups
}

func decodeStringList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil || list == nil {
		return []string{}
	}
	return list
}
