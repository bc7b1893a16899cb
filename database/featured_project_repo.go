package database

import (
	"errors"

	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeaturedProjectRepo maintains the ordered, toggleable subset of projects
// shown on the homepage.
type FeaturedProjectRepo struct {
	db *gorm.DB
}

func NewFeaturedProjectRepo(db *gorm.DB) *FeaturedProjectRepo {
	return &FeaturedProjectRepo{db}
}

// ProjectSummary is the fixed subset of project fields joined onto a
// featured row for listing.
type ProjectSummary struct {
	ID               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Title            string    `json:"title"`
	FeaturedImage    string    `json:"featuredImage"`
	Location         string    `json:"location"`
	Year             string    `json:"year"`
	Status           string    `json:"status"`
	Typology         string    `json:"typology"`
	ShortDescription string    `json:"shortDescription"`
}

// FeaturedProjectDetails is a featured row with its project summary, the
// shape both the admin curation screen and the homepage consume.
type FeaturedProjectDetails struct {
	ID        uuid.UUID      `json:"id"`
	ProjectID uuid.UUID      `json:"projectId"`
	Order     int            `json:"order"`
	Enabled   bool           `json:"enabled"`
	Project   ProjectSummary `json:"project"`
}

func summaryOf(p models.Project) ProjectSummary {
	return ProjectSummary{
		ID:               p.ID,
		Slug:             p.Slug,
		Title:            p.Title,
		FeaturedImage:    p.FeaturedImage,
		Location:         p.Location,
		Year:             p.Year,
		Status:           p.Status,
		Typology:         p.Typology,
		ShortDescription: p.ShortDescription,
	}
}

func detailsOf(rows []models.FeaturedProject) []FeaturedProjectDetails {
	details := make([]FeaturedProjectDetails, 0, len(rows))
	for _, row := range rows {
		details = append(details, FeaturedProjectDetails{
			ID:        row.ID,
			ProjectID: row.ProjectID,
			Order:     row.Order,
			Enabled:   row.Enabled,
			Project:   summaryOf(row.Project),
		})
	}
	return details
}

// FindAll returns every featured row with its project, ordered ascending.
func (r *FeaturedProjectRepo) FindAll() ([]FeaturedProjectDetails, error) {
	var rows []models.FeaturedProject
	err := r.db.Preload("Project").Order(`"order" ASC`).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return detailsOf(rows), nil
}

// FindEnabled returns only the enabled featured rows, ordered ascending.
func (r *FeaturedProjectRepo) FindEnabled() ([]FeaturedProjectDetails, error) {
	var rows []models.FeaturedProject
	err := r.db.Preload("Project").Where("enabled = ?", true).Order(`"order" ASC`).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return detailsOf(rows), nil
}

// FindEnabledTranslated returns the enabled featured rows with title and
// short description overlaid from the project's translation for the given
// locale, when one exists.
func (r *FeaturedProjectRepo) FindEnabledTranslated(locale string) ([]FeaturedProjectDetails, error) {
	details, err := r.FindEnabled()
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}

	ids := make([]uuid.UUID, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ProjectID)
	}

	var translations []models.ProjectTranslation
	err = r.db.Where("project_id IN ? AND locale = ?", ids, locale).Find(&translations).Error
	if err != nil {
		return nil, err
	}

	byProject := make(map[uuid.UUID]models.ProjectTranslation, len(translations))
	for _, t := range translations {
		byProject[t.ProjectID] = t
	}

	for i := range details {
		if t, ok := byProject[details[i].ProjectID]; ok {
			if t.Title != "" {
				details[i].Project.Title = t.Title
			}
			if t.ShortDescription != "" {
				details[i].Project.ShortDescription = t.ShortDescription
			}
		}
	}
	return details, nil
}

// Add features a project at the end of the list: its order is one past the
// current maximum, or 0 when the list is empty. Featuring a project twice
// returns errs.ErrAlreadyFeatured.
func (r *FeaturedProjectRepo) Add(projectID uuid.UUID) (*models.FeaturedProject, error) {
	var current struct {
		Max *int
	}
	err := r.db.Model(&models.FeaturedProject{}).Select(`MAX("order") AS max`).Scan(&current).Error
	if err != nil {
		return nil, err
	}

	next := 0
	if current.Max != nil {
		next = *current.Max + 1
	}

	row := models.FeaturedProject{
		ProjectID: projectID,
		Order:     next,
		Enabled:   true,
	}
	if err := r.db.Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrAlreadyFeatured
		}
		return nil, err
	}
	return &row, nil
}

// Delete removes a featured row by its own id (not the project id).
func (r *FeaturedProjectRepo) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.FeaturedProject{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Toggle sets the enabled flag of one featured row. Order and project are
// untouched.
func (r *FeaturedProjectRepo) Toggle(id uuid.UUID, enabled bool) error {
	res := r.db.Model(&models.FeaturedProject{}).Where("id = ?", id).Update("enabled", enabled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reorder rewrites every row's order to its position in ids (0-based) inside
// a single transaction. An unknown id aborts the whole rewrite; no partial
// application survives.
func (r *FeaturedProjectRepo) Reorder(ids []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			res := tx.Model(&models.FeaturedProject{}).Where("id = ?", id).Update("order", position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// AvailableProjects returns every project not currently featured, newest
// first, for the admin "add" picker.
func (r *FeaturedProjectRepo) AvailableProjects() ([]ProjectSummary, error) {
	featured := r.db.Model(&models.FeaturedProject{}).Select("project_id")

	var projects []models.Project
	err := r.db.Where("id NOT IN (?)", featured).Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, summaryOf(p))
	}
	return summaries, nil
}

// Count returns the number of featured rows.
func (r *FeaturedProjectRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.FeaturedProject{}).Count(&count).Error
	return count, err
}
