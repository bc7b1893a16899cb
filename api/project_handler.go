package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/altos-estudio/altos-backend/cache"
	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/i18n"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// projectPaths are the cached renders a project write makes stale.
var projectPaths = []string{"/", "/projects", "/admin/dashboard/projects"}

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projects     *database.ProjectRepo
	translations *database.TranslationRepo
	renderCache  *cache.Cache
	validate     *validator.Validate
}

func newProjectHandler(projects *database.ProjectRepo, translations *database.TranslationRepo, renderCache *cache.Cache, validate *validator.Validate) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projects:     projects,
		translations: translations,
		renderCache:  renderCache,
		validate:     validate,
	}
}

// projectPayload is the admin form submission for creating or updating a
// project. Translations carry the non-default locales; blank fields within a
// submitted translation fall back to the default-locale text.
type projectPayload struct {
	Slug             string                        `json:"slug" validate:"required"`
	Title            string                        `json:"title" validate:"required"`
	Location         string                        `json:"location" validate:"required"`
	Year             string                        `json:"year" validate:"required"`
	Status           string                        `json:"status" validate:"required,oneof=completed in-progress concept design construction"`
	Typology         string                        `json:"typology" validate:"required,oneof=industrial residential commercial art"`
	Description      string                        `json:"description" validate:"required"`
	ShortDescription string                        `json:"shortDescription" validate:"required"`
	Images           []string                      `json:"images" validate:"required,min=1"`
	FeaturedImage    string                        `json:"featuredImage" validate:"required"`
	Tags             []string                      `json:"tags"`
	Area             string                        `json:"area"`
	Client           string                        `json:"client"`
	Team             []models.TeamGroup            `json:"team"`
	Featured         bool                          `json:"featured"`
	Popular          bool                          `json:"popular"`
	Translations     map[string]translationFields `json:"translations"`
}

type translationFields struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`
}

func (p projectPayload) empty(t translationFields) bool {
	return t.Title == "" && t.Description == "" && t.ShortDescription == ""
}

// toModel serializes the list fields into their JSON text columns.
func (p projectPayload) toModel() models.Project {
	project := models.Project{
		Slug:             p.Slug,
		Title:            p.Title,
		Location:         p.Location,
		Year:             p.Year,
		Status:           p.Status,
		Typology:         p.Typology,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Images:           marshalList(p.Images),
		FeaturedImage:    p.FeaturedImage,
		Featured:         p.Featured,
		Popular:          p.Popular,
	}
	if len(p.Tags) > 0 {
		tags := marshalList(p.Tags)
		project.Tags = &tags
	}
	if p.Area != "" {
		area := p.Area
		project.Area = &area
	}
	if p.Client != "" {
		client := p.Client
		project.Client = &client
	}
	if len(p.Team) > 0 {
		team := marshalAny(p.Team)
		project.Team = &team
	}
	return project
}

func marshalList(list []string) string {
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func marshalAny(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// fieldErrors flattens validator output into a per-field message map.
func fieldErrors(err error) map[string][]string {
	flat := make(map[string][]string)
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		flat["payload"] = []string{err.Error()}
		return flat
	}
	for _, fe := range validationErrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required", "min":
			flat[field] = append(flat[field], field+" is required")
		case "oneof":
			flat[field] = append(flat[field], field+" must be one of: "+fe.Param())
		default:
			flat[field] = append(flat[field], field+" is invalid")
		}
	}
	return flat
}

// upsertTranslations writes one translation row per non-default locale that
// has at least one translated field, filling blanks from the default-locale
// text.
func (h projectHandler) upsertTranslations(projectID uuid.UUID, payload projectPayload) {
	for _, locale := range i18n.ContentLocales {
		fields, ok := payload.Translations[locale]
		if !ok || payload.empty(fields) {
			continue
		}

		translation := models.ProjectTranslation{
			ProjectID:        projectID,
			Locale:           locale,
			Title:            fields.Title,
			Description:      fields.Description,
			ShortDescription: fields.ShortDescription,
		}
		if translation.Title == "" {
			translation.Title = payload.Title
		}
		if translation.Description == "" {
			translation.Description = payload.Description
		}
		if translation.ShortDescription == "" {
			translation.ShortDescription = payload.ShortDescription
		}

		if err := h.translations.Upsert(&translation); err != nil {
			h.logger.Error().Err(err).Str("locale", locale).Msg("Failed to upsert project translation")
			// Keep writing the remaining locales.
		}
	}
}

// getAllProjects retrieves all projects, most recently updated first. Query
// failures degrade to an empty list.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch projects")
			projects = []models.Project{}
		}

		h.responder.WriteJSON(w, map[string]any{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

// getProject retrieves one project by ID.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject validates the submission, pre-checks slug uniqueness for a
// friendly message, writes the project and its translations.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(payload); err != nil {
			h.responder.WriteValidationErrors(w, fieldErrors(err))
			return
		}

		existing, err := h.projects.FindBySlug(payload.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing != nil {
			h.responder.WriteJSONStatus(w, http.StatusConflict, ActionResult{
				Success: false,
				Message: "A project with this slug already exists.",
			})
			return
		}

		project := payload.toModel()
		if err := h.projects.Add(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to create project")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ActionResult{
				Success: false,
				Message: "Failed to create project.",
			})
			return
		}

		h.upsertTranslations(project.ID, payload)
		h.renderCache.Invalidate(projectPaths...)

		h.responder.WriteJSONStatus(w, http.StatusCreated, ActionResult{
			Success: true,
			Message: "Project created successfully!",
			Data:    project,
		})
	}
}

// updateProject validates the submission and rewrites the project and its
// translations.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.validate.Struct(payload); err != nil {
			h.responder.WriteValidationErrors(w, fieldErrors(err))
			return
		}

		taken, err := h.projects.FindBySlugExcluding(payload.Slug, projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if taken != nil {
			h.responder.WriteJSONStatus(w, http.StatusConflict, ActionResult{
				Success: false,
				Message: "A project with this slug already exists.",
			})
			return
		}

		project := payload.toModel()
		project.ID = projectID
		project.CreatedAt = existing.CreatedAt

		if err := h.projects.Update(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to update project")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ActionResult{
				Success: false,
				Message: "Failed to update project.",
			})
			return
		}

		h.upsertTranslations(projectID, payload)
		h.renderCache.Invalidate(projectPaths...)

		h.responder.WriteJSON(w, ActionResult{
			Success: true,
			Message: "Project updated successfully!",
			Data:    project,
		})
	}
}

// deleteProject deletes a project by ID.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
				return
			}
			h.logger.Error().Err(err).Msg("Failed to delete project")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ActionResult{
				Success: false,
				Message: "Failed to delete project.",
			})
			return
		}

		h.renderCache.Invalidate(projectPaths...)

		h.responder.WriteJSON(w, ActionResult{
			Success: true,
			Message: "Project deleted successfully!",
		})
	}
}
