package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/altos-estudio/altos-backend/cache"
	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/errs"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// featuredPaths are the cached renders a curation change makes stale.
var featuredPaths = []string{"/", "/admin/dashboard/featured-projects"}

type featuredProjectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	featured    *database.FeaturedProjectRepo
	renderCache *cache.Cache
}

func newFeaturedProjectHandler(featured *database.FeaturedProjectRepo, renderCache *cache.Cache) featuredProjectHandler {
	logger := log.With().Str("handlerName", "featuredProjectHandler").Logger()

	return featuredProjectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		featured:    featured,
		renderCache: renderCache,
	}
}

// list returns the curated list plus the projects still available for
// featuring. Query failures degrade to empty lists rather than an error
// page.
func (h featuredProjectHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featured, err := h.featured.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch featured projects")
			featured = []database.FeaturedProjectDetails{}
		}

		available, err := h.featured.AvailableProjects()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch available projects")
			available = []database.ProjectSummary{}
		}

		h.responder.WriteJSON(w, map[string]any{
			"featured":  featured,
			"available": available,
		})
	}
}

// add features a project at the end of the list.
func (h featuredProjectHandler) add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ProjectID uuid.UUID `json:"projectId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProjectID == uuid.Nil {
			h.responder.WriteError(w, errs.NewBadRequestError("missing projectId"))
			return
		}

		row, err := h.featured.Add(body.ProjectID)
		if err != nil {
			if errors.Is(err, errs.ErrAlreadyFeatured) {
				h.responder.WriteJSONStatus(w, http.StatusConflict, ActionResult{
					Success: false,
					Error:   "Project is already featured",
				})
				return
			}
			h.logger.Error().Err(err).Msg("Failed to add featured project")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ActionResult{
				Success: false,
				Error:   "Failed to add featured project",
			})
			return
		}

		h.renderCache.Invalidate(featuredPaths...)
		h.responder.WriteJSONStatus(w, http.StatusCreated, ActionResult{Success: true, Data: row})
	}
}

// remove deletes a featured row by its id.
func (h featuredProjectHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "featuredID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid featuredID"))
			return
		}

		if err := h.featured.Delete(id); err != nil {
			h.logger.Error().Err(err).Msg("Failed to remove featured project")
			status := http.StatusInternalServerError
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusNotFound
			}
			h.responder.WriteJSONStatus(w, status, ActionResult{
				Success: false,
				Error:   "Failed to remove featured project",
			})
			return
		}

		h.renderCache.Invalidate(featuredPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true})
	}
}

// toggle flips the enabled flag of one featured row to an explicit value.
func (h featuredProjectHandler) toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "featuredID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid featuredID"))
			return
		}

		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.featured.Toggle(id, body.Enabled); err != nil {
			h.logger.Error().Err(err).Msg("Failed to toggle featured project")
			status := http.StatusInternalServerError
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusNotFound
			}
			h.responder.WriteJSONStatus(w, status, ActionResult{
				Success: false,
				Error:   "Failed to toggle featured project",
			})
			return
		}

		h.renderCache.Invalidate(featuredPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true})
	}
}

// reorder rewrites the whole list's order from the submitted id sequence.
// The rewrite is transactional: on failure no order changes.
func (h featuredProjectHandler) reorder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			IDs []uuid.UUID `json:"ids"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.IDs) == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("missing ids"))
			return
		}

		if err := h.featured.Reorder(body.IDs); err != nil {
			h.logger.Error().Err(err).Msg("Failed to reorder featured projects")
			h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ActionResult{
				Success: false,
				Error:   "Failed to reorder featured projects",
			})
			return
		}

		h.renderCache.Invalidate(featuredPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true})
	}
}
