package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/altos-estudio/altos-backend/cache"
	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var categoryPaths = []string{"/", "/projects", "/admin/dashboard/categories"}

type categoryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	categories  *database.CategoryRepo
	renderCache *cache.Cache
}

func newCategoryHandler(categories *database.CategoryRepo, renderCache *cache.Cache) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		categories:  categories,
		renderCache: renderCache,
	}
}

// list returns every category in display order. Query failures degrade to an
// empty list.
func (h categoryHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categories.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch categories")
			categories = []models.Category{}
		}
		h.responder.WriteJSON(w, map[string]any{"categories": categories})
	}
}

func (h categoryHandler) toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.categories.Toggle(id, body.Enabled); err != nil {
			h.logger.Error().Err(err).Msg("Failed to toggle category")
			status := http.StatusInternalServerError
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusNotFound
			}
			h.responder.WriteJSONStatus(w, status, ActionResult{
				Success: false,
				Message: "Error al actualizar la categoría",
			})
			return
		}

		h.renderCache.Invalidate(categoryPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true, Message: "Categoría actualizada exitosamente"})
	}
}

func (h categoryHandler) updateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		var body struct {
			Order int `json:"order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.categories.UpdateOrder(id, body.Order); err != nil {
			h.logger.Error().Err(err).Msg("Failed to update category order")
			status := http.StatusInternalServerError
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusNotFound
			}
			h.responder.WriteJSONStatus(w, status, ActionResult{
				Success: false,
				Message: "Error al actualizar el orden",
			})
			return
		}

		h.renderCache.Invalidate(categoryPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true, Message: "Orden actualizado exitosamente"})
	}
}
