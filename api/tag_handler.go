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

var tagPaths = []string{"/", "/projects", "/admin/dashboard/tags"}

type tagHandler struct {
	responder   Responder
	logger      zerolog.Logger
	tags        *database.TagRepo
	renderCache *cache.Cache
}

func newTagHandler(tags *database.TagRepo, renderCache *cache.Cache) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()

	return tagHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		tags:        tags,
		renderCache: renderCache,
	}
}

// list returns every tag in display order. Query failures degrade to an
// empty list.
func (h tagHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tags.FindAll()
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to fetch tags")
			tags = []models.Tag{}
		}
		h.responder.WriteJSON(w, map[string]any{"tags": tags})
	}
}

func (h tagHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name is required"))
			return
		}

		tag, err := h.tags.Create(body.Name)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to create tag")
			status := http.StatusInternalServerError
			if errs.IsConflict(err) {
				status = http.StatusConflict
			}
			h.responder.WriteJSONStatus(w, status, ActionResult{
				Success: false,
				Message: "Error al crear el tag",
			})
			return
		}

		h.renderCache.Invalidate(tagPaths...)
		h.responder.WriteJSONStatus(w, http.StatusCreated, ActionResult{
			Success: true,
			Message: "Tag creado exitosamente",
			Data:    tag,
		})
	}
}

func (h tagHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		if err := h.tags.Delete(id); err != nil {
			h.logger.Error().Err(err).Msg("Failed to delete tag")
			status := http.StatusInternalServerError
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusNotFound
			}
			h.responder.WriteJSONStatus(w, status, ActionResult{
				Success: false,
				Message: "Error al eliminar el tag",
			})
			return
		}

		h.renderCache.Invalidate(tagPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true, Message: "Tag eliminado exitosamente"})
	}
}

func (h tagHandler) toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		var body struct {
			Enabled bool `json:"enabled"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.tags.Toggle(id, body.Enabled); err != nil {
			h.logger.Error().Err(err).Msg("Failed to toggle tag")
			status := http.StatusInternalServerError
			if errors.Is(err, gorm.ErrRecordNotFound) {
				status = http.StatusNotFound
			}
			h.responder.WriteJSONStatus(w, status, ActionResult{
				Success: false,
				Message: "Error al actualizar el tag",
			})
			return
		}

		h.renderCache.Invalidate(tagPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true, Message: "Tag actualizado exitosamente"})
	}
}

func (h tagHandler) updateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		var body struct {
			Order int `json:"order"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := h.tags.UpdateOrder(id, body.Order); err != nil {
			h.logger.Error().Err(err).Msg("Failed to update tag order")
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

		h.renderCache.Invalidate(tagPaths...)
		h.responder.WriteJSON(w, ActionResult{Success: true, Message: "Orden actualizado exitosamente"})
	}
}
