package api

import (
	"net/http"

	"github.com/altos-estudio/altos-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        database.Database
}

func newDashboardHandler(db database.Database) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// overview returns the entity counts shown on the dashboard landing page.
// Count failures log and report zero rather than failing the page.
func (h dashboardHandler) overview() http.HandlerFunc {
	count := func(name string, fn func() (int64, error)) int64 {
		n, err := fn()
		if err != nil {
			h.logger.Error().Err(err).Str("entity", name).Msg("Failed to count entities")
			return 0
		}
		return n
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session := ctxSession(r.Context())

		h.responder.WriteJSON(w, map[string]any{
			"user": map[string]any{
				"email": session.Email,
				"name":  session.Name,
				"role":  session.Role,
			},
			"counts": map[string]int64{
				"projects":         count("projects", h.db.ProjectRepo().Count),
				"featuredProjects": count("featured projects", h.db.FeaturedProjectRepo().Count),
				"categories":       count("categories", h.db.CategoryRepo().Count),
				"tags":             count("tags", h.db.TagRepo().Count),
			},
		})
	}
}
