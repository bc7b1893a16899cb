package api

import (
	"encoding/json"
	"net/http"

	"github.com/altos-estudio/altos-backend/cache"
	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/i18n"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type publicHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	renderCache *cache.Cache
}

func newPublicHandler(db database.Database, renderCache *cache.Cache) publicHandler {
	logger := log.With().Str("handlerName", "publicHandler").Logger()

	return publicHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		renderCache: renderCache,
	}
}

// projectView is the public shape of a project: translated text overlaid and
// the serialized columns decoded into lists.
type projectView struct {
	ID               uuid.UUID          `json:"id"`
	Slug             string             `json:"slug"`
	Title            string             `json:"title"`
	Location         string             `json:"location"`
	Year             string             `json:"year"`
	Status           string             `json:"status"`
	Typology         string             `json:"typology"`
	Description      string             `json:"description"`
	ShortDescription string             `json:"shortDescription"`
	Images           []string           `json:"images"`
	FeaturedImage    string             `json:"featuredImage"`
	Tags             []string           `json:"tags"`
	Area             string             `json:"area,omitempty"`
	Client           string             `json:"client,omitempty"`
	Team             []models.TeamGroup `json:"team,omitempty"`
	Featured         bool               `json:"featured"`
	Popular          bool               `json:"popular"`
}

func newProjectView(p models.Project, t *models.ProjectTranslation) projectView {
	view := projectView{
		ID:               p.ID,
		Slug:             p.Slug,
		Title:            p.Title,
		Location:         p.Location,
		Year:             p.Year,
		Status:           p.Status,
		Typology:         p.Typology,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Images:           p.ImageList(),
		FeaturedImage:    p.FeaturedImage,
		Tags:             p.TagList(),
		Team:             p.TeamList(),
		Featured:         p.Featured,
		Popular:          p.Popular,
	}
	if p.Area != nil {
		view.Area = *p.Area
	}
	if p.Client != nil {
		view.Client = *p.Client
	}
	if t != nil {
		if t.Title != "" {
			view.Title = t.Title
		}
		if t.Description != "" {
			view.Description = t.Description
		}
		if t.ShortDescription != "" {
			view.ShortDescription = t.ShortDescription
		}
	}
	return view
}

// writeCached serves the cached render of this path when present; otherwise
// it renders through build, caches the result, and serves it.
func (h publicHandler) writeCached(w http.ResponseWriter, r *http.Request, build func() (any, error)) {
	if payload, ok := h.renderCache.Get(r.URL.Path); ok {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(payload)
		return
	}

	data, err := build()
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		h.responder.WriteError(w, err)
		return
	}

	h.renderCache.Set(r.URL.Path, payload)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(payload)
}

// home renders the landing page payload. Every listing degrades to empty on
// query failure; the home page never errors.
func (h publicHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := ctxLocale(r.Context())

		h.writeCached(w, r, func() (any, error) {
			featured, err := h.db.FeaturedProjectRepo().FindEnabledTranslated(locale)
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to fetch featured projects")
				featured = []database.FeaturedProjectDetails{}
			}

			categories, err := h.db.CategoryRepo().FindEnabledWithProjects()
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to fetch categories")
				categories = []models.Category{}
			}

			popular := h.translatedProjects(h.mustPopular(), locale)

			return map[string]any{
				"locale":           locale,
				"messages":         i18n.Messages(locale),
				"featuredProjects": featured,
				"categories":       categories,
				"popularProjects":  popular,
			}, nil
		})
	}
}

// projects renders the full portfolio listing with its filter data.
func (h publicHandler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := ctxLocale(r.Context())

		h.writeCached(w, r, func() (any, error) {
			all, err := h.db.ProjectRepo().FindAll()
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to fetch projects")
				all = []models.Project{}
			}

			categories, err := h.db.CategoryRepo().FindEnabledWithProjects()
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to fetch categories")
				categories = []models.Category{}
			}

			tags, err := h.db.TagRepo().FindEnabled()
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to fetch tags")
				tags = []models.Tag{}
			}

			return map[string]any{
				"locale":     locale,
				"messages":   i18n.Messages(locale),
				"projects":   h.translatedProjects(all, locale),
				"categories": categories,
				"tags":       tags,
			}, nil
		})
	}
}

// projectDetail renders one project by slug with its translation overlay.
func (h publicHandler) projectDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := ctxLocale(r.Context())
		slug := chi.URLParam(r, "slug")

		h.writeCached(w, r, func() (any, error) {
			project, err := h.db.ProjectRepo().FindBySlug(slug)
			if err != nil {
				return nil, wrapDatabaseError("find", "project", err)
			}
			if project == nil {
				return nil, errs.NewNotFoundError("project not found")
			}

			translation, err := h.db.TranslationRepo().FindForProject(project.ID, locale)
			if err != nil {
				h.logger.Error().Err(err).Msg("Failed to fetch project translation")
				translation = nil
			}

			return map[string]any{
				"locale":   locale,
				"messages": i18n.Messages(locale),
				"project":  newProjectView(*project, translation),
			}, nil
		})
	}
}

// page renders one of the static pages (about, services, contact).
func (h publicHandler) page(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := ctxLocale(r.Context())

		h.responder.WriteJSON(w, map[string]any{
			"locale":   locale,
			"page":     name,
			"messages": i18n.Messages(locale),
			"locales":  i18n.LocaleNames,
		})
	}
}

func (h publicHandler) mustPopular() []models.Project {
	popular, err := h.db.ProjectRepo().FindPopular()
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch popular projects")
		return []models.Project{}
	}
	return popular
}

// translatedProjects overlays the locale's translations onto a project list.
func (h publicHandler) translatedProjects(projects []models.Project, locale string) []projectView {
	ids := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}

	translations, err := h.db.TranslationRepo().FindForProjects(ids, locale)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to fetch project translations")
		translations = map[uuid.UUID]models.ProjectTranslation{}
	}

	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		var overlay *models.ProjectTranslation
		if t, ok := translations[p.ID]; ok {
			overlay = &t
		}
		views = append(views, newProjectView(p, overlay))
	}
	return views
}
