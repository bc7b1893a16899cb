package api

import (
	"github.com/altos-estudio/altos-backend/cache"
	"github.com/altos-estudio/altos-backend/database"
	"github.com/altos-estudio/altos-backend/services"
	"github.com/go-playground/validator/v10"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, mailer services.Mailer, uploads *services.UploadService, renderCache *cache.Cache, sessions sessionMiddleware) *routeHandlers {
	validate := validator.New()

	return &routeHandlers{
		authHandler:            newAuthHandler(db.UserRepo(), sessions, validate),
		dashboardHandler:       newDashboardHandler(db),
		settingsHandler:        newSettingsHandler(db.UserRepo()),
		projectHandler:         newProjectHandler(db.ProjectRepo(), db.TranslationRepo(), renderCache, validate),
		featuredProjectHandler: newFeaturedProjectHandler(db.FeaturedProjectRepo(), renderCache),
		categoryHandler:        newCategoryHandler(db.CategoryRepo(), renderCache),
		tagHandler:             newTagHandler(db.TagRepo(), renderCache),
		contactHandler:         newContactHandler(mailer),
		uploadHandler:          newUploadHandler(uploads),
		publicHandler:          newPublicHandler(db, renderCache),
	}
}
