package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site, the API endpoints and the authenticated
// admin dashboard.
func setupRoutes(r chi.Router, handlers *routeHandlers, sessions sessionMiddleware) {
	r.Use(ColoredHTTPLoggingMiddleware)

	// API endpoints
	r.Post("/api/contact", handlers.contactHandler.submit())
	r.With(sessions.require).Post("/api/upload", handlers.uploadHandler.upload())

	// Admin dashboard
	r.Route("/admin", func(r chi.Router) {
		r.With(sessions.redirectAuthenticated).Get("/login", handlers.authHandler.loginScreen())
		r.Post("/login", handlers.authHandler.login())
		r.Post("/logout", handlers.authHandler.logout())
		r.Post("/register", handlers.authHandler.register())

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(sessions.require)

			r.Get("/", handlers.dashboardHandler.overview())

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", handlers.projectHandler.getAllProjects())
				r.Post("/", handlers.projectHandler.createProject())
				r.Get("/{projectID}", handlers.projectHandler.getProject())
				r.Put("/{projectID}", handlers.projectHandler.updateProject())
				r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
			})

			r.Route("/featured-projects", func(r chi.Router) {
				r.Get("/", handlers.featuredProjectHandler.list())
				r.Post("/", handlers.featuredProjectHandler.add())
				r.Put("/reorder", handlers.featuredProjectHandler.reorder())
				r.Patch("/{featuredID}/toggle", handlers.featuredProjectHandler.toggle())
				r.Delete("/{featuredID}", handlers.featuredProjectHandler.remove())
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", handlers.categoryHandler.list())
				r.Patch("/{categoryID}/toggle", handlers.categoryHandler.toggle())
				r.Patch("/{categoryID}/order", handlers.categoryHandler.updateOrder())
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", handlers.tagHandler.list())
				r.Post("/", handlers.tagHandler.create())
				r.Patch("/{tagID}/toggle", handlers.tagHandler.toggle())
				r.Patch("/{tagID}/order", handlers.tagHandler.updateOrder())
				r.Delete("/{tagID}", handlers.tagHandler.remove())
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", handlers.settingsHandler.profile())
				r.Post("/password", handlers.settingsHandler.changePassword())
			})
		})
	})

	// Public site, locale-prefixed
	r.Route("/{locale}", func(r chi.Router) {
		r.Use(localeMiddleware)

		r.Get("/", handlers.publicHandler.home())
		r.Get("/projects", handlers.publicHandler.projects())
		r.Get("/projects/{slug}", handlers.publicHandler.projectDetail())
		r.Get("/about", handlers.publicHandler.page("about"))
		r.Get("/services", handlers.publicHandler.page("services"))
		r.Get("/contact", handlers.publicHandler.page("contact"))
	})

	// Unprefixed public paths redirect to the preferred locale
	r.Get("/", redirectToLocale)
	r.NotFound(redirectToLocale)
}
