package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public and authenticated route groups under /api
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Public read routes
		r.Get("/health", handlers.healthHandler.status())
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/category/{category}", handlers.projectHandler.getProjectsByCategory())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())
		r.Get("/images/{filename}", handlers.imageHandler.serveImage())

		// Mutating routes require a capability token
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/reorder", handlers.projectHandler.reorderProjects())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		})
	})
}
