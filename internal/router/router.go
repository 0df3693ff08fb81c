package router

import (
	"recipehub-admin-api/internal/handler"
	"recipehub-admin-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	RequestHandler *handler.RequestHandler
	CatalogHandler *handler.CatalogHandler
	VersionHandler *handler.VersionHandler
	AdminHandler   *handler.AdminHandler
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Actor)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID", "X-Requested-By"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Unified status endpoint for monitoring
	if cfg.Handler != nil {
		r.Get("/api/status", cfg.Handler.Status)
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check endpoints
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		// Change-request endpoints
		if cfg.RequestHandler != nil {
			r.Route("/requests", func(r chi.Router) {
				r.Post("/", cfg.RequestHandler.Submit)
				r.Get("/", cfg.RequestHandler.List)
				r.Route("/{request_id}", func(r chi.Router) {
					r.Get("/", cfg.RequestHandler.Get)
					r.Post("/advance", cfg.RequestHandler.Advance)
					r.Post("/reject", cfg.RequestHandler.Reject)
				})
			})
		}

		// Master-data catalog endpoints (read-only)
		if cfg.CatalogHandler != nil {
			r.Route("/catalog/{kind}", func(r chi.Router) {
				r.Get("/", cfg.CatalogHandler.Search)
				r.Get("/{code}", cfg.CatalogHandler.Find)
			})
		}

		// Version endpoints
		if cfg.VersionHandler != nil {
			r.Route("/versions", func(r chi.Router) {
				r.Get("/", cfg.VersionHandler.List)
				r.Get("/compare", cfg.VersionHandler.Compare)
				r.Get("/{version_id}/stores", cfg.VersionHandler.Stores)
			})
		}

		// Admin endpoints
		if cfg.AdminHandler != nil {
			r.Get("/admin/stats", cfg.AdminHandler.GetStats)
		}
	})

	return r
}
