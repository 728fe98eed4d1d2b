package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/keen-console/src/frontend"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(deps Dependencies, metrics *Metrics) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(PrivateSubnetOnly) // Restrict access to private subnets
	r.Use(CORS)
	r.Use(JSONContentType)
	if metrics != nil {
		r.Use(metrics.Middleware)
	}

	h := NewHandler(deps, metrics)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/apps", h.ListApps)
		r.Post("/apps/{app}/sessions", h.OpenSession)

		r.Get("/sessions", h.ListSessions)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.CloseSession)
			r.Put("/text", h.SetText)
			r.Post("/edits", h.ApplyEdit)
			r.Put("/toggles", h.Toggle)
			r.Post("/save", h.SaveSession)
		})

		r.Get("/status", h.GetStatus)
	})

	if metrics != nil {
		r.Handle("/metrics", metrics.Handler())
	}

	registerPprof(r)

	if deps.UIPath != "" {
		r.Handle("/*", frontend.Handler(deps.UIPath))
	}

	return r
}
