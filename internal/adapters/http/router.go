// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/gtti-registration/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	wizardHandler *handlers.WizardHandler,
	draftHandler *handlers.DraftHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/draft", draftHandler.GetDraft)
		r.Delete("/draft", draftHandler.DeleteDraft)
		r.Get("/summary", draftHandler.Summary)
		r.Post("/mask", draftHandler.Mask)
	})

	// Wizard pages. Static routes win over {page}.
	r.Get("/", wizardHandler.Index)
	r.Post("/reset", wizardHandler.Reset)
	r.Get("/{page}", wizardHandler.Show)
	r.Post("/{page}/save", wizardHandler.Save)
	r.Post("/{page}/next", wizardHandler.Next)
	r.Post("/{page}/prev", wizardHandler.Previous)
	r.Post("/{page}/submit", wizardHandler.Submit)

	return r
}
