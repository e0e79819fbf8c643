// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/eventsourced-catalog/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	catalogHandler *handlers.CatalogHandler,
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
		r.Post("/items", catalogHandler.CreateItem)
		r.Get("/items/{id}", catalogHandler.GetItem)
		r.Patch("/items/{id}", catalogHandler.UpdateItem)
		r.Get("/items/{id}/events", catalogHandler.ListEvents)
		r.Post("/items/{id}/retire", catalogHandler.RetireItem)

		// Variants are entities of the item and share its stream.
		r.Post("/items/{id}/variants", catalogHandler.AddVariant)
		r.Patch("/items/{id}/variants/{variantId}", catalogHandler.ChangeVariantPrice)
	})

	return r
}
