package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all chart routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/chart", func(r chi.Router) {
		r.Post("/", h.HandleComputeReading)
		r.Post("/pillars", h.HandleComputePillars)
		r.Get("/elements", h.HandleGetHarmonyMatrix)
	})
}
