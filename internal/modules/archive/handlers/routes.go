package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all archive routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/archive", func(r chi.Router) {
		r.Post("/", h.HandleArchiveReading)
		r.Get("/", h.HandleListReadings)
		r.Get("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			h.HandleGetReading(w, r, id)
		})
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			h.HandleDeleteReading(w, r, id)
		})
	})
}
