// Package handlers provides HTTP handlers for chart reading operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/chart"
	"github.com/rs/zerolog"
)

// Handler handles chart HTTP requests
type Handler struct {
	service *chart.Service
	log     zerolog.Logger
}

// NewHandler creates a new chart handler
func NewHandler(service *chart.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "chart").Logger(),
	}
}

// HandleComputeReading handles POST /api/chart
func (h *Handler) HandleComputeReading(w http.ResponseWriter, r *http.Request) {
	var input chart.BirthInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reading, err := h.service.ComputeReading(input)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": reading,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleComputePillars handles POST /api/chart/pillars
func (h *Handler) HandleComputePillars(w http.ResponseWriter, r *http.Request) {
	var input chart.BirthInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.ComputePillars(input)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": result,
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetHarmonyMatrix handles GET /api/chart/elements
func (h *Handler) HandleGetHarmonyMatrix(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": h.service.HarmonyMatrix(),
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// writeComputeError maps pipeline errors to HTTP statuses: invalid birth
// data is the caller's fault, everything else is ours.
func (h *Handler) writeComputeError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		h.log.Debug().Err(err).Msg("Rejected invalid birth input")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.log.Error().Err(err).Msg("Failed to compute reading")
	http.Error(w, "Failed to compute reading", http.StatusInternalServerError)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
