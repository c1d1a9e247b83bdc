// Package handlers provides HTTP handlers for archive operations.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aristath/meridian/internal/domain"
	"github.com/aristath/meridian/internal/modules/archive"
	"github.com/aristath/meridian/internal/modules/chart"
	"github.com/rs/zerolog"
)

// ChartServiceInterface computes readings for archival.
// Used by handlers to enable testing with mocks.
type ChartServiceInterface interface {
	ComputeReading(input chart.BirthInput) (chart.Reading, error)
}

// Handler handles archive HTTP requests
type Handler struct {
	repo    *archive.Repository
	service ChartServiceInterface
	log     zerolog.Logger
}

// NewHandler creates a new archive handler
func NewHandler(repo *archive.Repository, service ChartServiceInterface, log zerolog.Logger) *Handler {
	return &Handler{
		repo:    repo,
		service: service,
		log:     log.With().Str("handler", "archive").Logger(),
	}
}

// HandleArchiveReading handles POST /api/archive: compute a reading from
// birth input and persist it in one step.
func (h *Handler) HandleArchiveReading(w http.ResponseWriter, r *http.Request) {
	var input chart.BirthInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	reading, err := h.service.ComputeReading(input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.log.Debug().Err(err).Msg("Rejected archive request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Failed to compute reading for archive")
		http.Error(w, "Failed to compute reading", http.StatusInternalServerError)
		return
	}

	id, err := h.repo.Save(reading)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to archive reading")
		http.Error(w, "Failed to archive reading", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data": map[string]interface{}{
			"id":      id,
			"reading": reading,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleListReadings handles GET /api/archive
func (h *Handler) HandleListReadings(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	summaries, err := h.repo.List(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list readings")
		http.Error(w, "Failed to list readings", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": summaries,
		"metadata": map[string]interface{}{
			"count":     len(summaries),
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetReading handles GET /api/archive/{id}
func (h *Handler) HandleGetReading(w http.ResponseWriter, r *http.Request, id string) {
	record, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			http.Error(w, "Reading not found", http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("id", id).Msg("Failed to get reading")
		http.Error(w, "Failed to get reading", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"id":         record.ID,
			"day_master": record.DayMaster,
			"sun_sign":   record.SunSign,
			"created_at": record.CreatedAt.Format(time.RFC3339),
			"reading":    record.Reading,
		},
		"metadata": map[string]interface{}{
			"timestamp": time.Now().Format(time.RFC3339),
		},
	})
}

// HandleDeleteReading handles DELETE /api/archive/{id}
func (h *Handler) HandleDeleteReading(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			http.Error(w, "Reading not found", http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("id", id).Msg("Failed to delete reading")
		http.Error(w, "Failed to delete reading", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
