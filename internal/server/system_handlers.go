package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aristath/meridian/internal/database"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandlers serves the system health endpoint.
type SystemHandlers struct {
	archiveDB *database.DB
	startedAt time.Time
	log       zerolog.Logger
}

// NewSystemHandlers creates system handlers over the archive database.
func NewSystemHandlers(archiveDB *database.DB, log zerolog.Logger) *SystemHandlers {
	return &SystemHandlers{
		archiveDB: archiveDB,
		startedAt: time.Now(),
		log:       log.With().Str("handler", "system").Logger(),
	}
}

// HandleHealth handles GET /api/health: host stats plus archive DB status.
func (h *SystemHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	cpuPct, memPct := h.getSystemStats()

	dbStatus := "ok"
	if h.archiveDB != nil {
		if err := h.archiveDB.QuickCheck(r.Context()); err != nil {
			h.log.Error().Err(err).Msg("Archive database ping failed")
			dbStatus = "unreachable"
		}
	} else {
		dbStatus = "not_configured"
	}

	var dbSizeBytes int64
	if h.archiveDB != nil {
		if stats, err := h.archiveDB.GetStats(); err == nil {
			dbSizeBytes = stats.SizeBytes
		}
	}

	status := http.StatusOK
	overall := "healthy"
	if dbStatus != "ok" {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	response := map[string]interface{}{
		"status":         overall,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
		"cpu_percent":    cpuPct,
		"memory_percent": memPct,
		"archive_db": map[string]interface{}{
			"status":     dbStatus,
			"size_bytes": dbSizeBytes,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode health response")
	}
}

// getSystemStats calculates CPU and RAM usage percentages.
// Uses a short 100ms sampling interval so the endpoint stays responsive.
func (h *SystemHandlers) getSystemStats() (float64, float64) {
	cpuPercent, err := cpu.Percent(100*time.Millisecond, false)
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get CPU percentage")
		cpuPercent = []float64{0}
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		h.log.Warn().Err(err).Msg("Failed to get memory statistics")
		return 0, 0
	}

	cpuAvg := 0.0
	if len(cpuPercent) > 0 {
		cpuAvg = cpuPercent[0]
	}

	return cpuAvg, memStat.UsedPercent
}
