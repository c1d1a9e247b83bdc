package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aristath/meridian/internal/modules/calendar"
	"github.com/aristath/meridian/internal/modules/chart"
	"github.com/aristath/meridian/internal/modules/fusion"
	"github.com/aristath/meridian/internal/modules/pillars"
	"github.com/aristath/meridian/internal/modules/quotes"
	"github.com/aristath/meridian/internal/modules/strength"
	"github.com/aristath/meridian/internal/modules/tengods"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *chi.Mux {
	t.Helper()
	log := zerolog.Nop()
	service := chart.NewService(
		calendar.NewSexagenaryResolver(),
		pillars.NewCalculator(log),
		tengods.NewAnalyzer(log),
		strength.NewEngine(log),
		fusion.NewEngine(quotes.NewSelector(log), log),
		log,
	)

	router := chi.NewRouter()
	NewHandler(service, log).RegisterRoutes(router)
	return router
}

func TestHandleComputeReading(t *testing.T) {
	router := setupRouter(t)

	body := `{"year": 2000, "month": 1, "day": 1, "hour": 5}`
	req := httptest.NewRequest(http.MethodPost, "/chart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data chart.Reading `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "戊午", response.Data.Chart.FourPillars.Day.String())
	assert.Equal(t, 100, response.Data.Fusion.ElementHarmony)
	assert.NotEmpty(t, response.Data.Fusion.Quotes)
}

func TestHandleComputeReadingRejectsBadBody(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/chart", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleComputeReadingRejectsImpossibleDate(t *testing.T) {
	router := setupRouter(t)

	body := `{"year": 2000, "month": 2, "day": 30, "hour": 5}`
	req := httptest.NewRequest(http.MethodPost, "/chart", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleComputePillars(t *testing.T) {
	router := setupRouter(t)

	body := `{"year": 2000, "month": 1, "day": 1, "hour": 5}`
	req := httptest.NewRequest(http.MethodPost, "/chart/pillars", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data pillars.Chart `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, "乙卯", response.Data.FourPillars.Hour.String())
}

func TestHandleGetHarmonyMatrix(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/chart/elements", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data []chart.HarmonyMatrixEntry `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response.Data, 20)
}
