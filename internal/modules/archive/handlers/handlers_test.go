package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aristath/meridian/internal/modules/archive"
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
	_ "modernc.org/sqlite"
)

func setupRouter(t *testing.T) (*chi.Mux, *archive.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	repo := archive.NewRepository(db)
	require.NoError(t, repo.EnsureSchema())

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
	NewHandler(repo, service, log).RegisterRoutes(router)
	return router, repo
}

func archiveReading(t *testing.T, router *chi.Mux, body string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/archive", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	require.NotEmpty(t, response.Data.ID)
	return response.Data.ID
}

func TestHandleArchiveReading(t *testing.T) {
	router, repo := setupRouter(t)

	id := archiveReading(t, router, `{"year": 2000, "month": 1, "day": 1, "hour": 5}`)

	record, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "戊", record.DayMaster)
}

func TestHandleArchiveReadingRejectsInvalidInput(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/archive", strings.NewReader(`{"year": 2000, "month": 13, "day": 1, "hour": 5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListReadings(t *testing.T) {
	router, _ := setupRouter(t)

	archiveReading(t, router, `{"year": 2000, "month": 1, "day": 1, "hour": 5}`)
	archiveReading(t, router, `{"year": 1984, "month": 6, "day": 15, "hour": 12}`)

	req := httptest.NewRequest(http.MethodGet, "/archive", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data []archive.Summary `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response.Data, 2)
}

func TestHandleGetReading(t *testing.T) {
	router, _ := setupRouter(t)

	id := archiveReading(t, router, `{"year": 2000, "month": 1, "day": 1, "hour": 5}`)

	req := httptest.NewRequest(http.MethodGet, "/archive/"+id, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Data struct {
			ID        string `json:"id"`
			DayMaster string `json:"day_master"`
			SunSign   string `json:"sun_sign"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Equal(t, id, response.Data.ID)
	assert.Equal(t, "Capricorn", response.Data.SunSign)
}

func TestHandleGetReadingNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/archive/unknown-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteReading(t *testing.T) {
	router, repo := setupRouter(t)

	id := archiveReading(t, router, `{"year": 2000, "month": 1, "day": 1, "hour": 5}`)

	req := httptest.NewRequest(http.MethodDelete, "/archive/"+id, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := repo.Get(id)
	assert.ErrorIs(t, err, archive.ErrNotFound)

	req = httptest.NewRequest(http.MethodDelete, "/archive/"+id, nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
