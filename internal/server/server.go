// Package server provides the HTTP server and routing for Meridian.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/meridian/internal/database"
	archivehandlers "github.com/aristath/meridian/internal/modules/archive/handlers"
	charthandlers "github.com/aristath/meridian/internal/modules/chart/handlers"
)

// Config holds server configuration
type Config struct {
	Log             zerolog.Logger
	Port            int
	DevMode         bool
	ArchiveDB       *database.DB
	ChartHandlers   *charthandlers.Handler
	ArchiveHandlers *archivehandlers.Handler
}

// Server represents the HTTP server
type Server struct {
	router          *chi.Mux
	server          *http.Server
	log             zerolog.Logger
	archiveDB       *database.DB
	chartHandlers   *charthandlers.Handler
	archiveHandlers *archivehandlers.Handler
	systemHandlers  *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:          chi.NewRouter(),
		log:             cfg.Log.With().Str("component", "server").Logger(),
		archiveDB:       cfg.ArchiveDB,
		chartHandlers:   cfg.ChartHandlers,
		archiveHandlers: cfg.ArchiveHandlers,
		systemHandlers:  NewSystemHandlers(cfg.ArchiveDB, cfg.Log),
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Liveness check (no dependencies)
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.systemHandlers.HandleHealth)

		s.chartHandlers.RegisterRoutes(r)
		s.archiveHandlers.RegisterRoutes(r)
	})
}

// Router exposes the configured router, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
