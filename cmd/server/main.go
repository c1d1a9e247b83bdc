// Package main is the entry point for the Meridian Four Pillars computation
// service. It wires the pure computation pipeline behind an HTTP API with a
// SQLite archive for computed readings.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/meridian/internal/config"
	"github.com/aristath/meridian/internal/database"
	"github.com/aristath/meridian/internal/modules/archive"
	archivehandlers "github.com/aristath/meridian/internal/modules/archive/handlers"
	"github.com/aristath/meridian/internal/modules/calendar"
	"github.com/aristath/meridian/internal/modules/chart"
	charthandlers "github.com/aristath/meridian/internal/modules/chart/handlers"
	"github.com/aristath/meridian/internal/modules/fusion"
	"github.com/aristath/meridian/internal/modules/pillars"
	"github.com/aristath/meridian/internal/modules/quotes"
	"github.com/aristath/meridian/internal/modules/strength"
	"github.com/aristath/meridian/internal/modules/tengods"
	"github.com/aristath/meridian/internal/scheduler"
	"github.com/aristath/meridian/internal/server"
	"github.com/aristath/meridian/pkg/logger"
)

func main() {
	// Load configuration first so the log level is honored from the start
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting Meridian")

	// Archive database
	archiveDB, err := database.New(database.Config{
		Path:    cfg.ArchivePath(),
		Profile: database.ProfileStandard,
		Name:    "archive",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize archive database")
	}
	defer archiveDB.Close()

	archiveRepo := archive.NewRepository(archiveDB.Conn())
	if err := archiveRepo.EnsureSchema(); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize archive schema")
	}

	// Computation pipeline
	chartService := chart.NewService(
		calendar.NewSexagenaryResolver(),
		pillars.NewCalculator(log),
		tengods.NewAnalyzer(log),
		strength.NewEngine(log),
		fusion.NewEngine(quotes.NewSelector(log), log),
		log,
	)

	// Scheduler with the archive retention job
	sched := scheduler.New(log)
	cleanupJob := archive.NewCleanupJob(archiveRepo, cfg.ArchiveRetention, log)
	if err := sched.AddJob(cfg.CleanupSchedule, cleanupJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register archive cleanup job")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP server
	srv := server.New(server.Config{
		Log:             log,
		Port:            cfg.Port,
		DevMode:         cfg.DevMode,
		ArchiveDB:       archiveDB,
		ChartHandlers:   charthandlers.NewHandler(chartService, log),
		ArchiveHandlers: archivehandlers.NewHandler(archiveRepo, chartService, log),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
