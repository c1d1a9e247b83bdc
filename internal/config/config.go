// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir          string // Base directory for the archive database (always absolute)
	LogLevel         string
	Port             int
	DevMode          bool
	ArchiveRetention time.Duration // How long archived readings are kept
	CleanupSchedule  string        // Cron schedule for the archive cleanup job
	MaxQuotes        int           // Default literature quote count per reading
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnvAsInt("PORT", 8080),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		DataDir:          getEnv("DATA_DIR", "./data"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ArchiveRetention: time.Duration(getEnvAsInt("ARCHIVE_RETENTION_DAYS", 90)) * 24 * time.Hour,
		CleanupSchedule:  getEnv("CLEANUP_SCHEDULE", "0 0 3 * * *"), // Daily at 3:00 AM
		MaxQuotes:        getEnvAsInt("MAX_QUOTES", 3),
	}

	// Resolve the data dir so database paths survive working-directory changes
	absDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}
	cfg.DataDir = absDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	if c.ArchiveRetention <= 0 {
		return fmt.Errorf("ARCHIVE_RETENTION_DAYS must be positive")
	}
	if c.MaxQuotes < 1 {
		return fmt.Errorf("MAX_QUOTES must be positive")
	}
	return nil
}

// ArchivePath returns the path of the archive database file
func (c *Config) ArchivePath() string {
	return filepath.Join(c.DataDir, "archive.db")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
