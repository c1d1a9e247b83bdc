package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 90*24*time.Hour, cfg.ArchiveRetention)
	assert.Equal(t, 3, cfg.MaxQuotes)
	assert.True(t, len(cfg.DataDir) > 0)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ARCHIVE_RETENTION_DAYS", "7")
	t.Setenv("MAX_QUOTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 7*24*time.Hour, cfg.ArchiveRetention)
	assert.Equal(t, 5, cfg.MaxQuotes)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveRetention(t *testing.T) {
	t.Setenv("ARCHIVE_RETENTION_DAYS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestArchivePathIsUnderDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Contains(t, cfg.ArchivePath(), cfg.DataDir)
	assert.Contains(t, cfg.ArchivePath(), "archive.db")
}
