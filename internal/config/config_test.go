package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/site")

	cfg, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/site", ".milestones", "milestones.db"), cfg.DBPath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "", cfg.TemplatesDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, FormatAuto, cfg.LogFormat)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"MILESTONES_DB":            ":memory:",
		"MILESTONES_ADDR":          "127.0.0.1:9000",
		"MILESTONES_TEMPLATES":     "/etc/milestones/templates",
		"MILESTONES_LOG_LEVEL":     "debug",
		"MILESTONES_LOG_FORMAT":    "json",
		"MILESTONES_CORS_ORIGIN":   "https://schedule.example.com",
		"MILESTONES_WRITE_TIMEOUT": "1m",
	})
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "/etc/milestones/templates", cfg.TemplatesDir)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "https://schedule.example.com", cfg.CORSOrigin)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)
}

func TestLoadFrom_Errors(t *testing.T) {
	_, err := LoadFrom(map[string]string{"MILESTONES_READ_TIMEOUT": "soon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")

	_, err = LoadFrom(map[string]string{"MILESTONES_LOG_FORMAT": "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}
