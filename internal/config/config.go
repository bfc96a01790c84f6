package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Log output formats. FormatAuto picks text on a terminal and JSON otherwise.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds process configuration read from MILESTONES_* variables.
type Config struct {
	DBPath       string     `env:"DB"`
	Addr         string     `env:"ADDR" envDefault:":8080"`
	TemplatesDir string     `env:"TEMPLATES"`
	LogLevel     slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string     `env:"LOG_FORMAT" envDefault:"auto"`
	CORSOrigin   string     `env:"CORS_ORIGIN" envDefault:"*"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

const envPrefix = "MILESTONES_"

// Load reads configuration from the process environment.
func Load() (Config, error) {
	return load(env.Options{Prefix: envPrefix})
}

// LoadFrom reads configuration from the given variables instead of the
// process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Prefix: envPrefix, Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	switch cfg.LogFormat {
	case FormatAuto, FormatText, FormatJSON:
	default:
		return Config{}, fmt.Errorf("%sLOG_FORMAT: unknown format %q", envPrefix, cfg.LogFormat)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".milestones", "milestones.db")
	}
	return cfg, nil
}
