// Package config loads process configuration from the environment.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds environment-driven settings. User-facing preferences
// (units, models, alert cadence) live in the database instead; these
// are the knobs an operator or developer points elsewhere.
type Config struct {
	// DataDir holds the database and log file. Empty means a
	// platform-appropriate per-user directory.
	DataDir string `env:"SURFSCOPE_DATA_DIR"`

	MarineURL  string `env:"SURFSCOPE_MARINE_URL, default=https://marine-api.open-meteo.com/v1/marine"`
	WeatherURL string `env:"SURFSCOPE_WEATHER_URL, default=https://api.open-meteo.com/v1/forecast"`
	GeocodeURL string `env:"SURFSCOPE_GEOCODE_URL, default=https://geocoding-api.open-meteo.com/v1/search"`

	HTTPTimeout  time.Duration `env:"SURFSCOPE_HTTP_TIMEOUT, default=20s"`
	ForecastDays int           `env:"SURFSCOPE_FORECAST_DAYS, default=8"`

	// Fallback models used to backfill water temperature and currents
	// when the primary marine model lacks them.
	SSTFallbackModel      string `env:"SURFSCOPE_SST_MODEL, default=meteofrance_sea_surface_temperature"`
	CurrentsFallbackModel string `env:"SURFSCOPE_CURRENTS_MODEL, default=meteofrance_currents"`

	LogLevel string `env:"SURFSCOPE_LOG_LEVEL, default=info"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.DataDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolving data dir: %w", err)
		}
		cfg.DataDir = filepath.Join(base, "surfscope")
	}
	return &cfg, nil
}

// DBPath is where the SQLite database lives.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "surfscope.db")
}

// LogPath is where the TUI writes its log; stderr is occupied by the UI.
func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, "surfscope.log")
}
