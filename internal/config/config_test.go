package config_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfscope/surfscope/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SURFSCOPE_DATA_DIR", t.TempDir())

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "https://marine-api.open-meteo.com/v1/marine", cfg.MarineURL)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.WeatherURL)
	assert.Equal(t, "https://geocoding-api.open-meteo.com/v1/search", cfg.GeocodeURL)
	assert.Equal(t, 20*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 8, cfg.ForecastDays)
	assert.Equal(t, "meteofrance_sea_surface_temperature", cfg.SSTFallbackModel)
	assert.Equal(t, "meteofrance_currents", cfg.CurrentsFallbackModel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SURFSCOPE_DATA_DIR", "/srv/surfscope")
	t.Setenv("SURFSCOPE_MARINE_URL", "http://localhost:8080/v1/marine")
	t.Setenv("SURFSCOPE_HTTP_TIMEOUT", "5s")
	t.Setenv("SURFSCOPE_FORECAST_DAYS", "3")

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v1/marine", cfg.MarineURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3, cfg.ForecastDays)
	assert.Equal(t, filepath.Join("/srv/surfscope", "surfscope.db"), cfg.DBPath())
	assert.Equal(t, filepath.Join("/srv/surfscope", "surfscope.log"), cfg.LogPath())
}

func TestLoadFillsDataDirWhenUnset(t *testing.T) {
	t.Setenv("SURFSCOPE_DATA_DIR", "")
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "surfscope", filepath.Base(cfg.DataDir))
}
