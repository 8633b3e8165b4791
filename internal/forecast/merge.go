// Package forecast assembles one canonical hourly dataset per spot from
// the marine and weather providers and derives surf metrics from it.
package forecast

import (
	"context"
	"fmt"
	"math"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/openmeteo"
)

// Provider is the slice of the Open-Meteo client the merge engine needs.
type Provider interface {
	FetchMarine(ctx context.Context, lat, lon float64, vars []string, model, tz string) (*openmeteo.MarineResponse, error)
	FetchWeather(ctx context.Context, lat, lon float64, tz string) (*openmeteo.WeatherResponse, error)
}

const (
	defaultSSTModel      = "meteofrance_sea_surface_temperature"
	defaultCurrentsModel = "meteofrance_currents"
)

// Loader runs the merge pipeline: base marine fetch, optional wave-model
// override, optional SST/currents backfill, weather fetch. Base and
// weather are required; override and backfill degrade silently to the base
// series.
type Loader struct {
	provider      Provider
	sstModel      string
	currentsModel string
	clock         clockwork.Clock
	log           zerolog.Logger
}

// LoaderOption tweaks a Loader.
type LoaderOption func(*Loader)

// WithFallbackModels sets the marine models used to backfill SST and
// currents when the base model has no data for them.
func WithFallbackModels(sst, currents string) LoaderOption {
	return func(l *Loader) {
		if sst != "" {
			l.sstModel = sst
		}
		if currents != "" {
			l.currentsModel = currents
		}
	}
}

// WithClock injects the time source.
func WithClock(c clockwork.Clock) LoaderOption {
	return func(l *Loader) { l.clock = c }
}

// WithLogger injects the logger.
func WithLogger(log zerolog.Logger) LoaderOption {
	return func(l *Loader) { l.log = log }
}

// NewLoader creates a merge engine over a provider.
func NewLoader(p Provider, opts ...LoaderOption) *Loader {
	l := &Loader{
		provider:      p,
		sstModel:      defaultSSTModel,
		currentsModel: defaultCurrentsModel,
		clock:         clockwork.NewRealClock(),
		log:           zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load produces one merged forecast for a point. The four steps run in
// strict sequence because later steps merge into the series assembled by
// earlier ones.
func (l *Loader) Load(ctx context.Context, lat, lon float64, set models.Settings) (*models.MergedForecast, error) {
	base, err := l.provider.FetchMarine(ctx, lat, lon, openmeteo.MarineAll, "", set.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading marine forecast: %w", err)
	}

	marine := marineSeries(base, openmeteo.MarineAll)
	info := models.ModelInfo{WaveModel: "auto", Override: set.WaveModel, Merged: []string{}}

	l.applyOverride(ctx, lat, lon, set, &marine, &info)
	if set.MergeExtras {
		l.backfillExtras(ctx, lat, lon, set, &marine, &info)
	}

	weather, err := l.provider.FetchWeather(ctx, lat, lon, set.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading weather forecast: %w", err)
	}

	return &models.MergedForecast{
		Marine:       marine,
		Weather:      weatherSeries(weather),
		Models:       info,
		Timezone:     base.Timezone,
		TimezoneAbbr: base.TimezoneAbbreviation,
		FetchedAt:    l.clock.Now(),
	}, nil
}

// applyOverride refetches the wave family with the user-selected model and
// splices it over the base series. An override fetch that fails or returns
// no finite wave heights keeps the base untouched; the only record of it
// is the provenance's primary model staying "auto".
func (l *Loader) applyOverride(ctx context.Context, lat, lon float64, set models.Settings, marine *models.HourlySeries, info *models.ModelInfo) {
	override := set.WaveModel
	if override == "" || override == "auto" {
		return
	}

	wave, err := l.provider.FetchMarine(ctx, lat, lon, openmeteo.MarineWaves, override, set.Timezone)
	if err != nil {
		l.log.Debug().Err(err).Str("model", override).Msg("wave model override fetch failed, keeping base")
		return
	}

	axisLen := marine.Len()
	if !anyFinite(openmeteo.Floats(wave.Hourly.WaveHeight, axisLen)) {
		l.log.Debug().Str("model", override).Msg("wave model override returned no wave data, keeping base")
		return
	}

	info.WaveModel = override
	for _, name := range openmeteo.MarineWaves {
		if col := wave.Hourly.Column(name); col != nil {
			marine.Set(name, openmeteo.Floats(col, axisLen))
		}
	}
}

// backfillExtras fills SST and ocean currents from fallback models when
// the base model carries no finite values for them. Each backfill is
// independently best-effort.
func (l *Loader) backfillExtras(ctx context.Context, lat, lon float64, set models.Settings, marine *models.HourlySeries, info *models.ModelInfo) {
	axisLen := marine.Len()

	if !anyFinite(marine.Series(openmeteo.VarSST)) {
		sst, err := l.provider.FetchMarine(ctx, lat, lon, openmeteo.MarineSST, l.sstModel, set.Timezone)
		if err != nil {
			l.log.Debug().Err(err).Msg("sst backfill fetch failed")
		} else if vals := openmeteo.Floats(sst.Hourly.SST, axisLen); anyFinite(vals) {
			marine.Set(openmeteo.VarSST, vals)
			info.Merged = append(info.Merged, "SST")
		}
	}

	if !anyFinite(marine.Series(openmeteo.VarCurrentVelocity)) {
		cur, err := l.provider.FetchMarine(ctx, lat, lon, openmeteo.MarineCurrents, l.currentsModel, set.Timezone)
		if err != nil {
			l.log.Debug().Err(err).Msg("currents backfill fetch failed")
		} else if vals := openmeteo.Floats(cur.Hourly.CurrentVelocity, axisLen); anyFinite(vals) {
			marine.Set(openmeteo.VarCurrentVelocity, vals)
			marine.Set(openmeteo.VarCurrentDirection, openmeteo.Floats(cur.Hourly.CurrentDirection, axisLen))
			info.Merged = append(info.Merged, "Currents")
		}
	}
}

// marineSeries converts a marine response into a canonical series. Every
// requested variable gets a column padded to the axis length so the
// aligned-length invariant holds even for variables the model omitted.
func marineSeries(resp *openmeteo.MarineResponse, vars []string) models.HourlySeries {
	s := models.HourlySeries{
		Time:   resp.Hourly.Time,
		Values: make(map[string][]float64, len(vars)),
	}
	axisLen := len(resp.Hourly.Time)
	for _, name := range vars {
		s.Values[name] = openmeteo.Floats(resp.Hourly.Column(name), axisLen)
	}
	return s
}

func weatherSeries(resp *openmeteo.WeatherResponse) models.HourlySeries {
	s := models.HourlySeries{
		Time:   resp.Hourly.Time,
		Values: make(map[string][]float64, len(openmeteo.WeatherHourlyVars)),
	}
	axisLen := len(resp.Hourly.Time)
	for _, name := range openmeteo.WeatherHourlyVars {
		s.Values[name] = openmeteo.Floats(resp.Hourly.Column(name), axisLen)
	}
	return s
}

func anyFinite(vals []float64) bool {
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			return true
		}
	}
	return false
}
