// Package alerts evaluates user-defined threshold alerts against merged
// forecasts and fires best-effort notifications with a per-alert cooldown.
package alerts

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/timeseries"
	"github.com/surfscope/surfscope/internal/units"
)

// Hit is the first upcoming hour that satisfies every defined threshold of
// an alert. Earliest match, not best match.
type Hit struct {
	SpotID      string
	Time        string
	Index       int
	WaveHeight  float64
	SwellHeight float64
	SwellPeriod float64
	WindSpeed   float64
	WindDir     float64
	SurfIndex   float64
}

// Evaluate scans one alert against one merged forecast, starting at the
// hour nearest now and looking ahead the alert's window. Hours missing a
// value a defined threshold needs are skipped, never treated as zero.
// Pure: no state is read or written.
func Evaluate(a models.Alert, data *models.MergedForecast, now time.Time) (*Hit, bool) {
	if data == nil || data.Marine.Len() == 0 {
		return nil, false
	}

	mt := data.Marine.Time
	wi := timeseries.BuildIndex(data.Weather.Time)

	start := timeseries.NowIndex(mt, now)
	end := timeseries.WindowEnd(start, a.Look(), len(mt))

	for i := start; i < end; i++ {
		hs := data.Marine.At(openmeteo.VarWaveHeight, i)
		swellH := data.Marine.At(openmeteo.VarSwellHeight, i)
		swellP := data.Marine.At(openmeteo.VarSwellPeriod, i)
		idx := forecast.SurfIndex(hs, swellP)

		// Weather sits on its own axis; resolve by timestamp.
		windSp, windDir := math.NaN(), math.NaN()
		if j, ok := wi[mt[i]]; ok {
			windSp = data.Weather.At(openmeteo.VarWindSpeed, j)
			windDir = data.Weather.At(openmeteo.VarWindDirection, j)
		}

		if a.MinHs != nil && !(finite(hs) && hs >= *a.MinHs) {
			continue
		}
		if a.MinSwellH != nil && !(finite(swellH) && swellH >= *a.MinSwellH) {
			continue
		}
		if a.MinSwellP != nil && !(finite(swellP) && swellP >= *a.MinSwellP) {
			continue
		}
		if a.MinIndex != nil && !(finite(idx) && idx >= *a.MinIndex) {
			continue
		}
		if a.MaxWind != nil && !(finite(windSp) && windSp <= *a.MaxWind) {
			continue
		}
		if a.WindDirCenter != nil {
			if !finite(windDir) {
				continue
			}
			if forecast.AngDiff(windDir, *a.WindDirCenter) > a.Tolerance() {
				continue
			}
		}

		return &Hit{
			Time:        mt[i],
			Index:       i,
			WaveHeight:  hs,
			SwellHeight: swellH,
			SwellPeriod: swellP,
			WindSpeed:   windSp,
			WindDir:     windDir,
			SurfIndex:   idx,
		}, true
	}
	return nil, false
}

// StateStore is the persisted state the engine consults and updates.
type StateStore interface {
	LoadSettings() (models.Settings, error)
	ListFavorites() ([]models.Favorite, error)
	ListAlerts() ([]models.Alert, error)
	LastSnapshot() (*models.Spot, *models.MergedForecast, error)
	LastFired(alertID string) (int64, bool, error)
	MarkFired(alertID string, atMillis int64) error
	SetLastCheck(atMillis int64) error
}

// ForecastLoader produces a merged forecast for a point.
type ForecastLoader interface {
	Load(ctx context.Context, lat, lon float64, set models.Settings) (*models.MergedForecast, error)
}

// Notifier delivers a user-visible notification. Failures are swallowed by
// the engine; notification delivery is best-effort by contract.
type Notifier interface {
	Notify(title, body string) error
}

// Engine runs alert passes: every enabled alert across its target spots,
// reusing one fetched forecast per spot within a pass.
type Engine struct {
	store    StateStore
	loader   ForecastLoader
	notifier Notifier
	clock    clockwork.Clock
	log      zerolog.Logger
}

// NewEngine wires an alert engine.
func NewEngine(store StateStore, loader ForecastLoader, notifier Notifier, clock clockwork.Clock, log zerolog.Logger) *Engine {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Engine{store: store, loader: loader, notifier: notifier, clock: clock, log: log}
}

// Cache is a pass-scoped forecast cache keyed by spot id, so alerts
// sharing spots within one pass share one fetch.
type Cache map[string]*models.MergedForecast

// RunAll evaluates every alert and records the pass timestamp.
func (e *Engine) RunAll(ctx context.Context) error {
	alerts, err := e.store.ListAlerts()
	if err != nil {
		return fmt.Errorf("listing alerts: %w", err)
	}

	cache := Cache{}
	for _, a := range alerts {
		e.CheckAlert(ctx, a, cache)
	}

	if err := e.store.SetLastCheck(e.clock.Now().UnixMilli()); err != nil {
		return fmt.Errorf("recording check time: %w", err)
	}
	return nil
}

// CheckAlert evaluates one alert against each of its target spots. A spot
// whose forecast cannot be fetched is skipped; the pass continues.
func (e *Engine) CheckAlert(ctx context.Context, a models.Alert, cache Cache) {
	if !a.Enabled {
		return
	}

	set, err := e.store.LoadSettings()
	if err != nil {
		e.log.Warn().Err(err).Msg("loading settings for alert pass")
		set = models.DefaultSettings()
	}

	for _, spotID := range e.targetSpots(a) {
		data, err := e.spotData(ctx, spotID, set, cache)
		if err != nil {
			e.log.Debug().Err(err).Str("alert", a.ID).Str("spot", spotID).Msg("skipping spot, forecast unavailable")
			continue
		}
		if data == nil {
			continue
		}

		hit, ok := Evaluate(a, data, e.clock.Now())
		if !ok {
			continue
		}
		hit.SpotID = spotID

		if !e.canFire(a.ID, set) {
			e.log.Debug().Str("alert", a.ID).Str("spot", spotID).Msg("hit suppressed by cooldown")
			continue
		}
		e.fire(a, hit, set)
	}
}

// targetSpots resolves the alert's spot set; an empty set means the
// currently loaded spot.
func (e *Engine) targetSpots(a models.Alert) []string {
	if len(a.SpotIDs) > 0 {
		return a.SpotIDs
	}
	spot, _, err := e.store.LastSnapshot()
	if err != nil || spot == nil {
		return nil
	}
	return []string{spot.ID}
}

// spotData resolves a spot's forecast: pass cache, then the last-loaded
// snapshot, then a fresh fetch for a favorite. Unknown spot ids resolve to
// no data.
func (e *Engine) spotData(ctx context.Context, spotID string, set models.Settings, cache Cache) (*models.MergedForecast, error) {
	if data, ok := cache[spotID]; ok {
		return data, nil
	}

	if spot, data, err := e.store.LastSnapshot(); err == nil && spot != nil && spot.ID == spotID && data != nil {
		cache[spotID] = data
		return data, nil
	}

	favs, err := e.store.ListFavorites()
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	for _, f := range favs {
		if f.ID != spotID {
			continue
		}
		data, err := e.loader.Load(ctx, f.Lat, f.Lon, set)
		if err != nil {
			return nil, err
		}
		cache[spotID] = data
		return data, nil
	}
	return nil, nil
}

// canFire checks the per-alert cooldown. Cooldown is tracked per alert id,
// not per (alert, spot): a fire on one spot suppresses the same alert on
// every spot until the cooldown elapses.
func (e *Engine) canFire(alertID string, set models.Settings) bool {
	last, ok, err := e.store.LastFired(alertID)
	if err != nil {
		e.log.Warn().Err(err).Str("alert", alertID).Msg("reading last-fired time")
		return false
	}
	if !ok {
		return true
	}
	cooldown := int64(set.AlertCooldownMinutes) * 60 * 1000
	return e.clock.Now().UnixMilli()-last >= cooldown
}

// fire records the fire time, then notifies. Notification failures are
// logged and swallowed.
func (e *Engine) fire(a models.Alert, hit *Hit, set models.Settings) {
	if err := e.store.MarkFired(a.ID, e.clock.Now().UnixMilli()); err != nil {
		e.log.Warn().Err(err).Str("alert", a.ID).Msg("recording fire time")
	}

	title := "SurfScope: " + a.Name
	body := fmt.Sprintf("%s • Hs %.1f%s • swellP %.0fs • wind %.0f%s",
		displayTime(hit.Time),
		units.WaveToDisplay(hit.WaveHeight, set.WaveUnit), set.WaveUnit.Label(),
		hit.SwellPeriod,
		units.SpeedToDisplay(hit.WindSpeed, set.SpeedUnit), set.SpeedUnit.Label(),
	)
	if err := e.notifier.Notify(title, body); err != nil {
		e.log.Debug().Err(err).Str("alert", a.ID).Msg("notification failed")
	}
	e.log.Info().Str("alert", a.ID).Str("spot", hit.SpotID).Str("time", hit.Time).Msg("alert fired")
}

func displayTime(ts string) string {
	out := ts
	if len(out) > 16 {
		out = out[:16]
	}
	for i := range out {
		if out[i] == 'T' {
			return out[:i] + " " + out[i+1:]
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
