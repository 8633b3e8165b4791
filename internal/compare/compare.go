// Package compare ranks favorite spots by their best upcoming hour.
package compare

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/surfscope/surfscope/internal/alerts"
	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/timeseries"
)

const (
	// windPenalty discounts an hour's surf index per km/h of wind.
	windPenalty = 0.4

	minWindowHours  = 6
	maxWindowHours  = 48
	maxSpotsScanned = 30
	maxRanked       = 20
)

// Result is one spot's best upcoming hour.
type Result struct {
	Spot        models.Spot
	Score       float64
	Time        string
	WaveHeight  float64
	SwellPeriod float64
	WindSpeed   float64
	SurfIndex   float64
}

// BestHour scans a merged forecast's window from the current hour and
// returns the maximum-scoring hour. Hours with an undefined surf index are
// skipped entirely, never scored as zero. Returns false when no hour in
// the window has a defined index.
func BestHour(data *models.MergedForecast, now time.Time, windowHours int) (Result, bool) {
	mt := data.Marine.Time
	wi := timeseries.BuildIndex(data.Weather.Time)

	start := timeseries.NowIndex(mt, now)
	end := timeseries.WindowEnd(start, windowHours, len(mt))

	var best Result
	found := false
	for i := start; i < end; i++ {
		hs := data.Marine.At(openmeteo.VarWaveHeight, i)
		swellP := data.Marine.At(openmeteo.VarSwellPeriod, i)
		idx := forecast.SurfIndex(hs, swellP)
		if math.IsNaN(idx) {
			continue
		}

		wind := math.NaN()
		if j, ok := wi[mt[i]]; ok {
			wind = data.Weather.At(openmeteo.VarWindSpeed, j)
		}

		score := idx
		if !math.IsNaN(wind) {
			score -= wind * windPenalty
		}

		if !found || score > best.Score {
			best = Result{
				Score:       score,
				Time:        mt[i],
				WaveHeight:  hs,
				SwellPeriod: swellP,
				WindSpeed:   wind,
				SurfIndex:   idx,
			}
			found = true
		}
	}
	return best, found
}

// FavoriteSource lists the favorites to compare.
type FavoriteSource interface {
	ListFavorites() ([]models.Favorite, error)
	LoadSettings() (models.Settings, error)
	LastSnapshot() (*models.Spot, *models.MergedForecast, error)
}

// Comparator scores and ranks favorites.
type Comparator struct {
	store  FavoriteSource
	loader alerts.ForecastLoader
	clock  clockwork.Clock
	log    zerolog.Logger
}

// NewComparator wires a comparator.
func NewComparator(store FavoriteSource, loader alerts.ForecastLoader, clock clockwork.Clock, log zerolog.Logger) *Comparator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Comparator{store: store, loader: loader, clock: clock, log: log}
}

// ClampWindow forces the compare window into its supported range.
func ClampWindow(hours int) int {
	if hours < minWindowHours {
		return minWindowHours
	}
	if hours > maxWindowHours {
		return maxWindowHours
	}
	return hours
}

// Run scores each favorite's best hour in the window and ranks spots
// descending. Favorites with no valid scored hour are excluded, not
// ranked last. At most the first 30 favorites are scanned and the top 20
// returned.
func (c *Comparator) Run(ctx context.Context, windowHours int) ([]Result, error) {
	windowHours = ClampWindow(windowHours)

	favs, err := c.store.ListFavorites()
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}
	if len(favs) > maxSpotsScanned {
		favs = favs[:maxSpotsScanned]
	}

	set, err := c.store.LoadSettings()
	if err != nil {
		set = models.DefaultSettings()
	}

	cache := alerts.Cache{}
	if spot, data, err := c.store.LastSnapshot(); err == nil && spot != nil && data != nil {
		cache[spot.ID] = data
	}

	var results []Result
	for _, f := range favs {
		data, ok := cache[f.ID]
		if !ok {
			data, err = c.loader.Load(ctx, f.Lat, f.Lon, set)
			if err != nil {
				c.log.Debug().Err(err).Str("spot", f.ID).Msg("skipping favorite, forecast unavailable")
				continue
			}
			cache[f.ID] = data
		}

		best, found := BestHour(data, c.clock.Now(), windowHours)
		if !found {
			continue
		}
		best.Spot = f.Spot
		results = append(results, best)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxRanked {
		results = results[:maxRanked]
	}
	return results, nil
}
