package models

import "time"

// Alert is a user-defined threshold watch. All thresholds are optional and
// combine with logical AND; nil means "not constrained". Minimum fields are
// canonical units (meters, seconds, km/h).
type Alert struct {
	ID            string    `json:"id"`
	SpotIDs       []string  `json:"spotIds"` // empty: use the currently loaded spot
	Name          string    `json:"name"`
	Enabled       bool      `json:"enabled"`
	MinHs         *float64  `json:"minHs_m,omitempty"`
	MinSwellH     *float64  `json:"minSwellH_m,omitempty"`
	MinSwellP     *float64  `json:"minSwellP_s,omitempty"`
	MinIndex      *float64  `json:"minIdx,omitempty"`
	MaxWind       *float64  `json:"maxWind_kmh,omitempty"`
	WindDirCenter *float64  `json:"windDirCenter,omitempty"`
	WindDirTol    float64   `json:"windDirTol"`
	LookHours     int       `json:"lookHours"`
	CreatedAt     time.Time `json:"createdAt"`
}

const (
	DefaultWindDirTol = 60
	DefaultLookHours  = 24
	MinLookHours      = 1
	MaxLookHours      = 192
)

// Look returns the alert's look-ahead window in hours, clamped to the
// supported range. Zero (unset) falls back to the default.
func (a Alert) Look() int {
	h := a.LookHours
	if h == 0 {
		h = DefaultLookHours
	}
	if h < MinLookHours {
		h = MinLookHours
	}
	if h > MaxLookHours {
		h = MaxLookHours
	}
	return h
}

// Tolerance returns the wind direction tolerance, defaulting when unset.
func (a Alert) Tolerance() float64 {
	if a.WindDirTol <= 0 {
		return DefaultWindDirTol
	}
	return a.WindDirTol
}

// AlertRuntime is process-wide alert state that persists across sessions:
// per-alert last-fired timestamps (milliseconds since epoch) and the time
// of the last full check pass.
type AlertRuntime struct {
	LastFired   map[string]int64 `json:"lastFired"`
	LastCheckAt int64            `json:"lastCheckAt"`
}
