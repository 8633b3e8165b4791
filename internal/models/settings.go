package models

import "github.com/surfscope/surfscope/internal/units"

// Settings are the user-tunable preferences persisted with the rest of the
// application state. Stored values are merged over defaults on load so new
// fields pick up their default after an upgrade.
type Settings struct {
	WaveUnit  units.WaveUnit  `json:"waveUnit"`
	SpeedUnit units.SpeedUnit `json:"windUnit"`
	TempUnit  units.TempUnit  `json:"tempUnit"`

	Timezone    string `json:"tz"`
	WaveModel   string `json:"waveModel"` // "auto" or an explicit wave model identifier
	MergeExtras bool   `json:"mergeExtras"`

	AlertCheckMinutes    int `json:"alertCheckMinutes"`
	AlertCooldownMinutes int `json:"alertCooldownMinutes"`
}

// DefaultSettings returns the out-of-the-box configuration.
func DefaultSettings() Settings {
	return Settings{
		WaveUnit:             units.WaveMeters,
		SpeedUnit:            units.SpeedKmh,
		TempUnit:             units.TempCelsius,
		Timezone:             "auto",
		WaveModel:            "auto",
		MergeExtras:          true,
		AlertCheckMinutes:    30,
		AlertCooldownMinutes: 180,
	}
}

// Clamp forces the alert cadence and cooldown into their supported ranges.
func (s *Settings) Clamp() {
	s.AlertCheckMinutes = clampInt(s.AlertCheckMinutes, 5, 180)
	s.AlertCooldownMinutes = clampInt(s.AlertCooldownMinutes, 30, 1440)
	if s.Timezone == "" {
		s.Timezone = "auto"
	}
	if s.WaveModel == "" {
		s.WaveModel = "auto"
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
