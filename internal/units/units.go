// Package units converts between canonical storage units (meters, km/h,
// °C) and user-selected display units. Conversions are pure and symmetric;
// a non-finite input converts to NaN and must stay NaN downstream, never
// coerced to zero.
package units

import "math"

// WaveUnit selects the display unit for wave and sea-level heights.
type WaveUnit string

const (
	WaveMeters WaveUnit = "m"
	WaveFeet   WaveUnit = "ft"
)

// SpeedUnit selects the display unit for wind and current speeds.
type SpeedUnit string

const (
	SpeedKmh   SpeedUnit = "kmh"
	SpeedMph   SpeedUnit = "mph"
	SpeedKnots SpeedUnit = "kts"
)

// TempUnit selects the display unit for temperatures.
type TempUnit string

const (
	TempCelsius    TempUnit = "c"
	TempFahrenheit TempUnit = "f"
)

const (
	metersToFeet = 3.28084
	kmhToMph     = 0.621371
	kmhToKnots   = 0.539957
)

func waveFactor(u WaveUnit) float64 {
	if u == WaveFeet {
		return metersToFeet
	}
	return 1.0
}

func speedFactor(u SpeedUnit) float64 {
	switch u {
	case SpeedMph:
		return kmhToMph
	case SpeedKnots:
		return kmhToKnots
	default:
		return 1.0
	}
}

// WaveToDisplay converts canonical meters to the display unit.
func WaveToDisplay(m float64, u WaveUnit) float64 {
	if !isFinite(m) {
		return math.NaN()
	}
	return m * waveFactor(u)
}

// WaveFromDisplay converts a display-unit height back to meters.
func WaveFromDisplay(v float64, u WaveUnit) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	return v / waveFactor(u)
}

// SpeedToDisplay converts canonical km/h to the display unit.
func SpeedToDisplay(kmh float64, u SpeedUnit) float64 {
	if !isFinite(kmh) {
		return math.NaN()
	}
	return kmh * speedFactor(u)
}

// SpeedFromDisplay converts a display-unit speed back to km/h.
func SpeedFromDisplay(v float64, u SpeedUnit) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	return v / speedFactor(u)
}

// TempToDisplay converts canonical °C to the display unit.
func TempToDisplay(c float64, u TempUnit) float64 {
	if !isFinite(c) {
		return math.NaN()
	}
	if u == TempFahrenheit {
		return c*9/5 + 32
	}
	return c
}

// TempFromDisplay converts a display-unit temperature back to °C.
func TempFromDisplay(v float64, u TempUnit) float64 {
	if !isFinite(v) {
		return math.NaN()
	}
	if u == TempFahrenheit {
		return (v - 32) * 5 / 9
	}
	return v
}

// Label returns the display label for the unit.
func (u WaveUnit) Label() string {
	if u == WaveFeet {
		return "ft"
	}
	return "m"
}

// Label returns the display label for the unit.
func (u SpeedUnit) Label() string {
	switch u {
	case SpeedMph:
		return "mph"
	case SpeedKnots:
		return "kts"
	default:
		return "km/h"
	}
}

// Label returns the display label for the unit.
func (u TempUnit) Label() string {
	if u == TempFahrenheit {
		return "°F"
	}
	return "°C"
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
