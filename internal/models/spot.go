package models

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Spot is a geographic point the user can load a forecast for. The ID is
// derived from the coordinates rounded to 4 decimal places, so the same
// location always maps to the same spot regardless of how it was picked
// (search result, GPS fix, favorite).
type Spot struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Admin1  string   `json:"admin1,omitempty"`
	Country string   `json:"country,omitempty"`
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
	FaceDeg *float64 `json:"faceDeg,omitempty"` // shore-facing direction, nil when unknown
}

// SpotID builds the deterministic spot identity for a coordinate pair.
func SpotID(lat, lon float64) string {
	return fmt.Sprintf("%.4f,%.4f", lat, lon)
}

// NewSpot creates a spot with its derived ID.
func NewSpot(name, admin1, country string, lat, lon float64) Spot {
	return Spot{
		ID:      SpotID(lat, lon),
		Name:    name,
		Admin1:  admin1,
		Country: country,
		Lat:     lat,
		Lon:     lon,
	}
}

// Place renders "Name, Admin1, Country" skipping empty parts.
func (s Spot) Place() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{s.Name, s.Admin1, s.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return s.ID
	}
	return strings.Join(parts, ", ")
}

// NormalizeDeg wraps an angle into [0, 360).
func NormalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Favorite is a spot the user saved, plus persistence metadata.
type Favorite struct {
	Spot
	CreatedAt time.Time `json:"createdAt"`
}
