package forecast

import (
	"math"

	"github.com/surfscope/surfscope/internal/timeseries"
)

// SurfIndex is the simple energy proxy Hs² × swell period. It is a
// heuristic, not a physical wave model. Missing inputs yield NaN.
func SurfIndex(hs, swellPeriod float64) float64 {
	if math.IsNaN(hs) || math.IsNaN(swellPeriod) || math.IsInf(hs, 0) || math.IsInf(swellPeriod, 0) {
		return math.NaN()
	}
	return hs * hs * swellPeriod
}

// Rating band thresholds. These classify the surf index into qualitative
// bands and are meant to be retuned, not derived.
var (
	BadgeThresholds = []float64{4, 10, 20}
	BadgeLabels     = []string{"Small", "Okay", "Good", "Firing"}
	StarThresholds  = []float64{4, 8, 14, 22}
)

// Badge maps a surf index to its qualitative label, "—" when undefined.
func Badge(idx float64) string {
	if math.IsNaN(idx) {
		return "—"
	}
	for i, th := range BadgeThresholds {
		if idx < th {
			return BadgeLabels[i]
		}
	}
	return BadgeLabels[len(BadgeLabels)-1]
}

// Stars maps a surf index to a 1–5 star rating, 0 when undefined.
func Stars(idx float64) int {
	if math.IsNaN(idx) {
		return 0
	}
	stars := 1
	for _, th := range StarThresholds {
		if idx >= th {
			stars++
		}
	}
	return stars
}

// AngDiff returns the shortest-arc angular distance between two bearings,
// in [0, 180].
func AngDiff(a, b float64) float64 {
	d := math.Mod(a-b+540, 360) - 180
	return math.Abs(d)
}

var cardinals = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegToCardinal renders a bearing as a 16-point compass direction.
func DegToCardinal(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return "—"
	}
	i := int(math.Round(math.Mod(deg, 360)/22.5)) % 16
	if i < 0 {
		i += 16
	}
	return cardinals[i]
}

// WindRelation classifies wind direction relative to a spot's shore-facing
// direction.
type WindRelation string

const (
	WindOffshore WindRelation = "offshore"
	WindOnshore  WindRelation = "onshore"
	WindSide     WindRelation = "side"
)

// RelationToShore classifies the wind for a spot. faceDeg is the compass
// direction waves travel toward when breaking; windDir is meteorological
// (where the wind blows from). Offshore wind comes from the land side,
// (face + 180) mod 360. Returns false when the face direction is unknown
// or the wind direction is missing.
func RelationToShore(windDir float64, faceDeg *float64) (WindRelation, bool) {
	if faceDeg == nil || math.IsNaN(windDir) || math.IsInf(windDir, 0) {
		return "", false
	}
	offshoreDir := math.Mod(*faceDeg+180, 360)
	if AngDiff(windDir, offshoreDir) <= 45 {
		return WindOffshore, true
	}
	if AngDiff(windDir, *faceDeg) <= 45 {
		return WindOnshore, true
	}
	return WindSide, true
}

// TideType marks a detected extremum as a high or low.
type TideType string

const (
	TideHigh TideType = "High"
	TideLow  TideType = "Low"
)

// TideEvent is one detected sea-level extremum. The detection is an
// approximation from the hourly sea-level series, not a tidal-harmonics
// prediction, and must be presented as such.
type TideEvent struct {
	Type   TideType
	Time   string
	Height float64 // meters relative to MSL
}

const (
	tideDedupeWindow = 2.5 * 3600 // seconds
	maxTideEvents    = 6
)

// DetectTides scans an aligned timestamp+sea-level window for local
// extrema using a 3-point neighborhood. Points adjacent to a missing value
// are skipped. Extrema within 2.5 hours of a previously accepted one are
// collapsed (the earlier wins), and the result is capped at 6 events.
func DetectTides(times []string, sea []float64) []TideEvent {
	if len(times) < 5 || len(sea) < 5 {
		return nil
	}

	n := len(sea)
	if len(times) < n {
		n = len(times)
	}

	var events []TideEvent
	lastAccepted := math.Inf(-1)
	for i := 1; i < n-1; i++ {
		a, b, c := sea[i-1], sea[i], sea[i+1]
		if math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) {
			continue
		}

		var tt TideType
		switch {
		case b > a && b > c:
			tt = TideHigh
		case b < a && b < c:
			tt = TideLow
		default:
			continue
		}

		t, err := timeseries.Parse(times[i])
		if err != nil {
			continue
		}
		sec := float64(t.Unix())
		if sec-lastAccepted < tideDedupeWindow {
			continue
		}

		events = append(events, TideEvent{Type: tt, Time: times[i], Height: b})
		lastAccepted = sec
		if len(events) >= maxTideEvents {
			break
		}
	}
	return events
}
