// Package timeseries aligns hourly forecast series. Marine and weather
// data arrive on independent timestamp axes, so every cross-series read
// resolves positions through a timestamp lookup instead of assuming equal
// indexing.
package timeseries

import (
	"fmt"
	"math"
	"time"
)

// Open-Meteo returns local timestamps without a zone suffix when a
// timezone parameter is set.
const layoutLocal = "2006-01-02T15:04"

// Parse parses a forecast timestamp. Local hour format first, then the
// stricter variants. Zone-less timestamps come out in UTC; use ParseIn
// when the wall-clock frame matters.
func Parse(ts string) (time.Time, error) {
	return ParseIn(ts, time.UTC)
}

// ParseIn parses a forecast timestamp, resolving zone-less forms in loc.
// Layouts that carry their own offset keep it.
func ParseIn(ts string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{layoutLocal, "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", ts)
}

// BuildIndex maps each timestamp string to its position in the axis.
func BuildIndex(times []string) map[string]int {
	idx := make(map[string]int, len(times))
	for i, t := range times {
		idx[t] = i
	}
	return idx
}

// NowIndex finds the index whose timestamp is nearest to now. Zone-less
// timestamps are wall-clock local, so they resolve in now's location.
// Ties resolve to the first index encountered; unparseable timestamps are
// skipped. An empty axis anchors at 0.
func NowIndex(times []string, now time.Time) int {
	best := 0
	bestDiff := math.Inf(1)
	for i, ts := range times {
		t, err := ParseIn(ts, now.Location())
		if err != nil {
			continue
		}
		d := math.Abs(t.Sub(now).Seconds())
		if d < bestDiff {
			bestDiff = d
			best = i
		}
	}
	return best
}

// WindowEnd clamps a look-ahead window [start, start+hours) to the axis
// length and returns the exclusive end index.
func WindowEnd(start, hours, axisLen int) int {
	end := start + hours
	if end > axisLen {
		end = axisLen
	}
	return end
}
