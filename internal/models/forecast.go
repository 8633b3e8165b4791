package models

import (
	"encoding/json"
	"math"
	"time"
)

// HourlySeries holds named hourly variables aligned positionally to one
// timestamp axis. Values are canonical units (meters, km/h, °C); a missing
// value is NaN and stays NaN through every downstream computation.
type HourlySeries struct {
	Time   []string
	Values map[string][]float64
}

// Len returns the number of hours on the timestamp axis.
func (s *HourlySeries) Len() int {
	return len(s.Time)
}

// Series returns the values for a variable, or nil when the variable is
// not part of the series.
func (s *HourlySeries) Series(name string) []float64 {
	return s.Values[name]
}

// At reads one variable at one hour. Out-of-range indexes and unknown
// variables read as missing.
func (s *HourlySeries) At(name string, i int) float64 {
	vals := s.Values[name]
	if i < 0 || i >= len(vals) {
		return math.NaN()
	}
	return vals[i]
}

// Set replaces a variable's values wholesale.
func (s *HourlySeries) Set(name string, vals []float64) {
	if s.Values == nil {
		s.Values = make(map[string][]float64)
	}
	s.Values[name] = vals
}

type hourlySeriesJSON struct {
	Time   []string              `json:"time"`
	Values map[string][]*float64 `json:"values"`
}

// MarshalJSON encodes missing values as JSON null (NaN is not
// representable in JSON).
func (s HourlySeries) MarshalJSON() ([]byte, error) {
	out := hourlySeriesJSON{Time: s.Time, Values: make(map[string][]*float64, len(s.Values))}
	for name, vals := range s.Values {
		col := make([]*float64, len(vals))
		for i := range vals {
			if !math.IsNaN(vals[i]) {
				v := vals[i]
				col[i] = &v
			}
		}
		out.Values[name] = col
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes JSON null back into NaN.
func (s *HourlySeries) UnmarshalJSON(data []byte) error {
	var in hourlySeriesJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Time = in.Time
	s.Values = make(map[string][]float64, len(in.Values))
	for name, col := range in.Values {
		vals := make([]float64, len(col))
		for i := range col {
			if col[i] == nil {
				vals[i] = math.NaN()
			} else {
				vals[i] = *col[i]
			}
		}
		s.Values[name] = vals
	}
	return nil
}

// ModelInfo records which model actually supplied the wave variables and
// which variable groups were back-filled from a fallback provider.
type ModelInfo struct {
	WaveModel string   `json:"waveModel"`
	Override  string   `json:"waveModelOverride"`
	Merged    []string `json:"merged"`
}

// MergedForecast is the result of one load: marine and weather hourly
// series on their own timestamp axes, plus model provenance. Immutable
// once produced; a new load replaces it wholesale.
type MergedForecast struct {
	Marine       HourlySeries `json:"marine"`
	Weather      HourlySeries `json:"weather"`
	Models       ModelInfo    `json:"models"`
	Timezone     string       `json:"timezone,omitempty"`
	TimezoneAbbr string       `json:"timezoneAbbr,omitempty"`
	FetchedAt    time.Time    `json:"fetchedAt"`
}
