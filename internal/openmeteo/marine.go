package openmeteo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// MarineResponse is the decoded marine API payload.
type MarineResponse struct {
	Latitude             float64      `json:"latitude"`
	Longitude            float64      `json:"longitude"`
	Timezone             string       `json:"timezone"`
	TimezoneAbbreviation string       `json:"timezone_abbreviation"`
	Hourly               MarineHourly `json:"hourly"`
}

// MarineHourly carries the hourly columns. Every variable is optional; a
// column the model cannot supply is either absent or all-null.
type MarineHourly struct {
	Time []string `json:"time"`

	WaveHeight    []*float64 `json:"wave_height"`
	WaveDirection []*float64 `json:"wave_direction"`
	WavePeriod    []*float64 `json:"wave_period"`

	WindWaveHeight    []*float64 `json:"wind_wave_height"`
	WindWaveDirection []*float64 `json:"wind_wave_direction"`
	WindWavePeriod    []*float64 `json:"wind_wave_period"`

	SwellHeight    []*float64 `json:"swell_wave_height"`
	SwellDirection []*float64 `json:"swell_wave_direction"`
	SwellPeriod    []*float64 `json:"swell_wave_period"`

	Swell2Height    []*float64 `json:"secondary_swell_wave_height"`
	Swell2Direction []*float64 `json:"secondary_swell_wave_direction"`
	Swell2Period    []*float64 `json:"secondary_swell_wave_period"`

	SeaLevel []*float64 `json:"sea_level_height_msl"`
	SST      []*float64 `json:"sea_surface_temperature"`

	CurrentVelocity  []*float64 `json:"ocean_current_velocity"`
	CurrentDirection []*float64 `json:"ocean_current_direction"`
}

// Column returns the decoded column for a variable name, nil when unknown.
func (h *MarineHourly) Column(name string) []*float64 {
	switch name {
	case VarWaveHeight:
		return h.WaveHeight
	case VarWaveDirection:
		return h.WaveDirection
	case VarWavePeriod:
		return h.WavePeriod
	case VarWindWaveHeight:
		return h.WindWaveHeight
	case VarWindWaveDirection:
		return h.WindWaveDirection
	case VarWindWavePeriod:
		return h.WindWavePeriod
	case VarSwellHeight:
		return h.SwellHeight
	case VarSwellDirection:
		return h.SwellDirection
	case VarSwellPeriod:
		return h.SwellPeriod
	case VarSwell2Height:
		return h.Swell2Height
	case VarSwell2Direction:
		return h.Swell2Direction
	case VarSwell2Period:
		return h.Swell2Period
	case VarSeaLevel:
		return h.SeaLevel
	case VarSST:
		return h.SST
	case VarCurrentVelocity:
		return h.CurrentVelocity
	case VarCurrentDirection:
		return h.CurrentDirection
	}
	return nil
}

// FetchMarine requests hourly marine variables for a point. An empty model
// leaves model selection to the API ("auto"). The API's canonical units
// (meters, km/h, °C) are kept as-is.
func (c *Client) FetchMarine(ctx context.Context, lat, lon float64, vars []string, model, tz string) (*MarineResponse, error) {
	params := map[string]string{
		"latitude":       strconv.FormatFloat(lat, 'f', -1, 64),
		"longitude":      strconv.FormatFloat(lon, 'f', -1, 64),
		"hourly":         strings.Join(vars, ","),
		"forecast_days":  strconv.Itoa(c.forecastDays),
		"timezone":       tz,
		"cell_selection": "sea",
	}
	if model != "" {
		params["models"] = model
	}

	resp, err := c.http.R().SetContext(ctx).SetQueryParams(params).Get(c.marineURL)
	if err != nil {
		return nil, fmt.Errorf("fetching marine forecast: %w", err)
	}

	var out MarineResponse
	if err := decode("marine", resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
