package openmeteo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// WeatherResponse is the decoded weather API payload. Its timestamp axis
// is independent of the marine axis.
type WeatherResponse struct {
	Latitude             float64       `json:"latitude"`
	Longitude            float64       `json:"longitude"`
	Timezone             string        `json:"timezone"`
	TimezoneAbbreviation string        `json:"timezone_abbreviation"`
	Hourly               WeatherHourly `json:"hourly"`
}

// WeatherHourly carries the 10m wind columns.
type WeatherHourly struct {
	Time []string `json:"time"`

	WindSpeed     []*float64 `json:"wind_speed_10m"`
	WindDirection []*float64 `json:"wind_direction_10m"`
	WindGusts     []*float64 `json:"wind_gusts_10m"`
}

// Column returns the decoded column for a variable name, nil when unknown.
func (h *WeatherHourly) Column(name string) []*float64 {
	switch name {
	case VarWindSpeed:
		return h.WindSpeed
	case VarWindDirection:
		return h.WindDirection
	case VarWindGusts:
		return h.WindGusts
	}
	return nil
}

// FetchWeather requests the wind variables for a point, pinned to
// canonical units.
func (c *Client) FetchWeather(ctx context.Context, lat, lon float64, tz string) (*WeatherResponse, error) {
	params := map[string]string{
		"latitude":         strconv.FormatFloat(lat, 'f', -1, 64),
		"longitude":        strconv.FormatFloat(lon, 'f', -1, 64),
		"hourly":           strings.Join(WeatherHourlyVars, ","),
		"forecast_days":    strconv.Itoa(c.forecastDays),
		"timezone":         tz,
		"wind_speed_unit":  "kmh",
		"temperature_unit": "celsius",
	}

	resp, err := c.http.R().SetContext(ctx).SetQueryParams(params).Get(c.weatherURL)
	if err != nil {
		return nil, fmt.Errorf("fetching weather forecast: %w", err)
	}

	var out WeatherResponse
	if err := decode("weather", resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
