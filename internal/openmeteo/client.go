// Package openmeteo provides clients for the Open-Meteo marine, weather
// and geocoding APIs. Responses are decoded into explicit structs where a
// value can always be absent; absent or non-numeric values surface as nil
// and are converted to NaN at the series boundary.
package openmeteo

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultMarineURL  = "https://marine-api.open-meteo.com/v1/marine"
	defaultWeatherURL = "https://api.open-meteo.com/v1/forecast"
	defaultGeocodeURL = "https://geocoding-api.open-meteo.com/v1/search"

	userAgent = "SurfScope/1.0 (github.com/surfscope/surfscope)"
)

// Client calls the Open-Meteo APIs.
type Client struct {
	marineURL    string
	weatherURL   string
	geocodeURL   string
	forecastDays int
	http         *resty.Client
}

// Option tweaks a Client.
type Option func(*Client)

// WithMarineURL overrides the marine API endpoint.
func WithMarineURL(u string) Option { return func(c *Client) { c.marineURL = u } }

// WithWeatherURL overrides the weather API endpoint.
func WithWeatherURL(u string) Option { return func(c *Client) { c.weatherURL = u } }

// WithGeocodeURL overrides the geocoding API endpoint.
func WithGeocodeURL(u string) Option { return func(c *Client) { c.geocodeURL = u } }

// WithForecastDays sets the requested forecast horizon in days.
func WithForecastDays(d int) Option { return func(c *Client) { c.forecastDays = d } }

// WithTimeout bounds every request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// NewClient creates an Open-Meteo client with a bounded timeout and
// transport-level retries.
func NewClient(opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetTimeout(20 * time.Second)
	httpClient.SetRetryCount(2)
	httpClient.SetRetryWaitTime(time.Second)
	httpClient.SetHeader("User-Agent", userAgent)
	httpClient.SetHeader("Accept", "application/json")

	c := &Client{
		marineURL:    defaultMarineURL,
		weatherURL:   defaultWeatherURL,
		geocodeURL:   defaultGeocodeURL,
		forecastDays: 8,
		http:         httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a failure reported by an Open-Meteo endpoint, carrying the
// machine-readable reason string when the API provided one.
type APIError struct {
	Provider   string
	StatusCode int
	Reason     string
}

func (e *APIError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s API error: %s", e.Provider, e.Reason)
	}
	return fmt.Sprintf("%s API returned status %d", e.Provider, e.StatusCode)
}

// apiEnvelope is the error shape all Open-Meteo endpoints share.
type apiEnvelope struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// decode unmarshals a response body into out, mapping the API's error
// envelope and non-2xx statuses to an APIError.
func decode(provider string, resp *resty.Response, out any) error {
	var env apiEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err == nil && env.Error {
		return &APIError{Provider: provider, StatusCode: resp.StatusCode(), Reason: env.Reason}
	}
	if resp.IsError() {
		return &APIError{Provider: provider, StatusCode: resp.StatusCode()}
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decoding %s response: %w", provider, err)
	}
	return nil
}

// Floats converts a decoded column to canonical values, padding to the
// axis length. Absent entries become NaN, never zero.
func Floats(col []*float64, axisLen int) []float64 {
	vals := make([]float64, axisLen)
	for i := range vals {
		if i < len(col) && col[i] != nil {
			vals[i] = *col[i]
		} else {
			vals[i] = math.NaN()
		}
	}
	return vals
}
