// Package locate resolves a rough position from the caller's public IP.
// Good enough to seed the spot search near the user; not good enough to
// pick a break.
package locate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultURL = "http://ip-api.com/json/"

// Position is a coarse IP-derived location.
type Position struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

type ipAPIResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// Locator queries an ip-api.com compatible endpoint.
type Locator struct {
	url  string
	http *resty.Client
}

// Option configures a Locator.
type Option func(*Locator)

// WithURL overrides the geolocation endpoint.
func WithURL(url string) Option {
	return func(l *Locator) { l.url = url }
}

// NewLocator builds a Locator with a short timeout; locating is a
// convenience, not something worth stalling startup for.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{
		url: defaultURL,
		http: resty.New().
			SetTimeout(10 * time.Second).
			SetHeader("User-Agent", "SurfScope/1.0 (github.com/surfscope/surfscope)"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate returns the caller's approximate position.
func (l *Locator) Locate(ctx context.Context) (*Position, error) {
	var body ipAPIResponse
	resp, err := l.http.R().
		SetContext(ctx).
		SetQueryParam("fields", "status,message,lat,lon,city,country").
		SetResult(&body).
		Get(l.url)
	if err != nil {
		return nil, fmt.Errorf("locating via IP: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("locating via IP: HTTP %d", resp.StatusCode())
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("locating via IP: %s", body.Message)
	}
	return &Position{Lat: body.Lat, Lon: body.Lon, City: body.City, Country: body.Country}, nil
}
