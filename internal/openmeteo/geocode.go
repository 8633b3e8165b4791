package openmeteo

import (
	"context"
	"fmt"
	"strconv"
)

// Place is one geocoding result.
type Place struct {
	Name      string  `json:"name"`
	Admin1    string  `json:"admin1"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geocodeResponse struct {
	Results []Place `json:"results"`
}

// Search geocodes a free-text query into an ordered list of places.
func (c *Client) Search(ctx context.Context, query string, count int) ([]Place, error) {
	if count <= 0 {
		count = 10
	}
	params := map[string]string{
		"name":   query,
		"count":  strconv.Itoa(count),
		"format": "json",
	}

	resp, err := c.http.R().SetContext(ctx).SetQueryParams(params).Get(c.geocodeURL)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", query, err)
	}

	var out geocodeResponse
	if err := decode("geocoding", resp, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}
