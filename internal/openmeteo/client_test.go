package openmeteo_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfscope/surfscope/internal/openmeteo"
)

func marineServer(t *testing.T, status int, body string) (*openmeteo.Client, *url.Values) {
	t.Helper()
	var query url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c := openmeteo.NewClient(
		openmeteo.WithMarineURL(srv.URL),
		openmeteo.WithWeatherURL(srv.URL),
		openmeteo.WithGeocodeURL(srv.URL),
	)
	return c, &query
}

func TestFetchMarineParams(t *testing.T) {
	body := `{"timezone":"Europe/Lisbon","hourly":{"time":["2026-08-01T00:00"],"wave_height":[1.5]}}`
	c, query := marineServer(t, http.StatusOK, body)

	resp, err := c.FetchMarine(context.Background(), 39.6018, -9.0703,
		openmeteo.MarineWaves, "gwam", "auto")
	require.NoError(t, err)

	q := *query
	assert.Equal(t, "39.6018", q.Get("latitude"))
	assert.Equal(t, "-9.0703", q.Get("longitude"))
	assert.Equal(t, "8", q.Get("forecast_days"))
	assert.Equal(t, "sea", q.Get("cell_selection"))
	assert.Equal(t, "gwam", q.Get("models"))
	assert.Equal(t, "auto", q.Get("timezone"))
	assert.Contains(t, q.Get("hourly"), "wave_height")

	assert.Equal(t, "Europe/Lisbon", resp.Timezone)
	require.Len(t, resp.Hourly.WaveHeight, 1)
	assert.InDelta(t, 1.5, *resp.Hourly.WaveHeight[0], 1e-9)
}

func TestFetchMarineOmitsModelsWhenAuto(t *testing.T) {
	c, query := marineServer(t, http.StatusOK, `{"hourly":{"time":[]}}`)

	_, err := c.FetchMarine(context.Background(), 0, 0, openmeteo.MarineAll, "", "auto")
	require.NoError(t, err)
	assert.False(t, (*query).Has("models"))
}

func TestFetchMarineNullsDecodeAsNil(t *testing.T) {
	body := `{"hourly":{"time":["2026-08-01T00:00","2026-08-01T01:00"],"wave_height":[1.5,null]}}`
	c, _ := marineServer(t, http.StatusOK, body)

	resp, err := c.FetchMarine(context.Background(), 0, 0, openmeteo.MarineWaves, "", "auto")
	require.NoError(t, err)
	require.Len(t, resp.Hourly.WaveHeight, 2)
	assert.NotNil(t, resp.Hourly.WaveHeight[0])
	assert.Nil(t, resp.Hourly.WaveHeight[1])
}

func TestErrorEnvelope(t *testing.T) {
	c, _ := marineServer(t, http.StatusBadRequest, `{"error":true,"reason":"Invalid coordinates"}`)

	_, err := c.FetchMarine(context.Background(), 999, 999, openmeteo.MarineAll, "", "auto")
	require.Error(t, err)

	var apiErr *openmeteo.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid coordinates", apiErr.Reason)
	assert.Contains(t, apiErr.Error(), "Invalid coordinates")
}

func TestNonOKWithoutEnvelope(t *testing.T) {
	c, _ := marineServer(t, http.StatusBadGateway, `upstream broke`)

	_, err := c.FetchMarine(context.Background(), 0, 0, openmeteo.MarineAll, "", "auto")
	require.Error(t, err)

	var apiErr *openmeteo.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestFetchWeatherPinsCanonicalUnits(t *testing.T) {
	body := `{"hourly":{"time":["2026-08-01T00:00"],"wind_speed_10m":[12.5]}}`
	c, query := marineServer(t, http.StatusOK, body)

	resp, err := c.FetchWeather(context.Background(), 39.6, -9.07, "auto")
	require.NoError(t, err)

	q := *query
	assert.Equal(t, "kmh", q.Get("wind_speed_unit"))
	assert.Equal(t, "celsius", q.Get("temperature_unit"))
	require.Len(t, resp.Hourly.WindSpeed, 1)
	assert.InDelta(t, 12.5, *resp.Hourly.WindSpeed[0], 1e-9)
}

func TestSearch(t *testing.T) {
	body := `{"results":[{"name":"Nazaré","admin1":"Leiria","country":"Portugal","latitude":39.6,"longitude":-9.07}]}`
	c, query := marineServer(t, http.StatusOK, body)

	places, err := c.Search(context.Background(), "nazare", 5)
	require.NoError(t, err)

	q := *query
	assert.Equal(t, "nazare", q.Get("name"))
	assert.Equal(t, "5", q.Get("count"))

	require.Len(t, places, 1)
	assert.Equal(t, "Nazaré", places[0].Name)
	assert.Equal(t, "Portugal", places[0].Country)
}

func TestSearchNoResults(t *testing.T) {
	c, _ := marineServer(t, http.StatusOK, `{}`)

	places, err := c.Search(context.Background(), "xyzzy", 5)
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestFloatsPadsToAxis(t *testing.T) {
	v := 1.5
	vals := openmeteo.Floats([]*float64{&v, nil}, 4)
	require.Len(t, vals, 4)
	assert.InDelta(t, 1.5, vals[0], 1e-9)
	assert.True(t, math.IsNaN(vals[1]))
	assert.True(t, math.IsNaN(vals[2]))
	assert.True(t, math.IsNaN(vals[3]))

	assert.Empty(t, openmeteo.Floats(nil, 0))
}
