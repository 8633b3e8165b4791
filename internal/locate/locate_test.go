package locate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfscope/surfscope/internal/locate"
)

func TestLocateSuccess(t *testing.T) {
	var gotFields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","lat":38.72,"lon":-9.14,"city":"Lisbon","country":"Portugal"}`))
	}))
	defer srv.Close()

	l := locate.NewLocator(locate.WithURL(srv.URL))
	pos, err := l.Locate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "status,message,lat,lon,city,country", gotFields)
	assert.InDelta(t, 38.72, pos.Lat, 1e-9)
	assert.InDelta(t, -9.14, pos.Lon, 1e-9)
	assert.Equal(t, "Lisbon", pos.City)
	assert.Equal(t, "Portugal", pos.Country)
}

func TestLocateProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	l := locate.NewLocator(locate.WithURL(srv.URL))
	_, err := l.Locate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private range")
}

func TestLocateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	l := locate.NewLocator(locate.WithURL(srv.URL))
	_, err := l.Locate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}
