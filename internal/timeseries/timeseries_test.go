package timeseries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfscope/surfscope/internal/timeseries"
)

func TestParseFormats(t *testing.T) {
	for _, ts := range []string{
		"2026-08-29T14:00",
		"2026-08-29T14:00:00",
		"2026-08-29T14:00:00Z",
	} {
		got, err := timeseries.Parse(ts)
		require.NoError(t, err, ts)
		assert.Equal(t, 14, got.Hour(), ts)
	}

	_, err := timeseries.Parse("not a time")
	assert.Error(t, err)
}

func TestBuildIndex(t *testing.T) {
	idx := timeseries.BuildIndex([]string{"2026-08-29T00:00", "2026-08-29T01:00"})
	assert.Equal(t, 0, idx["2026-08-29T00:00"])
	assert.Equal(t, 1, idx["2026-08-29T01:00"])
	_, ok := idx["2026-08-29T02:00"]
	assert.False(t, ok)
}

func TestNowIndex(t *testing.T) {
	times := []string{
		"2026-08-29T00:00",
		"2026-08-29T01:00",
		"2026-08-29T02:00",
	}
	loc := time.UTC

	// before the axis
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, loc)
	assert.Equal(t, 0, timeseries.NowIndex(times, now))

	// mid-axis picks the nearest hour at or after now's hour
	now = time.Date(2026, 8, 29, 1, 30, 0, 0, loc)
	assert.Equal(t, 1, timeseries.NowIndex(times, now))

	// past the axis clamps to the last entry
	now = time.Date(2026, 8, 30, 0, 0, 0, 0, loc)
	assert.Equal(t, 2, timeseries.NowIndex(times, now))

	assert.Equal(t, 0, timeseries.NowIndex(nil, now))
}

func TestNowIndexAnchorsInNowsLocation(t *testing.T) {
	times := []string{
		"2026-08-29T10:00",
		"2026-08-29T11:00",
		"2026-08-29T12:00",
		"2026-08-29T13:00",
		"2026-08-29T14:00",
	}

	// Zone-less axis entries are wall-clock local. Noon in UTC+5 must
	// anchor at the 12:00 entry, not drift by the UTC offset.
	loc := time.FixedZone("UTC+5", 5*3600)
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, loc)
	assert.Equal(t, 2, timeseries.NowIndex(times, now))

	loc = time.FixedZone("UTC-7", -7*3600)
	now = time.Date(2026, 8, 29, 13, 20, 0, 0, loc)
	assert.Equal(t, 3, timeseries.NowIndex(times, now))
}

func TestParseInResolvesZonelessInLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)

	got, err := timeseries.ParseIn("2026-08-29T10:00", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 10, got.Hour())

	// An explicit offset wins over the requested location.
	got, err = timeseries.ParseIn("2026-08-29T10:00:00Z", loc)
	require.NoError(t, err)
	assert.Equal(t, 10, got.UTC().Hour())
}

func TestNowIndexSkipsUnparseable(t *testing.T) {
	times := []string{"garbage", "2026-08-29T01:00", "2026-08-29T02:00"}
	now := time.Date(2026, 8, 29, 1, 10, 0, 0, time.UTC)
	assert.Equal(t, 1, timeseries.NowIndex(times, now))
}

func TestWindowEnd(t *testing.T) {
	assert.Equal(t, 24, timeseries.WindowEnd(0, 24, 192))
	assert.Equal(t, 192, timeseries.WindowEnd(180, 24, 192))
	assert.Equal(t, 5, timeseries.WindowEnd(0, 24, 5))
}
