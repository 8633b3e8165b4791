package store_test

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func f64(v float64) *float64 { return &v }

// --- favorites ---

func TestFavoritesRoundTrip(t *testing.T) {
	s := openTestStore(t)

	spot := models.NewSpot("Nazare", "Leiria", "Portugal", 39.6018, -9.0703)
	fav := models.Favorite{Spot: spot, CreatedAt: time.Now()}
	require.NoError(t, s.SaveFavorite(&fav))

	got, ok, err := s.GetFavorite(spot.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Nazare", got.Name)
	assert.Equal(t, "Leiria", got.Admin1)
	assert.Nil(t, got.FaceDeg)

	list, err := s.ListFavorites()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, spot.ID, list[0].ID)
}

func TestFavoritesNewestFirst(t *testing.T) {
	s := openTestStore(t)

	first := models.Favorite{Spot: models.NewSpot("First", "", "", 1, 1)}
	second := models.Favorite{Spot: models.NewSpot("Second", "", "", 2, 2)}
	require.NoError(t, s.SaveFavorite(&first))
	require.NoError(t, s.SaveFavorite(&second))

	list, err := s.ListFavorites()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Second", list[0].Name)
	assert.Equal(t, "First", list[1].Name)
}

func TestFavoriteUpsertKeepsOneRow(t *testing.T) {
	s := openTestStore(t)

	fav := models.Favorite{Spot: models.NewSpot("Spot", "", "", 1, 2)}
	require.NoError(t, s.SaveFavorite(&fav))
	fav.Name = "Renamed"
	require.NoError(t, s.SaveFavorite(&fav))

	list, err := s.ListFavorites()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Renamed", list[0].Name)
}

func TestSetFaceDeg(t *testing.T) {
	s := openTestStore(t)

	fav := models.Favorite{Spot: models.NewSpot("Spot", "", "", 1, 2)}
	require.NoError(t, s.SaveFavorite(&fav))

	require.NoError(t, s.SetFaceDeg(fav.ID, f64(290)))
	got, _, err := s.GetFavorite(fav.ID)
	require.NoError(t, err)
	require.NotNil(t, got.FaceDeg)
	assert.InDelta(t, 290, *got.FaceDeg, 1e-9)

	// out-of-range angles normalize into [0, 360)
	require.NoError(t, s.SetFaceDeg(fav.ID, f64(-70)))
	got, _, err = s.GetFavorite(fav.ID)
	require.NoError(t, err)
	assert.InDelta(t, 290, *got.FaceDeg, 1e-9)

	require.NoError(t, s.SetFaceDeg(fav.ID, nil))
	got, _, err = s.GetFavorite(fav.ID)
	require.NoError(t, err)
	assert.Nil(t, got.FaceDeg)
}

func TestDeleteFavorite(t *testing.T) {
	s := openTestStore(t)

	fav := models.Favorite{Spot: models.NewSpot("Spot", "", "", 1, 2)}
	require.NoError(t, s.SaveFavorite(&fav))
	require.NoError(t, s.DeleteFavorite(fav.ID))

	_, ok, err := s.GetFavorite(fav.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

// --- alerts ---

func TestAlertsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	a := models.Alert{
		ID:            "a1",
		Name:          "Big swell",
		SpotIDs:       []string{"39.6018,-9.0703"},
		Enabled:       true,
		MinHs:         f64(2),
		MaxWind:       f64(25),
		WindDirCenter: f64(70),
		WindDirTol:    45,
		LookHours:     48,
		CreatedAt:     time.Now(),
	}
	require.NoError(t, s.SaveAlert(&a))

	list, err := s.ListAlerts()
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, "Big swell", got.Name)
	assert.Equal(t, []string{"39.6018,-9.0703"}, got.SpotIDs)
	require.NotNil(t, got.MinHs)
	assert.InDelta(t, 2, *got.MinHs, 1e-9)
	assert.Nil(t, got.MinSwellH, "unset thresholds stay unset")
	assert.Nil(t, got.MinIndex)
	require.NotNil(t, got.WindDirCenter)
	assert.InDelta(t, 70, *got.WindDirCenter, 1e-9)
	assert.Equal(t, 48, got.LookHours)
}

func TestAlertDefaultName(t *testing.T) {
	s := openTestStore(t)

	a := models.Alert{ID: "a1", Enabled: true}
	require.NoError(t, s.SaveAlert(&a))

	list, err := s.ListAlerts()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Surf alert", list[0].Name)
}

func TestSetAlertEnabled(t *testing.T) {
	s := openTestStore(t)

	a := models.Alert{ID: "a1", Name: "A", Enabled: true}
	require.NoError(t, s.SaveAlert(&a))
	require.NoError(t, s.SetAlertEnabled("a1", false))

	list, err := s.ListAlerts()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Enabled)
}

func TestDeleteAlertClearsRuntime(t *testing.T) {
	s := openTestStore(t)

	a := models.Alert{ID: "a1", Name: "A", Enabled: true}
	require.NoError(t, s.SaveAlert(&a))
	require.NoError(t, s.MarkFired("a1", 1234))
	require.NoError(t, s.DeleteAlert("a1"))

	list, err := s.ListAlerts()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, ok, err := s.LastFired("a1")
	require.NoError(t, err)
	assert.False(t, ok)
}

// --- runtime ---

func TestLastFiredRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.LastFired("a1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.MarkFired("a1", 1700000000000))
	ms, ok, err := s.LastFired("a1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(1700000000000), ms)

	require.NoError(t, s.MarkFired("a1", 1700000100000))
	ms, _, err = s.LastFired("a1")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000100000), ms)
}

func TestLastCheckRoundTrip(t *testing.T) {
	s := openTestStore(t)

	ms, err := s.LastCheck()
	require.NoError(t, err)
	assert.Zero(t, ms)

	require.NoError(t, s.SetLastCheck(42))
	ms, err = s.LastCheck()
	require.NoError(t, err)
	assert.Equal(t, int64(42), ms)
}

// --- settings ---

func TestSettingsDefaultsWhenEmpty(t *testing.T) {
	s := openTestStore(t)

	set, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), set)
}

func TestSettingsRoundTripAndClamp(t *testing.T) {
	s := openTestStore(t)

	set := models.DefaultSettings()
	set.WaveModel = "gwam"
	set.AlertCheckMinutes = 1    // below the 5-minute floor
	set.AlertCooldownMinutes = 9999
	require.NoError(t, s.SaveSettings(set))

	got, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "gwam", got.WaveModel)
	assert.Equal(t, 5, got.AlertCheckMinutes)
	assert.Equal(t, 1440, got.AlertCooldownMinutes)
}

// --- snapshot ---

func TestSnapshotRoundTripPreservesMissingValues(t *testing.T) {
	s := openTestStore(t)

	noSpot, noData, err := s.LastSnapshot()
	require.NoError(t, err)
	assert.Nil(t, noSpot)
	assert.Nil(t, noData)

	spot := models.NewSpot("Nazare", "Leiria", "Portugal", 39.6018, -9.0703)
	data := &models.MergedForecast{
		Marine: models.HourlySeries{
			Time: []string{"2026-08-01T00:00", "2026-08-01T01:00"},
			Values: map[string][]float64{
				"wave_height": {1.5, math.NaN()},
			},
		},
		Models:    models.ModelInfo{WaveModel: "auto", Merged: []string{"SST"}},
		Timezone:  "Europe/Lisbon",
		FetchedAt: time.Now().Truncate(time.Second),
	}
	require.NoError(t, s.SaveSnapshot(spot, data))

	gotSpot, gotData, err := s.LastSnapshot()
	require.NoError(t, err)
	require.NotNil(t, gotSpot)
	require.NotNil(t, gotData)

	assert.Equal(t, spot.ID, gotSpot.ID)
	assert.Equal(t, "Europe/Lisbon", gotData.Timezone)
	assert.InDelta(t, 1.5, gotData.Marine.At("wave_height", 0), 1e-9)
	assert.True(t, math.IsNaN(gotData.Marine.At("wave_height", 1)), "null survives the round trip as NaN")
	assert.Equal(t, []string{"SST"}, gotData.Models.Merged)
}

func TestSnapshotOverwrites(t *testing.T) {
	s := openTestStore(t)

	first := models.NewSpot("First", "", "", 1, 1)
	second := models.NewSpot("Second", "", "", 2, 2)
	data := &models.MergedForecast{FetchedAt: time.Now()}

	require.NoError(t, s.SaveSnapshot(first, data))
	require.NoError(t, s.SaveSnapshot(second, data))

	gotSpot, _, err := s.LastSnapshot()
	require.NoError(t, err)
	assert.Equal(t, second.ID, gotSpot.ID)
}
