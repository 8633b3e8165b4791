package alerts_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfscope/surfscope/internal/alerts"
	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/openmeteo"
)

// --- fixtures ---

func axis(n int) []string {
	times := make([]string, n)
	for i := range times {
		times[i] = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).
			Add(time.Duration(i) * time.Hour).Format("2006-01-02T15:04")
	}
	return times
}

func series(times []string, cols map[string][]float64) models.HourlySeries {
	return models.HourlySeries{Time: times, Values: cols}
}

func data(n int, marine, weather map[string][]float64) *models.MergedForecast {
	times := axis(n)
	return &models.MergedForecast{
		Marine:  series(times, marine),
		Weather: series(times, weather),
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func f64(v float64) *float64 { return &v }

var testStart = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

// --- Evaluate ---

func TestEvaluateFindsEarliestMatch(t *testing.T) {
	hs := repeat(0.5, 12)
	hs[4], hs[7] = 2.0, 2.5
	d := data(12, map[string][]float64{
		openmeteo.VarWaveHeight:  hs,
		openmeteo.VarSwellPeriod: repeat(10, 12),
	}, nil)

	a := models.Alert{MinHs: f64(1.5)}
	hit, ok := alerts.Evaluate(a, d, testStart)
	require.True(t, ok)
	assert.Equal(t, 4, hit.Index)
	assert.InDelta(t, 2.0, hit.WaveHeight, 1e-9)
}

func TestEvaluateAndsAllThresholds(t *testing.T) {
	d := data(6, map[string][]float64{
		openmeteo.VarWaveHeight:  repeat(2.0, 6),
		openmeteo.VarSwellHeight: repeat(1.5, 6),
		openmeteo.VarSwellPeriod: repeat(12, 6),
	}, map[string][]float64{
		openmeteo.VarWindSpeed:     repeat(30, 6),
		openmeteo.VarWindDirection: repeat(90, 6),
	})

	a := models.Alert{
		MinHs:   f64(1.5),
		MaxWind: f64(20), // wind is 30 everywhere, so never satisfied
	}
	_, ok := alerts.Evaluate(a, d, testStart)
	assert.False(t, ok)

	a.MaxWind = f64(40)
	hit, ok := alerts.Evaluate(a, d, testStart)
	require.True(t, ok)
	assert.Equal(t, 0, hit.Index)
}

func TestEvaluateSkipsHoursMissingNeededValues(t *testing.T) {
	hs := repeat(math.NaN(), 6)
	hs[3] = 2.0
	d := data(6, map[string][]float64{
		openmeteo.VarWaveHeight:  hs,
		openmeteo.VarSwellPeriod: repeat(10, 6),
	}, nil)

	a := models.Alert{MinHs: f64(1.0)}
	hit, ok := alerts.Evaluate(a, d, testStart)
	require.True(t, ok)
	assert.Equal(t, 3, hit.Index)
}

func TestEvaluateWindDirectionTolerance(t *testing.T) {
	d := data(3, map[string][]float64{
		openmeteo.VarWaveHeight:  repeat(2.0, 3),
		openmeteo.VarSwellPeriod: repeat(10, 3),
	}, map[string][]float64{
		openmeteo.VarWindSpeed:     repeat(10, 3),
		openmeteo.VarWindDirection: repeat(350, 3),
	})

	a := models.Alert{MinHs: f64(1.0), WindDirCenter: f64(30), WindDirTol: 45}
	_, ok := alerts.Evaluate(a, d, testStart)
	assert.True(t, ok, "350° vs 30° wraps to 40°, inside 45°")

	a.WindDirTol = 30
	_, ok = alerts.Evaluate(a, d, testStart)
	assert.False(t, ok)
}

func TestEvaluateRespectsLookWindow(t *testing.T) {
	hs := repeat(0.5, 48)
	hs[30] = 3.0
	d := data(48, map[string][]float64{
		openmeteo.VarWaveHeight:  hs,
		openmeteo.VarSwellPeriod: repeat(10, 48),
	}, nil)

	a := models.Alert{MinHs: f64(2.0), LookHours: 24}
	_, ok := alerts.Evaluate(a, d, testStart)
	assert.False(t, ok, "match sits outside the look-ahead window")

	a.LookHours = 36
	hit, ok := alerts.Evaluate(a, d, testStart)
	require.True(t, ok)
	assert.Equal(t, 30, hit.Index)
}

func TestEvaluateMinIndexUsesSurfIndex(t *testing.T) {
	d := data(3, map[string][]float64{
		openmeteo.VarWaveHeight:  repeat(2.0, 3), // index = 4 * 12 = 48
		openmeteo.VarSwellPeriod: repeat(12, 3),
	}, nil)

	a := models.Alert{MinIndex: f64(40)}
	_, ok := alerts.Evaluate(a, d, testStart)
	assert.True(t, ok)

	a.MinIndex = f64(50)
	_, ok = alerts.Evaluate(a, d, testStart)
	assert.False(t, ok)
}

func TestEvaluateEmptyData(t *testing.T) {
	_, ok := alerts.Evaluate(models.Alert{}, nil, testStart)
	assert.False(t, ok)
	_, ok = alerts.Evaluate(models.Alert{}, &models.MergedForecast{}, testStart)
	assert.False(t, ok)
}

// --- engine ---

type fakeStore struct {
	settings  models.Settings
	favorites []models.Favorite
	alertList []models.Alert
	snapSpot  *models.Spot
	snapData  *models.MergedForecast

	fired     map[string]int64
	lastCheck int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{settings: models.DefaultSettings(), fired: map[string]int64{}}
}

func (s *fakeStore) LoadSettings() (models.Settings, error)      { return s.settings, nil }
func (s *fakeStore) ListFavorites() ([]models.Favorite, error)   { return s.favorites, nil }
func (s *fakeStore) ListAlerts() ([]models.Alert, error)         { return s.alertList, nil }
func (s *fakeStore) LastSnapshot() (*models.Spot, *models.MergedForecast, error) {
	return s.snapSpot, s.snapData, nil
}
func (s *fakeStore) LastFired(id string) (int64, bool, error) {
	ms, ok := s.fired[id]
	return ms, ok, nil
}
func (s *fakeStore) MarkFired(id string, ms int64) error { s.fired[id] = ms; return nil }
func (s *fakeStore) SetLastCheck(ms int64) error         { s.lastCheck = ms; return nil }

type fakeLoader struct {
	data  *models.MergedForecast
	err   error
	calls int
}

func (l *fakeLoader) Load(context.Context, float64, float64, models.Settings) (*models.MergedForecast, error) {
	l.calls++
	return l.data, l.err
}

type recordingNotifier struct {
	titles []string
	bodies []string
	err    error
}

func (n *recordingNotifier) Notify(title, body string) error {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return n.err
}

func goodData(n int) *models.MergedForecast {
	return data(n, map[string][]float64{
		openmeteo.VarWaveHeight:  repeat(2.0, n),
		openmeteo.VarSwellHeight: repeat(1.5, n),
		openmeteo.VarSwellPeriod: repeat(12, n),
	}, map[string][]float64{
		openmeteo.VarWindSpeed:     repeat(10, n),
		openmeteo.VarWindDirection: repeat(90, n),
	})
}

func testEngine(store *fakeStore, loader *fakeLoader, notifier *recordingNotifier, clock clockwork.Clock) *alerts.Engine {
	return alerts.NewEngine(store, loader, notifier, clock, zerolog.Nop())
}

func TestRunAllFiresOnSnapshotSpot(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	spot := models.NewSpot("Praia do Norte", "", "Portugal", 39.6, -9.08)
	store.snapSpot = &spot
	store.snapData = goodData(24)
	store.alertList = []models.Alert{{ID: "a1", Name: "Nazare", Enabled: true, MinHs: f64(1.5)}}

	loader := &fakeLoader{}
	notifier := &recordingNotifier{}
	e := testEngine(store, loader, notifier, clock)

	require.NoError(t, e.RunAll(context.Background()))

	require.Len(t, notifier.titles, 1)
	assert.Contains(t, notifier.titles[0], "Nazare")
	assert.Equal(t, 0, loader.calls, "snapshot data should satisfy the pass")
	assert.Contains(t, store.fired, "a1")
	assert.Equal(t, clock.Now().UnixMilli(), store.lastCheck)
}

func TestRunAllSkipsDisabledAlerts(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	spot := models.NewSpot("Spot", "", "", 1, 2)
	store.snapSpot = &spot
	store.snapData = goodData(24)
	store.alertList = []models.Alert{{ID: "a1", Enabled: false, MinHs: f64(0.5)}}

	notifier := &recordingNotifier{}
	e := testEngine(store, &fakeLoader{}, notifier, clock)

	require.NoError(t, e.RunAll(context.Background()))
	assert.Empty(t, notifier.titles)
}

func TestRunAllCooldownSuppressesRefire(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	spot := models.NewSpot("Spot", "", "", 1, 2)
	store.snapSpot = &spot
	store.snapData = goodData(24)
	store.alertList = []models.Alert{{ID: "a1", Name: "A", Enabled: true, MinHs: f64(1.5)}}

	notifier := &recordingNotifier{}
	e := testEngine(store, &fakeLoader{}, notifier, clock)

	require.NoError(t, e.RunAll(context.Background()))
	require.Len(t, notifier.titles, 1)

	// within the default 180-minute cooldown: suppressed
	clock.Advance(30 * time.Minute)
	require.NoError(t, e.RunAll(context.Background()))
	assert.Len(t, notifier.titles, 1)

	// past the cooldown: fires again
	clock.Advance(160 * time.Minute)
	require.NoError(t, e.RunAll(context.Background()))
	assert.Len(t, notifier.titles, 2)
}

func TestAlertFiresOncePerPassAcrossSpots(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	favA := models.Favorite{Spot: models.NewSpot("Supertubos", "", "Portugal", 39.34, -9.36)}
	favB := models.Favorite{Spot: models.NewSpot("Coxos", "", "Portugal", 38.99, -9.42)}
	store.favorites = []models.Favorite{favA, favB}
	store.alertList = []models.Alert{
		{ID: "a1", Name: "A", Enabled: true, SpotIDs: []string{favA.ID, favB.ID}, MinHs: f64(1.5)},
	}

	// Both spots qualify; the fire on the first puts the alert id in
	// cooldown so the second spot cannot ring it again.
	loader := &fakeLoader{data: goodData(24)}
	notifier := &recordingNotifier{}
	e := testEngine(store, loader, notifier, clock)

	require.NoError(t, e.RunAll(context.Background()))
	assert.Len(t, notifier.titles, 1)

	// and the cooldown holds across spots on the next pass too
	clock.Advance(30 * time.Minute)
	require.NoError(t, e.RunAll(context.Background()))
	assert.Len(t, notifier.titles, 1)
}

func TestRunAllFetchesFavoriteSpots(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	fav := models.Favorite{Spot: models.NewSpot("Supertubos", "", "Portugal", 39.34, -9.36)}
	store.favorites = []models.Favorite{fav}
	store.alertList = []models.Alert{
		{ID: "a1", Name: "A", Enabled: true, SpotIDs: []string{fav.ID}, MinHs: f64(1.5)},
	}

	loader := &fakeLoader{data: goodData(24)}
	notifier := &recordingNotifier{}
	e := testEngine(store, loader, notifier, clock)

	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, 1, loader.calls)
	assert.Len(t, notifier.titles, 1)
}

func TestRunAllSharesFetchesAcrossAlerts(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	fav := models.Favorite{Spot: models.NewSpot("Spot", "", "", 1, 2)}
	store.favorites = []models.Favorite{fav}
	store.alertList = []models.Alert{
		{ID: "a1", Name: "A", Enabled: true, SpotIDs: []string{fav.ID}, MinHs: f64(1.5)},
		{ID: "a2", Name: "B", Enabled: true, SpotIDs: []string{fav.ID}, MinSwellP: f64(10)},
	}

	loader := &fakeLoader{data: goodData(24)}
	e := testEngine(store, loader, &recordingNotifier{}, clock)

	require.NoError(t, e.RunAll(context.Background()))
	assert.Equal(t, 1, loader.calls, "one fetch serves both alerts")
}

func TestRunAllSkipsSpotOnFetchError(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	fav := models.Favorite{Spot: models.NewSpot("Spot", "", "", 1, 2)}
	store.favorites = []models.Favorite{fav}
	store.alertList = []models.Alert{
		{ID: "a1", Name: "A", Enabled: true, SpotIDs: []string{fav.ID}, MinHs: f64(0.1)},
	}

	loader := &fakeLoader{err: errors.New("offline")}
	notifier := &recordingNotifier{}
	e := testEngine(store, loader, notifier, clock)

	require.NoError(t, e.RunAll(context.Background()))
	assert.Empty(t, notifier.titles)
	assert.Equal(t, clock.Now().UnixMilli(), store.lastCheck, "pass still completes")
}

func TestFireSurvivesNotifierError(t *testing.T) {
	clock := clockwork.NewFakeClockAt(testStart)
	store := newFakeStore()
	spot := models.NewSpot("Spot", "", "", 1, 2)
	store.snapSpot = &spot
	store.snapData = goodData(24)
	store.alertList = []models.Alert{{ID: "a1", Name: "A", Enabled: true, MinHs: f64(1.5)}}

	notifier := &recordingNotifier{err: errors.New("no notification daemon")}
	e := testEngine(store, &fakeLoader{}, notifier, clock)

	require.NoError(t, e.RunAll(context.Background()))
	assert.Contains(t, store.fired, "a1", "fire time recorded even when delivery fails")
}
