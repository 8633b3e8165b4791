package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/surfscope/surfscope/internal/alerts"
	"github.com/surfscope/surfscope/internal/compare"
	"github.com/surfscope/surfscope/internal/export"
	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/locate"
	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/store"
	"github.com/surfscope/surfscope/internal/timeseries"
)

// Message types for async operations

// searchResultsMsg is sent when a place search completes
type searchResultsMsg struct {
	query  string
	places []openmeteo.Place
	err    error
}

// locatedMsg is sent when IP geolocation completes
type locatedMsg struct {
	pos *locate.Position
	err error
}

// forecastLoadedMsg is sent when a merged forecast has been fetched.
// seq guards against a stale load landing after the user moved on.
type forecastLoadedMsg struct {
	seq  int
	spot models.Spot
	data *models.MergedForecast
	err  error
}

// favoritesMsg carries the current favorites list, sent after any
// favorite read or mutation
type favoritesMsg struct {
	favorites []models.Favorite
	err       error
}

// alertsMsg carries the current alerts list, sent after any alert
// read or mutation
type alertsMsg struct {
	alerts []models.Alert
	err    error
}

// compareMsg is sent when a favorites comparison pass completes
type compareMsg struct {
	results []compare.Result
	err     error
}

// exportDoneMsg is sent when a CSV export finishes
type exportDoneMsg struct {
	path string
	err  error
}

// settingsSavedMsg is sent after settings are persisted
type settingsSavedMsg struct {
	err error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// searchPlaces geocodes a place name in the background
func searchPlaces(client *openmeteo.Client, query string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		places, err := client.Search(ctx, query, 10)
		return searchResultsMsg{query: query, places: places, err: err}
	}
}

// locateMe resolves a rough position from the public IP
func locateMe(locator *locate.Locator) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pos, err := locator.Locate(ctx)
		return locatedMsg{pos: pos, err: err}
	}
}

// loadForecast fetches the merged forecast for a spot and saves it as the
// startup snapshot. Snapshot write failures are not fatal to the load.
func loadForecast(loader *forecast.Loader, st *store.Store, seq int, spot models.Spot, set models.Settings) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		data, err := loader.Load(ctx, spot.Lat, spot.Lon, set)
		if err == nil {
			_ = st.SaveSnapshot(spot, data)
		}
		return forecastLoadedMsg{seq: seq, spot: spot, data: data, err: err}
	}
}

// loadFavorites reads the favorites list
func loadFavorites(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		favs, err := st.ListFavorites()
		return favoritesMsg{favorites: favs, err: err}
	}
}

// saveFavorite adds a spot to favorites and returns the refreshed list
func saveFavorite(st *store.Store, spot models.Spot) tea.Cmd {
	return func() tea.Msg {
		f := models.Favorite{Spot: spot, CreatedAt: time.Now()}
		if err := st.SaveFavorite(&f); err != nil {
			return favoritesMsg{err: err}
		}
		favs, err := st.ListFavorites()
		return favoritesMsg{favorites: favs, err: err}
	}
}

// deleteFavorite removes a favorite and returns the refreshed list
func deleteFavorite(st *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		if err := st.DeleteFavorite(id); err != nil {
			return favoritesMsg{err: err}
		}
		favs, err := st.ListFavorites()
		return favoritesMsg{favorites: favs, err: err}
	}
}

// setFaceAngle records a favorite's shore-facing direction
func setFaceAngle(st *store.Store, id string, deg *float64) tea.Cmd {
	return func() tea.Msg {
		if err := st.SetFaceDeg(id, deg); err != nil {
			return favoritesMsg{err: err}
		}
		favs, err := st.ListFavorites()
		return favoritesMsg{favorites: favs, err: err}
	}
}

// loadAlerts reads the alerts list
func loadAlerts(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		list, err := st.ListAlerts()
		return alertsMsg{alerts: list, err: err}
	}
}

// createAlert persists a new alert and returns the refreshed list
func createAlert(st *store.Store, a models.Alert) tea.Cmd {
	return func() tea.Msg {
		if err := st.SaveAlert(&a); err != nil {
			return alertsMsg{err: err}
		}
		list, err := st.ListAlerts()
		return alertsMsg{alerts: list, err: err}
	}
}

// toggleAlert flips an alert's enabled flag and returns the refreshed list
func toggleAlert(st *store.Store, id string, enabled bool) tea.Cmd {
	return func() tea.Msg {
		if err := st.SetAlertEnabled(id, enabled); err != nil {
			return alertsMsg{err: err}
		}
		list, err := st.ListAlerts()
		return alertsMsg{alerts: list, err: err}
	}
}

// deleteAlert removes an alert and returns the refreshed list
func deleteAlert(st *store.Store, id string) tea.Cmd {
	return func() tea.Msg {
		if err := st.DeleteAlert(id); err != nil {
			return alertsMsg{err: err}
		}
		list, err := st.ListAlerts()
		return alertsMsg{alerts: list, err: err}
	}
}

// runCompare ranks all favorites by their best upcoming hour
func runCompare(comparator *compare.Comparator, windowHours int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		results, err := comparator.Run(ctx, windowHours)
		return compareMsg{results: results, err: err}
	}
}

// exportForecast writes the next 48 hours as CSV into the working directory
func exportForecast(spot models.Spot, data *models.MergedForecast) tea.Cmd {
	return func() tea.Msg {
		name := strings.ToLower(strings.ReplaceAll(spot.Name, " ", "_"))
		if name == "" {
			name = "spot"
		}
		path := fmt.Sprintf("surfscope_%s_%s.csv", name, time.Now().Format("20060102_1504"))

		f, err := os.Create(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer f.Close()

		start := timeseries.NowIndex(data.Marine.Time, time.Now())
		if err := export.WriteCSV(f, data, start, 48); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

// saveSettings persists settings and restarts the alert scheduler so a
// changed check cadence takes effect
func saveSettings(st *store.Store, set models.Settings, sched *alerts.Scheduler) tea.Cmd {
	return func() tea.Msg {
		if err := st.SaveSettings(set); err != nil {
			return settingsSavedMsg{err: err}
		}
		if sched != nil {
			set.Clamp()
			sched.Restart(time.Duration(set.AlertCheckMinutes) * time.Minute)
		}
		return settingsSavedMsg{}
	}
}
