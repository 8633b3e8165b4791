package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/surfscope/surfscope/internal/alerts"
	"github.com/surfscope/surfscope/internal/compare"
	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/locate"
	"github.com/surfscope/surfscope/internal/models"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/store"
	"github.com/surfscope/surfscope/internal/units"
)

// AppState represents the current state of the application
type AppState int

const (
	StateSearch    AppState = iota // Search for a surf spot by name
	StateResults                   // Show geocoding results
	StateLoading                   // Loading forecast data
	StateDashboard                 // Main forecast dashboard
	StatePrompt                    // Inline value prompt (face angle, alert threshold)
	StateError                     // Error state
)

// Tab identifies a dashboard pane
type Tab int

const (
	TabSummary Tab = iota
	TabTable
	TabTides
	TabChart
	TabFavorites
	TabAlerts
	TabCompare
)

var tabNames = [...]string{"Summary", "Table", "Tides", "Chart", "Favorites", "Alerts", "Compare"}

type promptKind int

const (
	promptFaceAngle promptKind = iota
	promptAlertWave
)

// Deps are the wired services the dashboard drives.
type Deps struct {
	Store      *store.Store
	Client     *openmeteo.Client
	Loader     *forecast.Loader
	Locator    *locate.Locator
	Comparator *compare.Comparator
	Scheduler  *alerts.Scheduler // nil when alert checking runs elsewhere
	Log        zerolog.Logger
}

// Model represents the application's state
type Model struct {
	deps Deps

	state  AppState
	tab    Tab
	width  int
	height int
	err    error
	status string

	// Search
	searchInput textinput.Model
	searchQuery string

	// Geocoding results
	places      []openmeteo.Place
	resultsList list.Model

	// Current spot and forecast
	spot    *models.Spot
	data    *models.MergedForecast
	loadSeq int
	loading bool

	settings models.Settings

	// Favorites
	favorites []models.Favorite
	favList   list.Model

	// Alerts
	alerts      []models.Alert
	alertCursor int

	// Comparison
	compareResults []compare.Result
	compared       bool
	comparing      bool

	// Prompt
	prompt      promptKind
	promptInput textinput.Model
	promptFavID string

	spinner spinner.Model
}

// NewModel creates the application model, restoring the last viewed spot
// from the store when one exists.
func NewModel(deps Deps) Model {
	ti := textinput.New()
	ti.Placeholder = "Search a surf spot (e.g. Nazare or Bells Beach)..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 60

	pi := textinput.New()
	pi.CharLimit = 10
	pi.Width = 10

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := Model{
		deps:        deps,
		state:       StateSearch,
		searchInput: ti,
		promptInput: pi,
		spinner:     s,
		settings:    models.DefaultSettings(),
		favList:     createFavoritesList(nil, 80, 20),
	}

	if set, err := deps.Store.LoadSettings(); err == nil {
		m.settings = set
	} else {
		deps.Log.Warn().Err(err).Msg("loading settings, using defaults")
	}

	spot, data, err := deps.Store.LastSnapshot()
	if err != nil {
		deps.Log.Warn().Err(err).Msg("restoring snapshot")
	}
	if spot != nil && data != nil {
		m.spot = spot
		m.data = data
		m.state = StateDashboard
		m.loadSeq = 1 // Init refreshes the restored forecast
	}

	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		loadFavorites(m.deps.Store),
		loadAlerts(m.deps.Store),
	}

	if m.spot != nil {
		cmds = append(cmds, loadForecast(m.deps.Loader, m.deps.Store, m.loadSeq, *m.spot, m.settings))
	} else {
		cmds = append(cmds, textinput.Blink)
	}

	return tea.Batch(cmds...)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateResults {
			m.resultsList.SetSize(msg.Width-4, msg.Height-10)
		}
		m.favList.SetSize(msg.Width-4, msg.Height-14)
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading || m.comparing {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("search failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		if len(msg.places) == 0 {
			m.err = fmt.Errorf("no places found for %q", msg.query)
			m.state = StateError
			return m, nil
		}
		m.places = msg.places
		m.resultsList = createResultsList(msg.places, m.width-4, m.height-10)
		m.state = StateResults
		return m, nil

	case locatedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("locating failed: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		spot := models.NewSpot(msg.pos.City, "", msg.pos.Country, msg.pos.Lat, msg.pos.Lon)
		return m.startLoad(spot)

	case forecastLoadedMsg:
		if msg.seq != m.loadSeq {
			// A newer load superseded this one
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = fmt.Errorf("loading forecast: %w", msg.err)
			m.state = StateError
			return m, nil
		}
		spot := msg.spot
		m.spot = &spot
		m.data = msg.data
		m.state = StateDashboard
		m.status = ""
		return m, nil

	case favoritesMsg:
		if msg.err != nil {
			m.status = "favorites: " + msg.err.Error()
			return m, nil
		}
		m.favorites = msg.favorites
		m.favList = createFavoritesList(msg.favorites, m.width-4, m.height-14)
		return m, nil

	case alertsMsg:
		if msg.err != nil {
			m.status = "alerts: " + msg.err.Error()
			return m, nil
		}
		m.alerts = msg.alerts
		if m.alertCursor >= len(m.alerts) {
			m.alertCursor = len(m.alerts) - 1
		}
		if m.alertCursor < 0 {
			m.alertCursor = 0
		}
		return m, nil

	case compareMsg:
		m.comparing = false
		m.compared = true
		if msg.err != nil {
			m.status = "compare: " + msg.err.Error()
			return m, nil
		}
		m.compareResults = msg.results
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported " + msg.path
		}
		return m, nil

	case settingsSavedMsg:
		if msg.err != nil {
			m.status = "settings: " + msg.err.Error()
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.state {
		case StateSearch:
			return m.handleSearchInput(keyMsg)

		case StateResults:
			return m.handleResults(msg)

		case StateDashboard:
			return m.handleDashboard(keyMsg)

		case StatePrompt:
			return m.handlePrompt(keyMsg)

		case StateError:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			// Any other key returns to the dashboard if there is one
			m.err = nil
			if m.data != nil {
				m.state = StateDashboard
			} else {
				m.state = StateSearch
				m.searchInput.Focus()
				return m, textinput.Blink
			}
			return m, nil

		case StateLoading:
			if keyMsg.String() == "q" {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	switch m.state {
	case StateSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case StateResults:
		m.resultsList, cmd = m.resultsList.Update(msg)
	case StatePrompt:
		m.promptInput, cmd = m.promptInput.Update(msg)
	}

	return m, cmd
}

// startLoad kicks off a forecast load for a new spot
func (m Model) startLoad(spot models.Spot) (tea.Model, tea.Cmd) {
	m.loadSeq++
	m.loading = true
	m.state = StateLoading
	return m, tea.Batch(
		m.spinner.Tick,
		loadForecast(m.deps.Loader, m.deps.Store, m.loadSeq, spot, m.settings),
	)
}

// refresh reloads the current spot without leaving the dashboard
func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.spot == nil {
		return m, nil
	}
	m.loadSeq++
	m.loading = true
	m.status = "refreshing..."
	return m, loadForecast(m.deps.Loader, m.deps.Store, m.loadSeq, *m.spot, m.settings)
}

// handleSearchInput handles keyboard input in search state
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.err != nil && msg.Type != tea.KeyEnter {
		m.err = nil
	}

	switch {
	case msg.Type == tea.KeyEnter:
		query := strings.TrimSpace(m.searchInput.Value())
		if query == "" {
			return m, nil
		}
		m.searchQuery = query
		m.err = nil
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, searchPlaces(m.deps.Client, query))

	case msg.String() == "ctrl+l":
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, locateMe(m.deps.Locator))

	case msg.Type == tea.KeyEsc && m.data != nil:
		m.state = StateDashboard
		return m, nil
	}

	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleResults handles keyboard input in the geocoding results list
func (m Model) handleResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEnter {
			if item, ok := m.resultsList.SelectedItem().(placeItem); ok {
				p := item.place
				spot := models.NewSpot(p.Name, p.Admin1, p.Country, p.Latitude, p.Longitude)
				return m.startLoad(spot)
			}
		}
		if keyMsg.String() == "s" || keyMsg.Type == tea.KeyEsc {
			m.state = StateSearch
			m.searchInput.Focus()
			return m, textinput.Blink
		}
		if keyMsg.String() == "q" {
			return m, tea.Quit
		}
	}

	m.resultsList, cmd = m.resultsList.Update(msg)
	return m, cmd
}

// handleDashboard handles keyboard input on the main dashboard
func (m Model) handleDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "s":
		m.state = StateSearch
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case "r":
		return m.refresh()

	case "f":
		if m.spot != nil {
			m.status = "added to favorites"
			return m, saveFavorite(m.deps.Store, *m.spot)
		}
		return m, nil

	case "e":
		if m.spot != nil && m.data != nil {
			return m, exportForecast(*m.spot, m.data)
		}
		return m, nil

	case "u":
		if m.settings.WaveUnit == units.WaveMeters {
			m.settings.WaveUnit = units.WaveFeet
		} else {
			m.settings.WaveUnit = units.WaveMeters
		}
		return m, saveSettings(m.deps.Store, m.settings, m.deps.Scheduler)

	case "w":
		switch m.settings.SpeedUnit {
		case units.SpeedKmh:
			m.settings.SpeedUnit = units.SpeedMph
		case units.SpeedMph:
			m.settings.SpeedUnit = units.SpeedKnots
		default:
			m.settings.SpeedUnit = units.SpeedKmh
		}
		return m, saveSettings(m.deps.Store, m.settings, m.deps.Scheduler)

	case "t":
		if m.settings.TempUnit == units.TempCelsius {
			m.settings.TempUnit = units.TempFahrenheit
		} else {
			m.settings.TempUnit = units.TempCelsius
		}
		return m, saveSettings(m.deps.Store, m.settings, m.deps.Scheduler)

	case "tab":
		m.tab = (m.tab + 1) % Tab(len(tabNames))
		return m.enterTab()

	case "shift+tab":
		m.tab = (m.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return m.enterTab()

	case "1", "2", "3", "4", "5", "6", "7":
		n, _ := strconv.Atoi(msg.String())
		m.tab = Tab(n - 1)
		return m.enterTab()
	}

	switch m.tab {
	case TabFavorites:
		return m.handleFavoritesKeys(msg)
	case TabAlerts:
		return m.handleAlertsKeys(msg)
	case TabCompare:
		if msg.Type == tea.KeyEnter || msg.String() == "c" {
			return m.startCompare()
		}
	}

	return m, nil
}

// enterTab runs a tab's on-entry action
func (m Model) enterTab() (tea.Model, tea.Cmd) {
	if m.tab == TabCompare && !m.compared && !m.comparing {
		return m.startCompare()
	}
	return m, nil
}

func (m Model) startCompare() (tea.Model, tea.Cmd) {
	if m.comparing {
		return m, nil
	}
	if len(m.favorites) == 0 {
		m.status = "no favorites to compare"
		return m, nil
	}
	m.comparing = true
	return m, tea.Batch(m.spinner.Tick, runCompare(m.deps.Comparator, 24))
}

// handleFavoritesKeys handles keys on the favorites tab
func (m Model) handleFavoritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg.Type == tea.KeyEnter {
		if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
			return m.startLoad(item.fav.Spot)
		}
		return m, nil
	}

	switch msg.String() {
	case "d":
		if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
			return m, deleteFavorite(m.deps.Store, item.fav.ID)
		}
		return m, nil

	case "a":
		if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
			m.prompt = promptFaceAngle
			m.promptFavID = item.fav.ID
			m.promptInput.SetValue("")
			m.promptInput.Placeholder = "degrees 0-359, empty clears"
			m.promptInput.Focus()
			m.state = StatePrompt
			return m, textinput.Blink
		}
		return m, nil
	}

	m.favList, cmd = m.favList.Update(msg)
	return m, cmd
}

// handleAlertsKeys handles keys on the alerts tab
func (m Model) handleAlertsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.alertCursor > 0 {
			m.alertCursor--
		}
		return m, nil

	case "down", "j":
		if m.alertCursor < len(m.alerts)-1 {
			m.alertCursor++
		}
		return m, nil

	case " ":
		if m.alertCursor < len(m.alerts) {
			a := m.alerts[m.alertCursor]
			return m, toggleAlert(m.deps.Store, a.ID, !a.Enabled)
		}
		return m, nil

	case "d":
		if m.alertCursor < len(m.alerts) {
			return m, deleteAlert(m.deps.Store, m.alerts[m.alertCursor].ID)
		}
		return m, nil

	case "n":
		if m.spot == nil {
			m.status = "load a spot first"
			return m, nil
		}
		m.prompt = promptAlertWave
		m.promptInput.SetValue("")
		m.promptInput.Placeholder = fmt.Sprintf("min wave height (%s)", m.settings.WaveUnit.Label())
		m.promptInput.Focus()
		m.state = StatePrompt
		return m, textinput.Blink
	}

	return m, nil
}

// handlePrompt handles the inline value prompt
func (m Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyEsc:
		m.state = StateDashboard
		return m, nil

	case tea.KeyEnter:
		raw := strings.TrimSpace(m.promptInput.Value())
		m.state = StateDashboard

		switch m.prompt {
		case promptFaceAngle:
			if raw == "" {
				return m, setFaceAngle(m.deps.Store, m.promptFavID, nil)
			}
			deg, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				m.status = "not a number: " + raw
				return m, nil
			}
			deg = models.NormalizeDeg(deg)
			return m, setFaceAngle(m.deps.Store, m.promptFavID, &deg)

		case promptAlertWave:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v <= 0 {
				m.status = "not a valid height: " + raw
				return m, nil
			}
			minHs := units.WaveFromDisplay(v, m.settings.WaveUnit)
			a := models.Alert{
				ID:        uuid.NewString(),
				Name:      fmt.Sprintf("%s waves", m.spot.Name),
				SpotIDs:   []string{m.spot.ID},
				Enabled:   true,
				MinHs:     &minHs,
				CreatedAt: time.Now(),
			}
			return m, createAlert(m.deps.Store, a)
		}
		return m, nil
	}

	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateSearch:
		return m.viewSearch()
	case StateResults:
		return m.viewResults()
	case StateLoading:
		return m.viewLoading()
	case StateDashboard:
		return m.viewDashboard()
	case StatePrompt:
		return m.viewPrompt()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewSearch renders the search view
func (m Model) viewSearch() string {
	title := titleStyle.Render("🌊 SurfScope")
	subtitle := mutedStyle.Render("Surf & marine forecasts, alerts, and spot comparison")

	searchBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(64).
		Render(m.searchInput.View())

	var errorLine string
	if m.err != nil {
		errorLine = errorStyle.Padding(0, 2).Render("✗ " + m.err.Error())
	}

	help := helpStyle.Render("Enter: Search • Ctrl+L: Locate me • Ctrl+C: Quit")
	examples := mutedStyle.Render("Examples: Nazare | Bells Beach | Mavericks | Hossegor")

	var sections []string
	sections = append(sections, title, subtitle, "", searchBox)
	if errorLine != "" {
		sections = append(sections, "", errorLine)
	}
	sections = append(sections, "", examples, "", help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewResults renders the geocoding result list
func (m Model) viewResults() string {
	title := titleStyle.Render("🌊 Pick a Spot")
	subtitle := mutedStyle.Render(fmt.Sprintf("Found %d places for %q", len(m.places), m.searchQuery))

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • S/Esc: Back to search • Q: Quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title, subtitle, "", m.resultsList.View(), "", help)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return fmt.Sprintf("\n  %s Fetching marine and weather forecast...\n", m.spinner.View())
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	errorText := "An unknown error occurred"
	if m.err != nil {
		errorText = m.err.Error()
	}

	back := "search"
	if m.data != nil {
		back = "dashboard"
	}
	help := helpStyle.Render(fmt.Sprintf("Press any key to return to %s • Q: Quit", back))

	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorText, "", help)
}

// viewPrompt renders the dashboard with the prompt on top
func (m Model) viewPrompt() string {
	label := "Face angle"
	if m.prompt == promptAlertWave {
		label = "Min wave height"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorPrimary).
		Padding(1, 2).
		Render(labelStyle.Render(label+": ") + m.promptInput.View())

	help := helpStyle.Render("Enter: Confirm • Esc: Cancel")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewDashboard(), box, help)
}

// viewDashboard renders the tabbed dashboard
func (m Model) viewDashboard() string {
	var sections []string

	header := titleStyle.Padding(0, 1).Render("🌊 " + m.spotHeading())
	sections = append(sections, header)

	if m.data != nil {
		meta := fmt.Sprintf("model: %s", m.data.Models.WaveModel)
		if len(m.data.Models.Merged) > 0 {
			meta += " +" + strings.Join(m.data.Models.Merged, " +")
		}
		meta += " • fetched " + m.data.FetchedAt.Format("15:04")
		sections = append(sections, mutedStyle.Padding(0, 1).Render(meta))
	}

	sections = append(sections, m.renderTabBar(), "")

	switch m.tab {
	case TabSummary:
		sections = append(sections, m.renderSummaryPane(m.paneWidth()))
	case TabTable:
		sections = append(sections, m.renderTablePane(m.paneWidth()))
	case TabTides:
		sections = append(sections, m.renderTidePane(m.paneWidth()))
	case TabChart:
		sections = append(sections, m.renderChartPane(m.paneWidth()))
	case TabFavorites:
		sections = append(sections, m.renderFavoritesPane(m.paneWidth()))
	case TabAlerts:
		sections = append(sections, m.renderAlertsPane(m.paneWidth()))
	case TabCompare:
		sections = append(sections, m.renderComparePane(m.paneWidth()))
	}

	if m.status != "" {
		sections = append(sections, successStyle.Padding(0, 1).Render(m.status))
	}

	sections = append(sections, helpStyle.Render(m.helpLine()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) spotHeading() string {
	if m.spot == nil {
		return "SurfScope"
	}
	return m.spot.Place()
}

func (m Model) paneWidth() int {
	w := m.width - 2
	if w > 100 {
		w = 100
	}
	if w < 40 {
		w = 40
	}
	return w
}

func (m Model) renderTabBar() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if Tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(label)
		} else {
			parts[i] = tabStyle.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) helpLine() string {
	base := "Tab/1-7: Panes • S: Search • R: Refresh • F: Favorite • E: Export • U/W/T: Units • Q: Quit"
	switch m.tab {
	case TabFavorites:
		return "Enter: Load • A: Face angle • D: Delete • " + base
	case TabAlerts:
		return "↑/↓: Select • Space: Toggle • N: New • D: Delete • " + base
	case TabCompare:
		return "Enter: Re-run • " + base
	}
	return base
}

// placeItem wraps a geocoding result for use in a list
type placeItem struct {
	place openmeteo.Place
}

// FilterValue implements list.Item
func (p placeItem) FilterValue() string {
	return p.place.Name + " " + p.place.Admin1 + " " + p.place.Country
}

// Title implements list.DefaultItem
func (p placeItem) Title() string {
	return p.place.Name
}

// Description implements list.DefaultItem
func (p placeItem) Description() string {
	loc := p.place.Admin1
	if loc != "" && p.place.Country != "" {
		loc += ", "
	}
	loc += p.place.Country
	return fmt.Sprintf("%s (%.4f, %.4f)", loc, p.place.Latitude, p.place.Longitude)
}

// createResultsList creates a list.Model from geocoding results
func createResultsList(places []openmeteo.Place, width, height int) list.Model {
	items := make([]list.Item, len(places))
	for i, p := range places {
		items[i] = placeItem{place: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Select a Spot"
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)

	return l
}
