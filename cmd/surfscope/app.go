package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/surfscope/surfscope/internal/alerts"
	"github.com/surfscope/surfscope/internal/compare"
	"github.com/surfscope/surfscope/internal/config"
	"github.com/surfscope/surfscope/internal/forecast"
	"github.com/surfscope/surfscope/internal/locate"
	"github.com/surfscope/surfscope/internal/openmeteo"
	"github.com/surfscope/surfscope/internal/store"
	"github.com/surfscope/surfscope/internal/ui"
)

// app holds the wired services shared by every command.
type app struct {
	cfg        *config.Config
	store      *store.Store
	client     *openmeteo.Client
	loader     *forecast.Loader
	locator    *locate.Locator
	comparator *compare.Comparator
	engine     *alerts.Engine
	scheduler  *alerts.Scheduler
	log        zerolog.Logger

	logFile *os.File
}

// newApp wires the application. When tui is set, logs go to a file so
// stderr stays free for the dashboard; otherwise they go to the console.
func newApp(tui bool) (*app, error) {
	cfg, err := config.Load(context.Background())
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if tui {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		out = f
	}
	a.log = zerolog.New(out).Level(level).With().Timestamp().Logger()

	a.store, err = store.Open(cfg.DBPath())
	if err != nil {
		return nil, err
	}

	a.client = openmeteo.NewClient(
		openmeteo.WithMarineURL(cfg.MarineURL),
		openmeteo.WithWeatherURL(cfg.WeatherURL),
		openmeteo.WithGeocodeURL(cfg.GeocodeURL),
		openmeteo.WithForecastDays(cfg.ForecastDays),
		openmeteo.WithTimeout(cfg.HTTPTimeout),
	)

	clock := clockwork.NewRealClock()
	a.loader = forecast.NewLoader(a.client,
		forecast.WithFallbackModels(cfg.SSTFallbackModel, cfg.CurrentsFallbackModel),
		forecast.WithClock(clock),
		forecast.WithLogger(a.log),
	)
	a.locator = locate.NewLocator()
	a.comparator = compare.NewComparator(a.store, a.loader, clock, a.log)

	notifier := alerts.Notifier(alerts.DesktopNotifier{})
	if !tui {
		notifier = alerts.NopNotifier{}
	}
	a.engine = alerts.NewEngine(a.store, a.loader, notifier, clock, a.log)
	a.scheduler = alerts.NewScheduler(a.engine, clock, a.log)

	return a, nil
}

// StartScheduler begins periodic alert checking at the stored cadence.
func (a *app) StartScheduler() {
	set, err := a.store.LoadSettings()
	if err != nil {
		a.log.Warn().Err(err).Msg("loading settings for scheduler")
		return
	}
	a.scheduler.Start(time.Duration(set.AlertCheckMinutes) * time.Minute)
}

// UIDeps packages the services the dashboard needs.
func (a *app) UIDeps() ui.Deps {
	return ui.Deps{
		Store:      a.store,
		Client:     a.client,
		Loader:     a.loader,
		Locator:    a.locator,
		Comparator: a.comparator,
		Scheduler:  a.scheduler,
		Log:        a.log,
	}
}

// engineWithDesktopNotifier rebuilds the engine with desktop delivery, for
// one-off checks run from a terminal.
func (a *app) engineWithDesktopNotifier() *alerts.Engine {
	return alerts.NewEngine(a.store, a.loader, alerts.DesktopNotifier{}, clockwork.NewRealClock(), a.log)
}

// Close releases the app's resources.
func (a *app) Close() {
	a.scheduler.Stop()
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing store")
		}
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
