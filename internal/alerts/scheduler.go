package alerts

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Scheduler runs periodic alert passes. It is owned by the application
// root; Restart cancels the previous run loop before starting a new one so
// a settings change never leaves two concurrent tickers.
type Scheduler struct {
	engine *Engine
	clock  clockwork.Clock
	log    zerolog.Logger

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(engine *Engine, clock clockwork.Clock, log zerolog.Logger) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{engine: engine, clock: clock, log: log}
}

// Start begins periodic passes at the given interval. A running scheduler
// is restarted.
func (s *Scheduler) Start(interval time.Duration) {
	s.Restart(interval)
}

// Restart stops any running loop, waits for it to exit, then starts a new
// one at the given interval.
func (s *Scheduler) Restart(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop = stop
	s.done = done

	go s.run(interval, stop, done)
}

// Stop halts the scheduler and waits for the loop to exit.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Scheduler) stopLocked() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	s.done = nil
}

func (s *Scheduler) run(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			if err := s.engine.RunAll(context.Background()); err != nil {
				s.log.Warn().Err(err).Msg("scheduled alert pass failed")
			}
		}
	}
}
