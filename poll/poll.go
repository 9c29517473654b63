// Package poll drives the controller: it sets every component up once and
// then updates all of them once per tick.
package poll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alia5/knobpad/component"
)

// DefaultPeriod is the tick period used when none is configured.
const DefaultPeriod = 10 * time.Millisecond

// Flusher sends what the components emitted during a tick to the host.
type Flusher interface {
	Flush() error
}

// Loop updates its components once per tick, in order, and flushes the host
// after each tick. Ticks run synchronously on the goroutine calling Run.
type Loop struct {
	components []component.Component
	names      []string
	host       Flusher
	period     time.Duration
	logger     *slog.Logger

	ticks     uint64
	overruns  uint64
	flushFail bool
}

// Config configures a Loop.
type Config struct {
	Components []component.Component
	// Names labels Components in errors and logs; optional.
	Names  []string
	Host   Flusher
	Period time.Duration
	Logger *slog.Logger
}

func New(cfg Config) *Loop {
	if cfg.Period <= 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Loop{
		components: cfg.Components,
		names:      cfg.Names,
		host:       cfg.Host,
		period:     cfg.Period,
		logger:     cfg.Logger,
	}
}

// Setup sets up every component, stopping at the first failure.
func (l *Loop) Setup() error {
	for i, c := range l.components {
		if err := c.Setup(); err != nil {
			return fmt.Errorf("setup %s: %w", l.name(i), err)
		}
	}
	l.logger.Debug("components set up", "count", len(l.components))
	return nil
}

// Tick updates every component once, then flushes the host.
func (l *Loop) Tick() {
	for _, c := range l.components {
		c.Update()
	}
	l.ticks++
	if l.host == nil {
		return
	}
	if err := l.host.Flush(); err != nil {
		// Log on the transition only; a detached host fails every tick.
		if !l.flushFail {
			l.logger.Warn("host flush failed", "error", err)
		}
		l.flushFail = true
		return
	}
	if l.flushFail {
		l.logger.Info("host flush recovered")
		l.flushFail = false
	}
}

// Run ticks until ctx is done. It does not call Setup.
func (l *Loop) Run(ctx context.Context) error {
	t := time.NewTicker(l.period)
	defer t.Stop()

	l.logger.Info("polling", "period", l.period, "components", len(l.components))
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("polling stopped", "ticks", l.ticks, "overruns", l.overruns)
			return nil
		case <-t.C:
			start := time.Now()
			l.Tick()
			if d := time.Since(start); d > l.period {
				l.overruns++
				l.logger.Warn("tick overran period", "took", d, "period", l.period, "overruns", l.overruns)
			}
		}
	}
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() uint64 { return l.ticks }

func (l *Loop) name(i int) string {
	if i < len(l.names) && l.names[i] != "" {
		return l.names[i]
	}
	return fmt.Sprintf("component #%d", i)
}
