package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/lixenwraith/ringball/parameter"
)

// TickContext carries per-frame inputs into a simulation step
type TickContext struct {
	Now   time.Time // wall clock for the frame
	Frame uint64    // 1-based frame counter
}

// Stepper advances a simulation by one frame and returns what sinks may read
type Stepper[S any] interface {
	Tick(ctx TickContext) S
}

// Sink consumes a frame snapshot; it must not mutate simulation state
type Sink[S any] interface {
	Render(snapshot S) error
}

// SinkFunc adapts a function to Sink
type SinkFunc[S any] func(S) error

func (f SinkFunc[S]) Render(s S) error { return f(s) }

// Sinks fans a snapshot out in order; every sink runs and the first error is returned
type Sinks[S any] []Sink[S]

func (ss Sinks[S]) Render(s S) error {
	var first error
	for _, sink := range ss {
		if err := sink.Render(s); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Scheduler drives update-then-render at a fixed interval on one goroutine
// Other goroutines post closures to Inbox; they run on the loop goroutine before the next tick
type Scheduler[S any] struct {
	Inbox chan func()

	stepper  Stepper[S]
	sink     Sink[S]
	clock    TimeProvider
	interval time.Duration
	maxTicks uint64
	frame    uint64
	logger   *slog.Logger
}

// SchedulerOption configures a Scheduler
type SchedulerOption[S any] func(*Scheduler[S])

// WithMaxTicks stops the loop after n frames (0 = unlimited)
func WithMaxTicks[S any](n uint64) SchedulerOption[S] {
	return func(s *Scheduler[S]) { s.maxTicks = n }
}

// WithClock replaces the wall clock
func WithClock[S any](c TimeProvider) SchedulerOption[S] {
	return func(s *Scheduler[S]) { s.clock = c }
}

// WithLogger sets the logger used for sink failures
func WithLogger[S any](l *slog.Logger) SchedulerOption[S] {
	return func(s *Scheduler[S]) { s.logger = l }
}

// NewScheduler creates a scheduler; interval <= 0 means run frames back to back
func NewScheduler[S any](stepper Stepper[S], sink Sink[S], interval time.Duration, opts ...SchedulerOption[S]) *Scheduler[S] {
	s := &Scheduler[S]{
		Inbox:    make(chan func(), parameter.InboxSize),
		stepper:  stepper,
		sink:     sink,
		clock:    NewMonotonicTimeProvider(),
		interval: interval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Frames returns the number of frames stepped so far
func (s *Scheduler[S]) Frames() uint64 {
	return s.frame
}

// Step runs exactly one frame: drain inbox, tick, render
func (s *Scheduler[S]) Step() S {
	s.drain()
	s.frame++
	snap := s.stepper.Tick(TickContext{Now: s.clock.Now(), Frame: s.frame})
	if s.sink != nil {
		if err := s.sink.Render(snap); err != nil {
			s.logger.Warn("render failed", "frame", s.frame, "error", err)
		}
	}
	return snap
}

// Run loops until ctx is done or the tick limit is reached
// Returns ctx.Err() on cancellation, nil on reaching the limit
func (s *Scheduler[S]) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if s.interval > 0 {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		if s.maxTicks > 0 && s.frame >= s.maxTicks {
			return nil
		}
		if tick == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			s.Step()
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-s.Inbox:
			fn()
		case <-tick:
			s.Step()
		}
	}
}

func (s *Scheduler[S]) drain() {
	for {
		select {
		case fn := <-s.Inbox:
			fn()
		default:
			return
		}
	}
}
