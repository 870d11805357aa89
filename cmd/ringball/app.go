package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ringball/audio"
	"github.com/lixenwraith/ringball/config"
	"github.com/lixenwraith/ringball/engine"
	"github.com/lixenwraith/ringball/match"
	"github.com/lixenwraith/ringball/render"
	"github.com/lixenwraith/ringball/score"
	"github.com/lixenwraith/ringball/status"
	"github.com/lixenwraith/ringball/theme"
	"github.com/lixenwraith/ringball/vmath"
)

// app wires one match to its collaborators
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *status.Registry
	board   *score.Board
	themes  *theme.Selector
	match   *match.Match
}

func newApp(cfg config.Config, store score.Store, now time.Time, logger *slog.Logger) *app {
	metrics := status.NewRegistry()
	rng := engine.NewRandom(cfg.Seed)

	board := score.NewBoard(store, logger)
	bests := board.Load(now)
	themes := theme.NewSelector(store, cfg.Theme, logger)

	m := match.New(match.Options{
		Center:            vmath.V2(400, 400),
		Radius:            cfg.Arena.Radius,
		GoalWidth:         cfg.Arena.GoalWidth,
		GoalHeight:        cfg.Arena.GoalHeight,
		GoalRotationSpeed: cfg.Arena.GoalRotationSpeed,
		Rng:               rng,
		Board:             board,
		Theme:             themes,
		Metrics:           metrics,
		Logger:            logger,
	})
	logger.Info("bests loaded", "personal", bests.Personal, "daily", bests.Daily, "theme", themes.Current().Primary)

	return &app{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		board:   board,
		themes:  themes,
		match:   m,
	}
}

// runHeadless steps the match without a screen and prints a one-line summary to out
// With a tick limit frames run back to back; without one they keep real-time pace until ctx ends
func (a *app) runHeadless(ctx context.Context, ticks uint64, out io.Writer) error {
	interval := a.cfg.FrameInterval()
	if ticks > 0 {
		interval = 0
	}

	var last match.Snapshot
	sink := engine.SinkFunc[match.Snapshot](func(s match.Snapshot) error {
		last = s
		for _, e := range s.Events {
			if e.Kind == match.EventGoal {
				a.logger.Debug("headless goal", "frame", s.Frame, "score", s.Score)
			}
		}
		return nil
	})

	sched := engine.NewScheduler[match.Snapshot](a.match, sink, interval,
		engine.WithMaxTicks[match.Snapshot](ticks),
		engine.WithLogger[match.Snapshot](a.logger))

	err := sched.Run(ctx)
	fmt.Fprintf(out, "match %s: %d frames, score %d, personal best %d, daily best %d\n",
		a.match.ID(), sched.Frames(), last.Score, last.Bests.Personal, last.Bests.Daily)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runInteractive drives the terminal renderer and audio until quit or ctx ends
func (a *app) runInteractive(ctx context.Context, screen tcell.Screen, sounds *audio.SoundManager) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen.EnableMouse()
	screen.HideCursor()

	renderer := render.NewTerminalRenderer(screen, nil, a.metrics)
	sinks := engine.Sinks[match.Snapshot]{renderer}
	if sounds != nil {
		sinks = append(sinks, sounds)
	}

	sched := engine.NewScheduler[match.Snapshot](a.match, sinks, a.cfg.FrameInterval(),
		engine.WithLogger[match.Snapshot](a.logger))

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			cmd, x, y := classify(ev)
			if cmd == cmdNone {
				continue
			}
			select {
			case sched.Inbox <- func() { a.apply(cmd, x, y, renderer, screen, cancel) }:
			case <-ctx.Done():
				return
			}
		}
	}()

	err := sched.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// apply runs on the scheduler goroutine
func (a *app) apply(cmd command, x, y int, renderer *render.TerminalRenderer, screen tcell.Screen, quit func()) {
	switch cmd {
	case cmdQuit:
		quit()
	case cmdNextTheme:
		t := a.themes.Next()
		a.logger.Info("theme changed", "color", t.Primary)
	case cmdPointer:
		p := renderer.Viewport().ToWorld(x, y)
		a.match.SetPointer(p.X, p.Y)
	case cmdResize:
		renderer.Resize()
		screen.Sync()
	}
}
