package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/ringball/audio"
	"github.com/lixenwraith/ringball/config"
	"github.com/lixenwraith/ringball/score"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write debug logs to logs/ringball.log")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 = time based)")
	headlessFlag = flag.Bool("headless", false, "Run without a screen (implied when stdout is not a terminal)")
	ticksFlag    = flag.Uint64("ticks", 0, "Stop after n frames (0 = until interrupted)")
	scoresFlag   = flag.String("scores", "", "Path to the score file")
	muteFlag     = flag.Bool("mute", false, "Disable audio")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mRINGBALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := score.NewFileStore(cfg.ScoresPath)
	if err := store.Load(); err != nil {
		logger.Warn("score file unreadable, starting fresh", "path", store.Path(), "error", err)
	}
	a := newApp(cfg, store, time.Now(), logger)

	headless := *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := a.runHeadless(ctx, *ticksFlag, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Run failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	var sounds *audio.SoundManager
	if !cfg.Mute {
		sounds = audio.NewSoundManager(logger)
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			logger.Warn("audio unavailable", "error", err)
		}
		defer sounds.Cleanup()
	}

	if err := a.runInteractive(ctx, screen, sounds); err != nil {
		logger.Error("run failed", "error", err)
	}
}

// applyFlags lets explicitly set flags win over file and environment values
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "scores":
			cfg.ScoresPath = *scoresFlag
		case "mute":
			cfg.Mute = *muteFlag
		}
	})
}
