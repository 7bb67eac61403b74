package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/meteor-dodge/internal/config"
	"github.com/vovakirdan/meteor-dodge/internal/core"
	"github.com/vovakirdan/meteor-dodge/internal/games/meteors"
	"github.com/vovakirdan/meteor-dodge/internal/registry"
	"github.com/vovakirdan/meteor-dodge/internal/storage"
)

// loadGameConfig applies --config and --difficulty and returns the
// configuration the games will run with.
func loadGameConfig() (config.MeteorsConfig, error) {
	meteors.SetConfigPath(flagConfig)
	meteors.SetDifficultyPreset(flagDifficulty)

	cfg, err := meteors.LoadConfig()
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	logger.Debug("config loaded",
		"path", flagConfig,
		"difficulty", flagDifficulty,
		"max_cycles", cfg.Rules.MaxCycles,
		"max_speed", cfg.Meteors.MaxSpeed,
	)
	return cfg, nil
}

// runtimeConfig builds the platform settings for a screen of width x height cells.
func runtimeConfig(cfg config.MeteorsConfig, width, height int) core.RuntimeConfig {
	tickRate := cfg.Timing.FPS
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
		EndDelay: cfg.Timing.EndDelay,
	}
}

// terminalSize returns the size of the controlling terminal, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// modeArg returns the mode named on the command line, defaulting to classic.
func modeArg(args []string) (string, error) {
	gameID := meteors.ClassicID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown mode %q (run 'meteors list' to see available modes)", gameID)
	}
	return gameID, nil
}

// openStore opens the score database. Failure is only a warning: games
// still run without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fatal prints an error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
