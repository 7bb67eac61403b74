package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-dodge/internal/platform/tui"
	"github.com/vovakirdan/meteor-dodge/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing the given mode (default: meteors) in the terminal.

Controls:
  Arrows/WASD  - Move the ship
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a text screenshot

Difficulty options:
  easy   - Slower meteors, spawned less often
  normal - Reference speed and spawn rate
  hard   - Faster meteors, spawned more often, more at start
  fixed  - Exactly the values in the config file

Examples:
  meteors play
  meteors play meteors_endless
  meteors play --difficulty hard
  meteors play --config ./my-meteors.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, err := modeArg(args)
	if err != nil {
		fatal("%v", err)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	width, height := terminalSize()
	rt := runtimeConfig(cfg, width, height)

	store := openStore()
	result, runErr := tui.Run(game, store, rt, tui.WithLogger(logger))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
	logResult(result)
}

// logResult reports a finished terminal run.
func logResult(r tui.RunResult) {
	logger.Info("game over",
		"mode", r.GameID,
		"outcome", r.Outcome,
		"score", r.Score,
		"cycles", r.Cycles,
		"run", r.RunID,
	)
}
