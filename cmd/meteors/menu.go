package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-dodge/internal/platform/tui"
	"github.com/vovakirdan/meteor-dodge/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scoreboard
  Q            - Quit

Examples:
  meteors menu
  meteors menu --fps 60
  meteors menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}

	store := openStore()

	width, height := terminalSize()
	cfg := runtimeConfig(gameCfg, width, height)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("creating game", "mode", menuResult.GameID, "error", err)
			continue
		}

		// Fresh seed for every game unless one was fixed
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		result, err := tui.Run(game, store, cfg, tui.WithLogger(logger))
		if err != nil {
			logger.Error("running game", "mode", menuResult.GameID, "error", err)
			continue
		}
		logResult(result)
	}

	if store != nil {
		store.Close()
	}
}
