package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-dodge/internal/assets"
	"github.com/vovakirdan/meteor-dodge/internal/platform/gfx"
	"github.com/vovakirdan/meteor-dodge/internal/registry"
)

var (
	flagAssets string
	flagVolume float64
)

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a 1200x800 window and play the given mode (default: meteors).

The ship and meteor images are built in; use --assets to load
starship.png and meteor.png from a directory instead.

Controls:
  Arrows/WASD  - Move the ship
  Q/Ctrl+C     - Quit (closing the window also quits)

Examples:
  meteors window
  meteors window --assets ./images
  meteors window --volume 0`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with starship.png and meteor.png")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Jingle volume from 0 (off) to 1")
}

func runWindow(_ *cobra.Command, args []string) {
	gameID, err := modeArg(args)
	if err != nil {
		fatal("%v", err)
	}

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("%v", err)
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}

	sprites, err := assets.LoadSprites(&cfg)
	if err != nil {
		fatal("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}

	rt := runtimeConfig(cfg, cfg.Screen.Width, cfg.Screen.Height)

	store := openStore()
	result, runErr := gfx.Run(game, gfx.Options{
		Title:    cfg.Screen.Title,
		TPS:      rt.TickRate,
		Seed:     rt.Seed,
		EndDelay: rt.EndDelay,
		Sprites:  sprites,
		Volume:   flagVolume,
		Store:    store,
		Logger:   logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fatal("running window: %v", runErr)
	}
	logger.Info("game over",
		"mode", result.GameID,
		"outcome", result.Outcome,
		"score", result.Score,
		"cycles", result.Cycles,
		"run", result.RunID,
	)
}
