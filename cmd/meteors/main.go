// meteors is a meteor dodging game for the terminal, a desktop window,
// or remote play over SSH.
//
// Usage:
//
//	meteors list              - List available modes
//	meteors play [mode]       - Play in the terminal
//	meteors window [mode]     - Play in a desktop window
//	meteors menu              - Pick modes interactively
//	meteors serve             - Start SSH server for remote play
//	meteors scores [mode]     - Show high scores and recent runs
//	meteors config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.meteors/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/meteor-dodge/internal/games/meteors"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

// logger is configured from --log-level before any command runs.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "meteors"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "meteors",
	Short: "Meteor Dodge - steer a starship through a meteor shower",
	Long: `Meteor Dodge puts you at the helm of a starship under a falling meteor
shower. Survive 1000 cycles to win; one hit and the run is over.

Available commands:
  list     - Show all available modes
  play     - Play in the terminal
  window   - Play in a desktop window
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  config   - Print the default configuration

Examples:
  meteors list
  meteors play
  meteors window --difficulty hard
  meteors serve --ssh :2222
  meteors scores meteors_endless`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = timing.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.meteors/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
