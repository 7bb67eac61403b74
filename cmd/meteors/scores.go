package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteor-dodge/internal/registry"
	"github.com/vovakirdan/meteor-dodge/internal/storage"
)

var (
	flagAllScores bool
	flagClear     bool
	flagRuns      int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 high scores and the latest runs for a mode
(default: meteors). Quit runs appear in the run list but never
in the high scores.

Examples:
  meteors scores
  meteors scores meteors_endless --all
  meteors scores --runs 20
  meteors scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the mode")
	scoresCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of recent runs to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID, err := modeArg(args)
	if err != nil {
		fatal("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal("creating game: %v", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fatal("%v", err)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fatal("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'meteors play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.1f  Wins: %d  Last played: %s\n",
			stats.HighScore, stats.AvgScore, stats.Wins, stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(gameID, flagRuns)
	if err != nil {
		fatal("retrieving runs: %v", err)
	}
	if len(runs) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %-16s  %s\n", "Outcome", "Score", "Cycles", "Meteors", "Date", "Run")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-6d  %-6d  %-7d  %-16s  %s\n",
			r.Outcome, r.Score, r.Cycles, r.Meteors, r.CreatedAt.Format("2006-01-02 15:04"), r.RunID)
	}
}
