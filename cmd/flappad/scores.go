package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/padgame/flappad/internal/config"
	"github.com/padgame/flappad/internal/game"
	"github.com/padgame/flappad/internal/storage"
)

var flagResetScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs and the best score",
	Long: `Display the top 10 runs, aggregate stats, and the saved best score.

Examples:
  flappad scores
  flappad scores --db ./scores.db
  flappad scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScores, "reset", false, "Delete the best score and all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	dbPath := flagDBPath
	if dbPath == "" {
		cfg, err := config.Load("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		dbPath = cfg.Storage.DBPath
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagResetScores {
		if err := store.ResetHighScore(game.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting best score: %v\n", err)
			os.Exit(1)
		}
		if err := store.ClearRuns(game.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	runs, err := store.TopRuns(game.GameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Flappad - High Scores")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'flappad play' to set the first score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range runs {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, ok, err := store.HighScore(game.GameID); err == nil && ok {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetStats(game.GameID); err == nil && stats.RunCount > 0 {
		fmt.Printf("Runs: %d  Average: %.1f\n", stats.RunCount, stats.AvgScore)
	}
}
