// flappad is a one-button arcade game built for a small touch display,
// playable in the terminal through a device simulator.
//
// Usage:
//
//	flappad play             - Play the game in the terminal
//	flappad scores           - Show recorded runs and the best score
//	flappad serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Frame rate (default: 60)
//	--seed <value>  - RNG seed for reproducible pipe layouts (0 = random)
//	--db <path>     - Scores database path (default: ~/.flappad/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappad",
	Short: "Flappad - tap your way through the pipes",
	Long: `Flappad is a one-button arcade game: tap to flap, slip through the
pipe gaps, and chase your best score. The terminal stands in for the
device's touch display, so click or press space to tap.

Available commands:
  play     - Play in the terminal
  scores   - View recorded runs and the best score
  serve    - Start SSH server for remote play

Examples:
  flappad play
  flappad play --seed 42
  flappad serve --ssh :2222
  flappad scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (empty = from config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
