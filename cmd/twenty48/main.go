// twenty48 is a terminal 2048: play locally, serve over SSH, and track
// results in SQLite.
//
// Usage:
//
//	twenty48 play              - Play in the terminal
//	twenty48 scores            - Show top results and stats
//	twenty48 serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games (0 = random)
//	--db <path>     - Set database path (default: ~/.twenty48/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "twenty48",
	Short: "2048 in your terminal",
	Long: `twenty48 is a terminal implementation of the 2048 sliding-tile puzzle.

Available commands:
  play     - Play in the terminal
  scores   - View top results and aggregate stats
  serve    - Start SSH server for remote play

Examples:
  twenty48 play
  twenty48 play --seed 42 --target 512
  twenty48 scores
  twenty48 serve --ssh :2248`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.twenty48/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
