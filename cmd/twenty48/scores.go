package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vkuzmin/twenty48/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show top results",
	Long: `Display the best recorded games and aggregate statistics.

Examples:
  twenty48 scores
  twenty48 scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Top Games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'twenty48 play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-4s  %s\n", "Rank", "Score", "Max Tile", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %-4s  %s\n", "----", "-----", "--------", "-----", "---", "----")

	for i, r := range results {
		won := ""
		if r.Won {
			won = "yes"
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %-4s  %s\n", i+1, r.Score, r.MaxTile, r.Moves, won, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read stats: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d   Best: %d   Avg: %.0f   Best tile: %d   Wins: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestTile, stats.Wins)
}
