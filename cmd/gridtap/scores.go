package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridtap/internal/config"
	"gridtap/internal/storage"
)

var flagScoresProfile string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 scores for a difficulty profile.

Examples:
  gridtap scores
  gridtap scores --profile hard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresProfile, "profile", config.ProfileNormal, "Difficulty profile")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(flagScoresProfile, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Leaderboard - %s\n", flagScoresProfile)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gridtap play --profile %s' to set the first score!\n", flagScoresProfile)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	fmt.Println()
	highScore, err := store.HighScore(flagScoresProfile)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
