package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridtap/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long: `Display the local run log: the most recent runs with their full
statistics. The log is capped, older runs are pruned automatically.

Examples:
  gridtap history
  gridtap history --limit 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %6s  %5s  %6s  %4s  %7s  %6s  %s\n",
		"Player", "Profile", "Score", "Hits", "Misses", "Acc", "Fastest", "Streak", "Date")
	fmt.Printf("  %-16s  %-8s  %6s  %5s  %6s  %4s  %7s  %6s  %s\n",
		"------", "-------", "-----", "----", "------", "---", "-------", "------", "----")

	for _, r := range runs {
		acc := "—"
		if r.Accuracy.Valid {
			acc = fmt.Sprintf("%d%%", r.Accuracy.Int64)
		}
		fastest := "—"
		if r.FastestMs.Valid {
			fastest = fmt.Sprintf("%dms", r.FastestMs.Int64)
		}
		dateStr := r.PlayedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-8s  %6d  %5d  %6d  %4s  %7s  %6d  %s\n",
			r.Player, r.Mode, r.Score, r.Hits, r.Misses, acc, fastest, r.MaxStreak, dateStr)
	}
}
