// gridtap is a reflex-tapping arcade game for the terminal: tap the active
// tile before the shrinking reaction window elapses, bank survival time with
// fast hits, and avoid hazard tiles.
//
// Usage:
//
//	gridtap play                - Play a run
//	gridtap serve               - Start SSH server for remote play
//	gridtap profiles            - List difficulty profiles
//	gridtap scores              - Show the leaderboard
//	gridtap history             - Show recent runs
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.gridtap/gridtap.db)
//	--seed <value>  - Set RNG seed for reproducible target sequences
//	--cells <n>     - Set grid size (default: 9)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagSeed   int64
	flagCells  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridtap",
	Short: "gridtap - Reflex tapping arcade in your terminal",
	Long: `gridtap is a terminal arcade game about reflexes. One tile on the grid
lights up at a time; tap it before the reaction window runs out. Fast taps
bank extra survival time, misses and hazard tiles burn it.

Available commands:
  play      - Play a run
  serve     - Start SSH server for remote play
  profiles  - List difficulty profiles
  scores    - View the leaderboard
  history   - View your recent runs

Examples:
  gridtap play
  gridtap play --profile hard --name ada
  gridtap serve --ssh :2222
  gridtap scores --profile extreme`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gridtap/gridtap.db", "Path to database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagCells, "cells", 9, "Number of grid tiles")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
