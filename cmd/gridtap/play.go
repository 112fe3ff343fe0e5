package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gridtap/internal/config"
	"gridtap/internal/engine"
	"gridtap/internal/platform/tui"
	"gridtap/internal/storage"
)

var (
	flagConfig  string
	flagProfile string
	flagName    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run on the tile grid.

Controls:
  1-9 / qwe asd zxc - Tap a tile (mouse click works too)
  P/Esc             - Pause
  R                 - Restart (after the run ends)
  Ctrl+C            - Quit

Difficulty profiles:
  normal  - 30s clock, forgiving penalties
  hard    - shorter clock, tighter windows, more hazards
  extreme - for people who resent their free time

Examples:
  gridtap play
  gridtap play --profile hard
  gridtap play --name ada --profile extreme
  gridtap play --config ./my-profiles.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom profiles YAML")
	playCmd.Flags().StringVar(&flagProfile, "profile", config.ProfileNormal, "Difficulty profile: normal, hard, extreme")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the name prompt)")
}

func runPlay(cmd *cobra.Command, args []string) {
	profiles, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	profile, err := profiles.Get(flagProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'gridtap profiles' to see available profiles.\n")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	opts := engine.Options{
		Profile:   profile,
		CellCount: flagCells,
		Seed:      flagSeed,
	}
	if store != nil {
		opts.Recorder = store
		opts.Submitter = store
	}
	eng := engine.New(opts)

	runErr := tui.Run(eng, flagName, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
