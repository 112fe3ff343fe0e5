package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"gridtap/internal/config"
	"gridtap/internal/platform/tui"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagServeProfile string
	flagServeConfig  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gridtap SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own single-player run; the SSH username is used
as the player identity. Scores are stored per-server (all users share the
same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridtap/host_key

Examples:
  gridtap serve                          # Listen on :23234 with auto-generated key
  gridtap serve --ssh :2222              # Listen on port 2222
  gridtap serve --profile hard           # Everyone plays hard mode
  gridtap serve --db ./gridtap.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeProfile, "profile", config.ProfileNormal, "Difficulty profile served to all sessions")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom profiles YAML")
}

func runServe(_ *cobra.Command, _ []string) {
	profiles, err := config.Load(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	profile, err := profiles.Get(flagServeProfile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Profile:     profile,
		CellCount:   flagCells,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gridtap SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
