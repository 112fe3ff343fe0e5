package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gridtap/internal/config"
)

var flagProfilesConfig string

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List difficulty profiles",
	Long:  `Shows every difficulty profile and its key parameters.`,
	Run:   runProfiles,
}

func init() {
	profilesCmd.Flags().StringVar(&flagProfilesConfig, "config", "", "Path to custom profiles YAML")
}

func runProfiles(cmd *cobra.Command, args []string) {
	profiles, err := config.Load(flagProfilesConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty profiles:")
	fmt.Println()
	fmt.Printf("  %-8s  %6s  %6s  %6s  %7s  %7s  %7s\n",
		"Name", "Start", "Cap", "Miss", "Wrong", "Hazard", "Window")
	fmt.Printf("  %-8s  %6s  %6s  %6s  %7s  %7s  %7s\n",
		"----", "-----", "---", "----", "-----", "------", "------")

	for _, name := range profiles.Names() {
		p := profiles.Profiles[name]
		fmt.Printf("  %-8s  %5.0fs  %5.0fs  %5.1fs  %6.1fs  %6.0f%%  %4.1f-%.1fs\n",
			p.Name, p.StartTime, p.TimeRewardCap,
			p.MissPenalty, p.WrongClickPenalty,
			p.HazardChance*100, p.PaceFloor, p.PaceBase)
	}

	fmt.Println()
	fmt.Println("Run 'gridtap play --profile <name>' to play one.")
}
