package config

import (
	_ "embed"
)

//go:embed defaults/profiles.yaml
var defaultProfilesYAML []byte

// Well-known profile names shipped with the game.
const (
	ProfileNormal  = "normal"
	ProfileHard    = "hard"
	ProfileExtreme = "extreme"
)

// DefaultProfiles returns the built-in difficulty profiles. The values mirror
// defaults/profiles.yaml and serve as a fallback if the embed cannot be parsed.
func DefaultProfiles() Profiles {
	return Profiles{
		Profiles: map[string]Profile{
			ProfileNormal: {
				Name:               ProfileNormal,
				StartTime:          30,
				MissPenalty:        2.5,
				WrongClickPenalty:  1.4,
				HazardChance:       0.18,
				TimeRewardCap:      50,
				PaceBase:           2.2,
				PaceFloor:          0.62,
				PaceScoreFactor:    0.0035,
				PaceStreakFactor:   0.035,
				RewardBonus:        0.8,
				RewardFloor:        0.55,
				RewardSlope:        940,
				RewardStreakFactor: 0.02,
				MinGain:            1.1,
			},
			ProfileHard: {
				Name:               ProfileHard,
				StartTime:          24,
				MissPenalty:        3.0,
				WrongClickPenalty:  1.8,
				HazardChance:       0.26,
				TimeRewardCap:      40,
				PaceBase:           1.9,
				PaceFloor:          0.52,
				PaceScoreFactor:    0.0045,
				PaceStreakFactor:   0.045,
				RewardBonus:        0.55,
				RewardFloor:        0.45,
				RewardSlope:        820,
				RewardStreakFactor: 0.03,
				MinGain:            0.9,
			},
			ProfileExtreme: {
				Name:               ProfileExtreme,
				StartTime:          18,
				MissPenalty:        3.6,
				WrongClickPenalty:  2.2,
				HazardChance:       0.34,
				TimeRewardCap:      32,
				PaceBase:           1.6,
				PaceFloor:          0.42,
				PaceScoreFactor:    0.0055,
				PaceStreakFactor:   0.055,
				RewardBonus:        0.35,
				RewardFloor:        0.35,
				RewardSlope:        700,
				RewardStreakFactor: 0.04,
				MinGain:            0.7,
			},
		},
	}
}
