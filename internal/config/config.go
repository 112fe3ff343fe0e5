// Package config provides YAML-based difficulty profile loading for gridtap.
package config

import (
	"fmt"
	"sort"
)

// Profile is an immutable difficulty parameter bundle, keyed by name.
// It is loaded once per run and controls the starting clock, penalties,
// hazard odds, and the pacing and reward curves. The engine never mutates it.
type Profile struct {
	Name string `yaml:"-"`

	// StartTime is the survival countdown value at run start, in seconds.
	StartTime float64 `yaml:"start_time"`
	// MissPenalty is the time cost of letting the reaction deadline expire.
	MissPenalty float64 `yaml:"miss_penalty"`
	// WrongClickPenalty is the time cost of tapping a tile that is neither
	// the active target nor the hazard.
	WrongClickPenalty float64 `yaml:"wrong_click_penalty"`
	// HazardChance is the per-spawn probability of a decoy hazard tile.
	HazardChance float64 `yaml:"hazard_chance"`
	// TimeRewardCap bounds how much time fast play can bank, in seconds.
	TimeRewardCap float64 `yaml:"time_reward_cap"`

	// Pacing coefficients for the reaction window:
	// window = max(PaceFloor, PaceBase - score*PaceScoreFactor - streak*PaceStreakFactor)
	PaceBase         float64 `yaml:"pace_base"`
	PaceFloor        float64 `yaml:"pace_floor"`
	PaceScoreFactor  float64 `yaml:"pace_score_factor"`
	PaceStreakFactor float64 `yaml:"pace_streak_factor"`

	// Reward coefficients for time banked on a correct tap:
	// gain = max(MinGain, max(RewardFloor, 1.25 - reactionMs/RewardSlope - streak*RewardStreakFactor) + RewardBonus)
	RewardBonus        float64 `yaml:"reward_bonus"`
	RewardFloor        float64 `yaml:"reward_floor"`
	RewardSlope        float64 `yaml:"reward_slope"`
	RewardStreakFactor float64 `yaml:"reward_streak_factor"`
	MinGain            float64 `yaml:"min_gain"`
}

// Validate checks that the profile coefficients describe a playable game.
func (p Profile) Validate() error {
	switch {
	case p.StartTime <= 0:
		return fmt.Errorf("config: profile %q: start_time must be positive", p.Name)
	case p.TimeRewardCap < p.StartTime:
		return fmt.Errorf("config: profile %q: time_reward_cap must be at least start_time", p.Name)
	case p.PaceFloor <= 0 || p.PaceBase < p.PaceFloor:
		return fmt.Errorf("config: profile %q: pace_base must be at least pace_floor (> 0)", p.Name)
	case p.RewardSlope <= 0:
		return fmt.Errorf("config: profile %q: reward_slope must be positive", p.Name)
	case p.HazardChance < 0 || p.HazardChance > 1:
		return fmt.Errorf("config: profile %q: hazard_chance must be in [0, 1]", p.Name)
	case p.MissPenalty < 0 || p.WrongClickPenalty < 0:
		return fmt.Errorf("config: profile %q: penalties must not be negative", p.Name)
	}
	return nil
}

// Profiles is a named set of difficulty profiles.
type Profiles struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Get returns the profile with the given name.
func (ps Profiles) Get(name string) (Profile, error) {
	p, ok := ps.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("config: unknown difficulty profile %q", name)
	}
	return p, nil
}

// Names returns all profile names, sorted.
func (ps Profiles) Names() []string {
	names := make([]string, 0, len(ps.Profiles))
	for name := range ps.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every profile in the set.
func (ps Profiles) Validate() error {
	for _, name := range ps.Names() {
		if err := ps.Profiles[name].Validate(); err != nil {
			return err
		}
	}
	return nil
}
