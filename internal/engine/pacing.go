package engine

import (
	"math"
	"time"

	"gridtap/internal/config"
)

// Point values for a correct tap: a flat base, a reaction bonus that decays by
// one point per 30ms of latency, and a bonus per consecutive hit beyond the first.
const (
	tapBasePoints      = 15
	reactionBonusCeil  = 1200 // reaction (ms) at which the bonus bottoms out
	reactionBonusScale = 30   // ms of latency per bonus point
	minReactionBonus   = 2
	streakBonusPoints  = 4
	hazardScorePenalty = 10
)

// rewardBase is the time reward (seconds) for a hypothetical zero-latency tap
// with no streak, before the profile bonus is added.
const rewardBase = 1.25

// reactionWindow returns the deadline duration for the next target. Higher
// score and streak compress the window down to the profile floor, so
// difficulty rises monotonically with skill.
func reactionWindow(p config.Profile, score, streak int) time.Duration {
	sec := p.PaceBase - float64(score)*p.PaceScoreFactor - float64(streak)*p.PaceStreakFactor
	if sec < p.PaceFloor {
		sec = p.PaceFloor
	}
	return time.Duration(sec * float64(time.Second))
}

// scoreGain returns the points awarded for a correct tap.
// streak is the consecutive-hit count before this tap.
func scoreGain(reactionMs, streak int) int {
	bonus := int(math.Round(float64(reactionBonusCeil-reactionMs) / reactionBonusScale))
	if bonus < minReactionBonus {
		bonus = minReactionBonus
	}
	pts := tapBasePoints + bonus
	if streak > 1 {
		pts += (streak - 1) * streakBonusPoints
	}
	return pts
}

// timeGain returns the seconds banked onto the survival clock for a correct
// tap. streak is the consecutive-hit count before this tap.
func timeGain(p config.Profile, reactionMs, streak int) float64 {
	reward := rewardBase - float64(reactionMs)/p.RewardSlope - float64(streak)*p.RewardStreakFactor
	if reward < p.RewardFloor {
		reward = p.RewardFloor
	}
	gain := reward + p.RewardBonus
	if gain < p.MinGain {
		gain = p.MinGain
	}
	return gain
}

// clampF restricts a float64 to [lo, hi].
func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
