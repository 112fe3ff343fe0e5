package engine

import (
	"math"
	"time"
)

// Summary is the terminal statistics snapshot produced exactly once when a
// run finishes. The engine retains no reference to it after emission.
type Summary struct {
	Player string
	Mode   string // difficulty profile name

	Score  int
	Hits   int
	Misses int

	// Accuracy is the rounded hit percentage, nil when the run had no attempts.
	Accuracy *int
	// FastestMs is the fastest reaction in milliseconds, nil when the run had no hits.
	FastestMs *int
	// AvgMs is the mean reaction in milliseconds, nil when the run had no hits.
	AvgMs *float64

	MaxStreak int
}

// RunRecord is the durable form of a finished run, handed to the local
// statistics store.
type RunRecord struct {
	Summary
	PlayedAt time.Time
}

func (e *Engine) buildSummary() Summary {
	s := Summary{
		Player:    e.player,
		Mode:      e.profile.Name,
		Score:     e.score,
		Hits:      e.hits,
		Misses:    e.misses,
		MaxStreak: e.maxStreak,
	}
	if attempts := e.hits + e.misses; attempts > 0 {
		acc := int(math.Round(100 * float64(e.hits) / float64(attempts)))
		s.Accuracy = &acc
	}
	if e.hits > 0 {
		fastest := e.fastestMs
		avg := float64(e.totalMs) / float64(e.hits)
		s.FastestMs = &fastest
		s.AvgMs = &avg
	}
	return s
}
