package engine

// Snapshot is an immutable view of the run state, published to listeners on
// every change and pollable via Engine.Snapshot for hosts with value
// semantics (the Bubble Tea model).
type Snapshot struct {
	Status      Status
	Player      string
	ProfileName string
	CellCount   int

	TimeLeft float64 // survival clock, seconds
	Score    int
	Streak   int

	ActiveCell int // -1 when no run is live
	HazardCell int // -1 when absent

	Hits      int
	Misses    int
	MaxStreak int

	// DeadlineGen identifies the currently armed reaction deadline. The host
	// arms a one-shot timer whenever it observes a new generation and passes
	// the generation back on expiry; stale generations are ignored.
	DeadlineGen uint64
	// WindowMs is the duration of the armed reaction window.
	WindowMs int
}

// Snapshot returns the current state of the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:      e.status,
		Player:      e.player,
		ProfileName: e.profile.Name,
		CellCount:   e.cellCount,
		TimeLeft:    e.timeLeft,
		Score:       e.score,
		Streak:      e.streak,
		ActiveCell:  e.activeCell,
		HazardCell:  e.hazardCell,
		Hits:        e.hits,
		Misses:      e.misses,
		MaxStreak:   e.maxStreak,
		DeadlineGen: e.deadlineGen,
		WindowMs:    int(e.window.Milliseconds()),
	}
}
