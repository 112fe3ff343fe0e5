package engine

// Status is the run lifecycle state. It is the single source of truth for
// which events the engine accepts.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusPaused
	StatusDone
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}
