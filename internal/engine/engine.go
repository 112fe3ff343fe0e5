// Package engine implements the gridtap run engine: an event-driven state
// machine that owns target spawning, the dual-clock time economy, scoring
// with streak multipliers, and end-of-run statistics for one play session.
//
// The engine performs no I/O of its own and expects all three event sources
// (the 100ms countdown tick, the reaction-deadline expiry, and player input)
// to be serialized by the host loop, so it needs no locks. Stale timer
// delivery is handled with generation numbers rather than cancellation.
package engine

import (
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"gridtap/internal/config"
)

// TickInterval is the survival-countdown granularity. Every Tick call burns
// a fixed 0.1s from the clock regardless of wall time, which keeps runs
// deterministic and testable.
const TickInterval = 100 * time.Millisecond

const tickSeconds = 0.1

// DefaultCellCount is the grid size when the host does not choose one (3x3).
const DefaultCellCount = 9

// ErrEmptyPlayer is returned by Start when the player identity is empty or
// whitespace. Identity content is otherwise the caller's concern.
var ErrEmptyPlayer = errors.New("engine: player name is empty")

// RunRecorder persists the full record of a finished run. The engine applies
// it unconditionally before any score submission is attempted.
type RunRecorder interface {
	RecordRun(rec RunRecord) error
}

// ScoreSubmitter sends a final score to the leaderboard. Submission is
// fire-and-forget: a failure is reported to listeners but never rolls back
// the locally recorded run.
type ScoreSubmitter interface {
	SubmitScore(player, mode string, score int) error
}

// Listener receives engine events. StateChanged fires on every mutation,
// RunFinished exactly once per run, and SubmissionFailed when the
// leaderboard submit fails after the run was recorded locally.
type Listener interface {
	StateChanged(Snapshot)
	RunFinished(Summary)
	SubmissionFailed(err error)
}

// Options configures a new Engine. Zero values fall back to defaults.
type Options struct {
	Profile   config.Profile
	CellCount int              // number of grid tiles, default DefaultCellCount
	Seed      int64            // RNG seed, 0 means time-based
	Clock     func() time.Time // reaction-latency clock, default time.Now
	Logger    *log.Logger      // default discards
	Recorder  RunRecorder      // optional
	Submitter ScoreSubmitter   // optional
}

// Engine is the run state machine. It is not safe for concurrent use; the
// host event loop must serialize all calls.
type Engine struct {
	profile   config.Profile
	cellCount int
	rng       *rand.Rand
	now       func() time.Time
	logger    *log.Logger

	recorder  RunRecorder
	submitter ScoreSubmitter
	listeners []Listener

	status Status
	player string

	timeLeft float64
	score    int
	streak   int

	activeCell int
	hazardCell int

	hits      int
	misses    int
	fastestMs int
	totalMs   int64
	maxStreak int

	spawnedAt   time.Time
	deadlineGen uint64
	window      time.Duration
	summary     *Summary
}

// New creates an engine in the idle state.
func New(opts Options) *Engine {
	if opts.CellCount <= 0 {
		opts.CellCount = DefaultCellCount
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Engine{
		profile:    opts.Profile,
		cellCount:  opts.CellCount,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		now:        opts.Clock,
		logger:     opts.Logger,
		recorder:   opts.Recorder,
		submitter:  opts.Submitter,
		status:     StatusIdle,
		timeLeft:   opts.Profile.StartTime,
		activeCell: -1,
		hazardCell: -1,
		fastestMs:  -1,
	}
}

// Subscribe registers a listener for state snapshots and the run summary.
func (e *Engine) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Window returns the duration of the currently armed reaction deadline.
func (e *Engine) Window() time.Duration {
	return e.window
}

// Summary returns the terminal summary of the last finished run.
func (e *Engine) Summary() (Summary, bool) {
	if e.summary == nil {
		return Summary{}, false
	}
	return *e.summary, true
}

// Start begins a new run. Valid from idle or done; a run already in progress
// is left untouched. The previous RunState is discarded wholesale.
func (e *Engine) Start(player string) error {
	if strings.TrimSpace(player) == "" {
		return ErrEmptyPlayer
	}
	if e.status == StatusPlaying || e.status == StatusPaused {
		return nil
	}

	e.player = player
	e.resetRunState()
	e.status = StatusPlaying
	e.logger.Info("run started", "player", player, "profile", e.profile.Name)
	e.spawn()
	e.emitState()
	return nil
}

// Pause suspends both clocks without losing state. No-op unless playing.
func (e *Engine) Pause() {
	if e.status != StatusPlaying {
		return
	}
	e.status = StatusPaused
	e.deadlineGen++ // invalidate the in-flight reaction deadline
	e.emitState()
}

// Resume re-arms the reaction deadline with the full configured window (not
// the remainder at pause time) and restarts the countdown. No-op unless paused.
func (e *Engine) Resume() {
	if e.status != StatusPaused {
		return
	}
	e.status = StatusPlaying
	e.spawnedAt = e.now()
	e.armDeadline()
	e.emitState()
}

// ChangeProfile swaps the difficulty profile, forcing a return to idle and a
// full reset. A running game cannot change its pacing mid-run.
func (e *Engine) ChangeProfile(p config.Profile) {
	e.profile = p
	e.status = StatusIdle
	e.resetRunState()
	e.emitState()
}

// Tick advances the survival countdown by one fixed interval. Ignored unless
// playing, so a tick delivered mid-pause cannot drain the clock.
func (e *Engine) Tick() {
	if e.status != StatusPlaying {
		return
	}
	e.timeLeft -= tickSeconds
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.finish()
		return
	}
	e.emitState()
}

// ExpireDeadline handles a reaction-deadline timeout for the given spawn
// generation. A stale generation (superseded spawn, pause, or finished run)
// is a safe no-op.
func (e *Engine) ExpireDeadline(gen uint64) {
	if e.status != StatusPlaying || gen != e.deadlineGen {
		return
	}
	e.streak = 0
	e.misses++
	e.applyPenalty(e.profile.MissPenalty, true)
}

// Tap handles a player tap on the given cell. Ignored unless playing or when
// the index is outside the grid.
func (e *Engine) Tap(cell int) {
	if e.status != StatusPlaying || cell < 0 || cell >= e.cellCount {
		return
	}

	switch cell {
	case e.activeCell:
		e.scoreHit()
	case e.hazardCell:
		// Strictly worse than a plain miss: costs points and extra time.
		e.score = max(e.score-hazardScorePenalty, 0)
		e.streak = 0
		e.misses++
		e.hazardCell = -1
		e.applyPenalty(e.profile.MissPenalty+1, true)
	default:
		// Wrong tile: the active target stays live and its deadline keeps running.
		e.streak = 0
		e.misses++
		e.applyPenalty(e.profile.WrongClickPenalty, false)
	}
}

func (e *Engine) scoreHit() {
	reaction := int(e.now().Sub(e.spawnedAt).Milliseconds())
	if reaction < 0 {
		reaction = 0
	}

	e.score += scoreGain(reaction, e.streak)
	gain := timeGain(e.profile, reaction, e.streak)
	e.timeLeft = clampF(e.timeLeft+gain, 0, e.profile.TimeRewardCap)

	e.streak++
	if e.streak > e.maxStreak {
		e.maxStreak = e.streak
	}
	e.hits++
	if e.fastestMs < 0 || reaction < e.fastestMs {
		e.fastestMs = reaction
	}
	e.totalMs += int64(reaction)

	e.spawn()
	e.emitState()
}

// applyPenalty is the single funnel for all miss flavors: burn time, check
// for exhaustion, then optionally spawn the next target.
func (e *Engine) applyPenalty(penalty float64, respawn bool) {
	e.timeLeft -= penalty
	if e.timeLeft <= 0 {
		e.timeLeft = 0
		e.finish()
		return
	}
	if respawn {
		e.spawn()
	}
	e.emitState()
}

// spawn picks the next active target (and possibly a hazard), stamps the
// spawn time, and arms a fresh reaction deadline.
func (e *Engine) spawn() {
	prevActive, prevHazard := e.activeCell, e.hazardCell

	e.activeCell = pickCell(e.rng, prevActive, e.cellCount)
	e.hazardCell = -1
	if e.cellCount > 1 && e.rng.Float64() < e.profile.HazardChance {
		if h := pickCell(e.rng, prevHazard, e.cellCount, e.activeCell); h != e.activeCell {
			e.hazardCell = h
		}
	}

	e.spawnedAt = e.now()
	e.armDeadline()
}

func (e *Engine) armDeadline() {
	e.deadlineGen++
	e.window = reactionWindow(e.profile, e.score, e.streak)
}

// finish latches the terminal state, emits the summary exactly once, and
// hands the run to the persistence collaborators.
func (e *Engine) finish() {
	if e.status == StatusDone {
		return
	}
	e.status = StatusDone
	e.deadlineGen++ // late deadline callbacks become no-ops
	e.activeCell = -1
	e.hazardCell = -1

	s := e.buildSummary()
	e.summary = &s
	e.logger.Info("run finished",
		"player", s.Player, "profile", s.Mode,
		"score", s.Score, "hits", s.Hits, "misses", s.Misses)

	e.emitState()
	for _, l := range e.listeners {
		l.RunFinished(s)
	}
	e.persist(s)
}

// persist applies the local run record first, then attempts the leaderboard
// submission, so a submission failure never loses the recorded run.
func (e *Engine) persist(s Summary) {
	if e.recorder != nil {
		rec := RunRecord{Summary: s, PlayedAt: e.now()}
		if err := e.recorder.RecordRun(rec); err != nil {
			e.logger.Warn("could not record run", "player", s.Player, "error", err)
		}
	}
	if e.submitter != nil {
		if err := e.submitter.SubmitScore(s.Player, s.Mode, s.Score); err != nil {
			e.logger.Warn("score submission failed", "player", s.Player, "error", err)
			for _, l := range e.listeners {
				l.SubmissionFailed(err)
			}
		}
	}
}

func (e *Engine) resetRunState() {
	e.timeLeft = e.profile.StartTime
	e.score = 0
	e.streak = 0
	e.activeCell = -1
	e.hazardCell = -1
	e.hits = 0
	e.misses = 0
	e.fastestMs = -1
	e.totalMs = 0
	e.maxStreak = 0
	e.deadlineGen++
	e.window = 0
	e.summary = nil
}

func (e *Engine) emitState() {
	if len(e.listeners) == 0 {
		return
	}
	snap := e.Snapshot()
	for _, l := range e.listeners {
		l.StateChanged(snap)
	}
}
