package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gridtap/internal/engine"
)

// phase is the screen the model is showing. The engine status drives the
// in-game phases; nameEntry exists only before the first run.
type phase int

const (
	phaseNameEntry phase = iota
	phaseGame
)

// notices collects engine events that the value-semantics tea.Model cannot
// receive directly. The model reads it on every View.
type notices struct {
	submitErr error
}

func (n *notices) StateChanged(engine.Snapshot) {}
func (n *notices) RunFinished(engine.Summary)   {}
func (n *notices) SubmissionFailed(err error)   { n.submitErr = err }

// Model is the Bubble Tea model that hosts one engine.
type Model struct {
	eng     *engine.Engine
	notices *notices

	phase    phase
	player   string
	nameIn   textinput.Model
	nameErr  string
	keys     helpKeyMap
	help     help.Model
	width    int
	height   int
	armedGen uint64
	snap     engine.Snapshot
	quitting bool
}

// NewModel creates a model for the given engine. When player is non-empty
// (CLI flag or SSH username) the name-entry screen is skipped.
func NewModel(eng *engine.Engine, player string, width, height int) Model {
	n := &notices{}
	eng.Subscribe(n)

	in := textinput.New()
	in.Placeholder = "your name"
	in.CharLimit = 24
	in.Width = 24
	in.Focus()

	m := Model{
		eng:     eng,
		notices: n,
		phase:   phaseNameEntry,
		player:  strings.TrimSpace(player),
		nameIn:  in,
		keys:    defaultHelpKeyMap(),
		help:    help.New(),
		width:   width,
		height:  height,
		snap:    eng.Snapshot(),
	}
	if m.player != "" {
		m.phase = phaseGame
	}
	return m
}

// Init starts the countdown loop and, when the player is preset, the run.
func (m Model) Init() tea.Cmd {
	if m.phase == phaseGame {
		//nolint:errcheck // player is known non-empty here
		m.eng.Start(m.player)
	}
	return tea.Batch(tickCmd(), textinput.Blink)
}

// Update handles messages and forwards engine events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if cell, ok := cellAt(msg.X, msg.Y, m.width, m.snap.CellCount); ok {
				m.eng.Tap(cell)
			}
		}
		return m.sync(nil)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.eng.Tick()
		return m.sync(tickCmd())

	case DeadlineMsg:
		m.eng.ExpireDeadline(msg.Gen)
		return m.sync(nil)
	}

	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.phase == phaseNameEntry {
		return m.handleNameKey(msg)
	}

	switch msg.String() {
	case "p", "esc":
		switch m.snap.Status {
		case engine.StatusPlaying:
			m.eng.Pause()
		case engine.StatusPaused:
			m.eng.Resume()
		}
	case "r":
		if m.snap.Status == engine.StatusDone {
			m.notices.submitErr = nil
			//nolint:errcheck // player name was validated at first start
			m.eng.Start(m.player)
		}
	default:
		if cell, ok := CellForKey(msg.String(), m.snap.CellCount); ok {
			m.eng.Tap(cell)
		}
	}

	return m.sync(nil)
}

// handleNameKey drives the name-entry screen.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		name := strings.TrimSpace(m.nameIn.Value())
		if err := m.eng.Start(name); err != nil {
			m.nameErr = "enter a name to start"
			return m, nil
		}
		m.player = name
		m.phase = phaseGame
		return m.sync(nil)
	}

	var cmd tea.Cmd
	m.nameIn, cmd = m.nameIn.Update(msg)
	return m, cmd
}

// sync refreshes the cached snapshot and arms a reaction-deadline timer
// whenever the engine has issued a new spawn generation.
func (m Model) sync(extra tea.Cmd) (tea.Model, tea.Cmd) {
	m.snap = m.eng.Snapshot()

	cmds := make([]tea.Cmd, 0, 2)
	if extra != nil {
		cmds = append(cmds, extra)
	}
	if m.snap.Status == engine.StatusPlaying && m.snap.DeadlineGen != m.armedGen {
		m.armedGen = m.snap.DeadlineGen
		cmds = append(cmds, deadlineCmd(m.snap.DeadlineGen, m.eng.Window()))
	}

	switch len(cmds) {
	case 0:
		return m, nil
	case 1:
		return m, cmds[0]
	default:
		return m, tea.Batch(cmds...)
	}
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.phase == phaseNameEntry {
		return m.viewNameEntry()
	}

	var sb strings.Builder
	renderHUD(&sb, m.snap, m.width)
	renderGrid(&sb, m.snap, m.width)
	sb.WriteString("\n")

	switch m.snap.Status {
	case engine.StatusPaused:
		sb.WriteString(statusLineStyle.Render("  Paused — press p to continue"))
		sb.WriteString("\n")
	case engine.StatusDone:
		if s, ok := m.eng.Summary(); ok {
			submitErr := ""
			if m.notices.submitErr != nil {
				submitErr = m.notices.submitErr.Error()
			}
			sb.WriteString(renderSummary(s, submitErr))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// viewNameEntry renders the pre-run identity prompt.
func (m Model) viewNameEntry() string {
	var sb strings.Builder
	sb.WriteString("\n  Who's playing?\n\n  ")
	sb.WriteString(m.nameIn.View())
	sb.WriteString("\n\n  press enter to start\n")
	if m.nameErr != "" {
		sb.WriteString(statusLineStyle.Render("  " + m.nameErr))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(eng *engine.Engine, player string, width, height int) error {
	model := NewModel(eng, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // pointer-down on a tile taps it
	)

	_, err := p.Run()
	return err
}
