package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gridtap/internal/config"
	"gridtap/internal/engine"
)

func testModel(t *testing.T, player string) Model {
	t.Helper()
	p := config.DefaultProfiles().Profiles[config.ProfileNormal]
	p.HazardChance = 0
	eng := engine.New(engine.Options{Profile: p, Seed: 1})
	return NewModel(eng, player, 80, 24)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelPresetPlayerSkipsNameEntry(t *testing.T) {
	m := testModel(t, "ada")
	if m.phase != phaseGame {
		t.Error("A preset player should skip the name-entry screen")
	}

	m = testModel(t, "   ")
	if m.phase != phaseNameEntry {
		t.Error("A whitespace player should still prompt for a name")
	}
}

func TestNameEntryRejectsEmptyName(t *testing.T) {
	m := testModel(t, "")

	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)

	if m.phase != phaseNameEntry {
		t.Error("Empty name should keep the name-entry screen")
	}
	if m.nameErr == "" {
		t.Error("Empty name should surface an error message")
	}
	if m.snap.Status == engine.StatusPlaying {
		t.Error("The run must not start without a player name")
	}
}

func TestNameEntryStartsRun(t *testing.T) {
	m := testModel(t, "")

	for _, r := range "ada" {
		updated, _ := m.Update(keyMsg(string(r)))
		m = updated.(Model)
	}
	updated, _ := m.Update(keyMsg("enter"))
	m = updated.(Model)

	if m.phase != phaseGame {
		t.Fatal("Entering a name should move to the game screen")
	}
	if m.player != "ada" {
		t.Errorf("Player = %q, want %q", m.player, "ada")
	}
	if m.snap.Status != engine.StatusPlaying {
		t.Errorf("Engine status = %v, want playing", m.snap.Status)
	}
}

func TestTickMsgDrivesCountdown(t *testing.T) {
	m := testModel(t, "ada")
	m.Init()

	before := m.eng.Snapshot().TimeLeft
	updated, cmd := m.Update(TickMsg(time.Now()))
	m = updated.(Model)

	if m.snap.TimeLeft >= before {
		t.Errorf("Tick should burn time: %v -> %v", before, m.snap.TimeLeft)
	}
	if cmd == nil {
		t.Error("Tick handling should schedule the next tick")
	}
	if m.armedGen != m.snap.DeadlineGen {
		t.Errorf("First sync should arm the spawn's deadline: armed %d, gen %d",
			m.armedGen, m.snap.DeadlineGen)
	}
}

func TestStaleDeadlineMsgIsHarmless(t *testing.T) {
	m := testModel(t, "ada")
	m.Init()

	updated, _ := m.Update(TickMsg(time.Now()))
	m = updated.(Model)
	misses := m.snap.Misses

	// A deadline from a superseded spawn generation must not count as a miss.
	updated, _ = m.Update(DeadlineMsg{Gen: m.snap.DeadlineGen - 1})
	m = updated.(Model)

	if m.snap.Misses != misses {
		t.Errorf("Stale deadline changed misses: %d -> %d", misses, m.snap.Misses)
	}
}

func TestPauseToggle(t *testing.T) {
	m := testModel(t, "ada")
	m.Init()
	updated, _ := m.Update(TickMsg(time.Now()))
	m = updated.(Model)

	updated, _ = m.Update(keyMsg("p"))
	m = updated.(Model)
	if m.snap.Status != engine.StatusPaused {
		t.Fatalf("Status after p = %v, want paused", m.snap.Status)
	}

	updated, _ = m.Update(keyMsg("p"))
	m = updated.(Model)
	if m.snap.Status != engine.StatusPlaying {
		t.Errorf("Status after second p = %v, want playing", m.snap.Status)
	}
}

func TestKeyTapReachesEngine(t *testing.T) {
	m := testModel(t, "ada")
	m.Init()
	updated, _ := m.Update(TickMsg(time.Now()))
	m = updated.(Model)

	active := m.snap.ActiveCell
	updated, _ = m.Update(keyMsg(string(rune('1' + active))))
	m = updated.(Model)

	if m.snap.Hits != 1 {
		t.Errorf("Tapping the active tile's key should score a hit, hits = %d", m.snap.Hits)
	}
}
