package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// letterCells maps the left-hand letter block onto a 3x3 grid, mirroring the
// tile layout. Digits 1-9 always work regardless of grid size.
var letterCells = map[string]int{
	"q": 0, "w": 1, "e": 2,
	"a": 3, "s": 4, "d": 5,
	"z": 6, "x": 7, "c": 8,
}

// CellForKey translates a pressed key to a cell index for the given grid
// size. Returns false when the key does not address a cell.
func CellForKey(k string, cellCount int) (int, bool) {
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		cell := int(k[0] - '1')
		if cell < cellCount {
			return cell, true
		}
		return 0, false
	}
	// The letter block matches the on-screen layout only for the 3x3 grid.
	if cellCount == 9 {
		if cell, ok := letterCells[k]; ok {
			return cell, true
		}
	}
	return 0, false
}

// helpKeyMap feeds the bubbles help bar at the bottom of the screen.
type helpKeyMap struct {
	Tap     key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the one-line help view.
func (k helpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tap, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tap, k.Pause},
		{k.Restart, k.Quit},
	}
}

func defaultHelpKeyMap() helpKeyMap {
	return helpKeyMap{
		Tap: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9/qwe…", "tap tile"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
