package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gridtap/internal/engine"
)

// Tile geometry in terminal cells. Mouse hit-testing in cellAt relies on the
// grid being laid out exactly as renderGrid draws it.
const (
	tileW    = 7
	tileH    = 3
	tileGapX = 2
	tileGapY = 1
	gridTop  = 3 // rows above the grid: HUD, separator, blank line
)

var (
	hudStyle      = lipgloss.NewStyle().Bold(true)
	separatorChar = "─"

	tileIdle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	tileActive = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
	tileHazard = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	statusLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	summaryBox      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)
	submitErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// gridDims returns the tile layout for a cell count (3x3 for 9, 2x2 for 4).
func gridDims(cellCount int) (rows, cols int) {
	cols = 1
	for cols*cols < cellCount {
		cols++
	}
	rows = (cellCount + cols - 1) / cols
	return rows, cols
}

// gridOrigin returns the top-left corner of the grid for the given screen width.
func gridOrigin(width, cellCount int) (ox, oy int) {
	_, cols := gridDims(cellCount)
	gridW := cols*tileW + (cols-1)*tileGapX
	ox = (width - gridW) / 2
	if ox < 0 {
		ox = 0
	}
	return ox, gridTop
}

// cellAt maps a terminal coordinate to a cell index, or false when the point
// is outside every tile.
func cellAt(x, y, width, cellCount int) (int, bool) {
	ox, oy := gridOrigin(width, cellCount)
	rows, cols := gridDims(cellCount)

	gx, gy := x-ox, y-oy
	if gx < 0 || gy < 0 {
		return 0, false
	}

	col := gx / (tileW + tileGapX)
	row := gy / (tileH + tileGapY)
	if col >= cols || row >= rows {
		return 0, false
	}
	// Reject clicks in the gaps between tiles.
	if gx%(tileW+tileGapX) >= tileW || gy%(tileH+tileGapY) >= tileH {
		return 0, false
	}

	cell := row*cols + col
	if cell >= cellCount {
		return 0, false
	}
	return cell, true
}

// renderHUD draws the top status line and separator.
func renderHUD(sb *strings.Builder, snap engine.Snapshot, width int) {
	hud := fmt.Sprintf(" %s — %s  Score: %d  Streak: %d  Time: %4.1fs",
		snap.Player, snap.ProfileName, snap.Score, snap.Streak, snap.TimeLeft)
	sb.WriteString(hudStyle.Render(hud))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(separatorChar, max(width, 1)))
	sb.WriteString("\n\n")
}

// renderGrid draws the tile grid centered horizontally.
func renderGrid(sb *strings.Builder, snap engine.Snapshot, width int) {
	rows, cols := gridDims(snap.CellCount)
	ox, _ := gridOrigin(width, snap.CellCount)
	indent := strings.Repeat(" ", ox)

	for row := range rows {
		for line := range tileH {
			sb.WriteString(indent)
			for col := range cols {
				cell := row*cols + col
				if col > 0 {
					sb.WriteString(strings.Repeat(" ", tileGapX))
				}
				if cell >= snap.CellCount {
					sb.WriteString(strings.Repeat(" ", tileW))
					continue
				}
				sb.WriteString(renderTileLine(snap, cell, line))
			}
			sb.WriteString("\n")
		}
		if row < rows-1 {
			sb.WriteString(strings.Repeat("\n", tileGapY))
		}
	}
}

// renderTileLine draws one of the three text rows of a tile.
func renderTileLine(snap engine.Snapshot, cell, line int) string {
	style := tileIdle
	label := fmt.Sprintf("%d", cell+1)
	switch cell {
	case snap.ActiveCell:
		style = tileActive
		label = "◉"
	case snap.HazardCell:
		style = tileHazard
		label = "✖"
	}

	switch line {
	case 0:
		return style.Render("╭─────╮")
	case 1:
		return style.Render(fmt.Sprintf("│  %s  │", label))
	default:
		return style.Render("╰─────╯")
	}
}

// renderSummary draws the end-of-run statistics box.
func renderSummary(s engine.Summary, submitErr string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Run over — %s\n\n", s.Player)
	fmt.Fprintf(&b, "Score       %d\n", s.Score)
	fmt.Fprintf(&b, "Hits        %d\n", s.Hits)
	fmt.Fprintf(&b, "Misses      %d\n", s.Misses)
	fmt.Fprintf(&b, "Accuracy    %s\n", fmtAccuracy(s.Accuracy))
	fmt.Fprintf(&b, "Fastest     %s\n", fmtMs(s.FastestMs))
	fmt.Fprintf(&b, "Average     %s\n", fmtAvg(s.AvgMs))
	fmt.Fprintf(&b, "Max streak  %d\n\n", s.MaxStreak)
	b.WriteString("Press r to play again")

	out := summaryBox.Render(b.String())
	if submitErr != "" {
		out += "\n" + submitErrStyle.Render("score submission failed: "+submitErr)
	}
	return out
}

func fmtAccuracy(v *int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%d%%", *v)
}

func fmtMs(v *int) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%dms", *v)
}

func fmtAvg(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.0fms", *v)
}
