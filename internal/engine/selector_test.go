package engine

import (
	"math/rand"
	"testing"
)

func TestPickCellAvoidsPreviousAndExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		got := pickCell(rng, 3, 9, 5)
		if got < 0 || got >= 9 {
			t.Fatalf("pickCell returned out-of-range cell %d", got)
		}
		if got == 3 {
			t.Fatal("pickCell returned the previous cell")
		}
		if got == 5 {
			t.Fatal("pickCell returned an excluded cell")
		}
	}
}

func TestPickCellSingleCellGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	if got := pickCell(rng, 0, 1); got != 0 {
		t.Errorf("pickCell on a one-cell grid = %d, want 0", got)
	}
	if got := pickCell(rng, -1, 0); got != 0 {
		t.Errorf("pickCell on an empty grid = %d, want 0", got)
	}
}

func TestPickCellExhaustedBudgetFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// Two cells with both the other cell excluded: every draw is rejected,
	// so the budget runs out and previous comes back.
	if got := pickCell(rng, 1, 2, 0); got != 1 {
		t.Errorf("Exhausted budget should fall back to previous, got %d", got)
	}

	// Previous out of range (fresh run): fallback must still be in range.
	if got := pickCell(rng, -1, 2, 0, 1); got != 0 {
		t.Errorf("Fallback with invalid previous = %d, want 0", got)
	}
}

func TestPickCellCoversGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	seen := make(map[int]bool)
	prev := -1
	for i := 0; i < 500; i++ {
		prev = pickCell(rng, prev, 9)
		seen[prev] = true
	}

	for cell := 0; cell < 9; cell++ {
		if !seen[cell] {
			t.Errorf("Cell %d was never picked in 500 spawns", cell)
		}
	}
}
