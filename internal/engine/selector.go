package engine

import "math/rand"

// maxPickAttempts bounds rejection sampling so pathological grids (one cell,
// everything excluded) cost a fixed number of draws instead of looping.
const maxPickAttempts = 40

// pickCell returns a uniformly sampled cell index in [0, cellCount) that is
// neither previous nor in excluded. When the attempt budget is exhausted it
// falls back to previous; the result is always in range.
//
// Bounded rejection sampling is deliberate: true exclusion-set sampling would
// be marginally fairer but this keeps the worst case deterministic.
func pickCell(rng *rand.Rand, previous, cellCount int, excluded ...int) int {
	if cellCount <= 1 {
		return 0
	}

draw:
	for range maxPickAttempts {
		v := rng.Intn(cellCount)
		if v == previous {
			continue
		}
		for _, ex := range excluded {
			if v == ex {
				continue draw
			}
		}
		return v
	}

	if previous >= 0 && previous < cellCount {
		return previous
	}
	return 0
}
