// Package joule solves the weighted variant of the button puzzle: every light
// must be toggled an exact number of times, and buttons may be pressed any
// number of times. The goal is the fewest total presses.
//
// The solver halves the problem recursively. Pressing a button an even number
// of times leaves every light's parity untouched, so the set of buttons
// pressed an odd number of times must XOR to the parity mask of the counts.
// For every such set (taken from a combination.Cache) one press each is
// subtracted, the now-even counts are halved, and the smaller problem is solved
// the same way. A solution of the half problem with cost m costs 2·m here.
//
// Complexity: depth O(log2 max(count)); each level tries every combination
// for the current parity mask, which the cache computes once per mask.
package joule

import (
	"errors"
	"fmt"

	"github.com/ccalmels/advent-2025/button"
	"github.com/ccalmels/advent-2025/combination"
)

// ErrNegativeJoule indicates a vector entry below zero.
var ErrNegativeJoule = errors.New("joule: negative joule count")

// Validate rejects vectors that Solve cannot interpret.
func Validate(joules []int) error {
	for i, j := range joules {
		if j < 0 {
			return fmt.Errorf("%w: light %d has %d", ErrNegativeJoule, i, j)
		}
	}

	return nil
}

// Parity returns the mask of lights whose count is odd.
func Parity(joules []int) uint32 {
	var mask uint32
	for i, j := range joules {
		if j%2 != 0 {
			mask |= 1 << i
		}
	}

	return mask
}

// Solve returns the minimal number of presses that toggles light i exactly
// joules[i] times. ok is false when no sequence of presses can do it.
//
// cache must be built over buttons; it is shared across the recursion and may
// already hold entries from the binary puzzle of the same machine.
func Solve(buttons []button.Button, joules []int, cache *combination.Cache) (int, bool) {
	// 1) Terminal case: nothing left to toggle.
	if isZero(joules) {
		return 0, true
	}
	if Validate(joules) != nil {
		return 0, false
	}

	// 2) Candidate odd-press sets for the current parity.
	combos, ok := cache.Find(Parity(joules))
	if !ok {
		return 0, false
	}

	best, found := 0, false
	for _, combo := range combos {
		// 3) Apply one press per button of the candidate and halve the rest.
		half, feasible := reduce(buttons, joules, combo)
		if !feasible {
			continue
		}

		// 4) Solve the half problem; each of its presses counts twice here.
		m, ok := Solve(buttons, half, cache)
		if !ok {
			continue
		}
		if cost := len(combo) + 2*m; !found || cost < best {
			best, found = cost, true
		}
	}

	return best, found
}

// reduce subtracts one toggle per LED touched by combo and halves the result.
// It reports false when a light would drop below zero.
func reduce(buttons []button.Button, joules []int, combo combination.Combination) ([]int, bool) {
	rest := append([]int(nil), joules...)
	for _, idx := range combo {
		for _, led := range buttons[idx].LEDs {
			if rest[led] == 0 {
				return nil, false
			}
			rest[led]--
		}
	}

	for i, j := range rest {
		if j%2 != 0 {
			panic(fmt.Sprintf("joule: odd residual %d on light %d after parity correction", j, i))
		}
		rest[i] = j / 2
	}

	return rest, true
}

func isZero(joules []int) bool {
	for _, j := range joules {
		if j != 0 {
			return false
		}
	}

	return true
}
