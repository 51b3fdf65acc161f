package combination

import (
	"errors"

	"github.com/ccalmels/advent-2025/button"
)

// ErrNoCombination is returned by callers that require at least one
// combination for an objective and found none.
var ErrNoCombination = errors.New("combination: no combination reaches the objective")

// Combination is an ascending list of button indices pressed once each.
type Combination []int

// Mask folds the masks of the selected buttons with XOR.
func (c Combination) Mask(buttons []button.Button) uint32 {
	var m uint32
	for _, idx := range c {
		m ^= buttons[idx].Mask
	}

	return m
}

// Find returns every combination of buttons[index:] that, XORed onto
// accumulated, yields objective. The indices in each combination are absolute
// positions in buttons.
//
// The boolean is false when no combination exists. A true result with a single
// empty combination means objective is already reached without pressing.
//
// Results list the "skip buttons[index]" branch before the "press" branch.
func Find(buttons []button.Button, index int, accumulated, objective uint32) ([]Combination, bool) {
	// 1) Leaf: every button has been decided.
	if index == len(buttons) {
		if accumulated == objective {
			return []Combination{{}}, true
		}

		return nil, false
	}

	// 2) Branch A: leave button index untouched.
	out, _ := Find(buttons, index+1, accumulated, objective)

	// 3) Branch B: press it once and record the index in front.
	pressed, _ := Find(buttons, index+1, accumulated^buttons[index].Mask, objective)
	for _, c := range pressed {
		out = append(out, append(Combination{index}, c...))
	}

	if len(out) == 0 {
		return nil, false
	}

	return out, true
}

// Smallest returns the combination with the fewest buttons.
// The first one wins on ties; ok is false for an empty list.
func Smallest(combos []Combination) (best Combination, ok bool) {
	for i, c := range combos {
		if i == 0 || len(c) < len(best) {
			best = c
		}
	}

	return best, len(combos) > 0
}

func clone(combos []Combination) []Combination {
	if combos == nil {
		return nil
	}
	out := make([]Combination, len(combos))
	for i, c := range combos {
		out[i] = append(Combination{}, c...)
	}

	return out
}
