package machine

import (
	"errors"
	"fmt"

	"github.com/ccalmels/advent-2025/combination"
	"github.com/ccalmels/advent-2025/joule"
)

// ErrUnsolvable indicates a machine for which one of the two puzzles has no answer.
var ErrUnsolvable = errors.New("machine: unsolvable machine")

// Result holds the answers of both puzzles for one machine.
type Result struct {
	// Presses is the fewest single presses reaching Target.
	Presses int

	// JoulePresses is the fewest presses toggling each light exactly Joules[i] times.
	JoulePresses int
}

// Totals accumulates Results over many machines.
type Totals struct {
	Machines     int
	Presses      int
	JoulePresses int
}

// Add folds one machine's result into t.
func (t *Totals) Add(r Result) {
	t.Machines++
	t.Presses += r.Presses
	t.JoulePresses += r.JoulePresses
}

// Merge folds another partial total into t.
func (t *Totals) Merge(o Totals) {
	t.Machines += o.Machines
	t.Presses += o.Presses
	t.JoulePresses += o.JoulePresses
}

// Solve answers both puzzles for m. The combination cache lives only for the
// duration of the call.
func (m Machine) Solve() (Result, error) {
	r, _, err := m.solve()

	return r, err
}

// solve also reports the cache statistics for diagnostics.
func (m Machine) solve() (Result, combination.Stats, error) {
	cache := combination.NewCache(m.Buttons)

	// 1) Binary lights: smallest subset of single presses.
	combos, ok := cache.Find(m.Target)
	if !ok {
		return Result{}, cache.Stats(), fmt.Errorf("%w: lights of %v: %w", ErrUnsolvable, m, combination.ErrNoCombination)
	}
	best, _ := combination.Smallest(combos)

	// 2) Joules: recursive halving, sharing the same cache.
	presses, ok := joule.Solve(m.Buttons, m.Joules, cache)
	if !ok {
		return Result{}, cache.Stats(), fmt.Errorf("%w: joules of %v: %w", ErrUnsolvable, m, combination.ErrNoCombination)
	}

	return Result{Presses: len(best), JoulePresses: presses}, cache.Stats(), nil
}
