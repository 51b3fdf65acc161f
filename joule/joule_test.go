package joule_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccalmels/advent-2025/button"
	"github.com/ccalmels/advent-2025/combination"
	"github.com/ccalmels/advent-2025/joule"
	"github.com/ccalmels/advent-2025/machine/machinetest"
)

func buttonsOf(tokens ...string) []button.Button {
	out := make([]button.Button, len(tokens))
	for i, tok := range tokens {
		out[i] = button.MustParse(tok)
	}

	return out
}

func sampleButtons() []button.Button {
	return buttonsOf("(3)", "(1,3)", "(2)", "(2,3)", "(0,2)", "(0,1)")
}

// TestSolve_Sample reproduces the worked example {3,5,4,7} → 10 presses.
func TestSolve_Sample(t *testing.T) {
	buttons := sampleButtons()
	cache := combination.NewCache(buttons)

	got, ok := joule.Solve(buttons, []int{3, 5, 4, 7}, cache)
	require.True(t, ok)
	assert.Equal(t, 10, got)
}

// TestSolve_OtherSampleMachines covers the remaining machines of the example.
func TestSolve_OtherSampleMachines(t *testing.T) {
	cases := []struct {
		name    string
		buttons []button.Button
		joules  []int
		want    int
	}{
		{
			name:    "five lights",
			buttons: buttonsOf("(0,2,3,4)", "(2,3)", "(0,4)", "(0,1,2)", "(1,2,3,4)"),
			joules:  []int{7, 5, 12, 7, 2},
			want:    12,
		},
		{
			name:    "six lights",
			buttons: buttonsOf("(0,1,2,3,4)", "(0,3,4)", "(0,1,2,4,5)", "(1,2)"),
			joules:  []int{10, 11, 11, 5, 10, 5},
			want:    11,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := joule.Solve(tc.buttons, tc.joules, combination.NewCache(tc.buttons))
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSolve_ZeroVector returns 0 without touching the cache.
func TestSolve_ZeroVector(t *testing.T) {
	buttons := sampleButtons()
	cache := combination.NewCache(buttons)

	got, ok := joule.Solve(buttons, []int{0, 0, 0, 0}, cache)
	require.True(t, ok)
	assert.Equal(t, 0, got)
	assert.Equal(t, combination.Stats{}, cache.Stats())
}

// TestSolve_Small checks single-press answers and an unreachable vector.
func TestSolve_Small(t *testing.T) {
	buttons := sampleButtons()
	cache := combination.NewCache(buttons)

	got, ok := joule.Solve(buttons, []int{1, 1, 0, 0}, cache)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	got, ok = joule.Solve(buttons, []int{0, 0, 0, 1}, cache)
	require.True(t, ok)
	assert.Equal(t, 1, got)

	// Light 0 is only reachable together with light 1 or 2.
	_, ok = joule.Solve(buttons, []int{2, 0, 0, 0}, cache)
	assert.False(t, ok)
}

// TestSolve_DoesNotMutateInput keeps the caller's vector intact.
func TestSolve_DoesNotMutateInput(t *testing.T) {
	buttons := sampleButtons()
	joules := []int{3, 5, 4, 7}
	_, ok := joule.Solve(buttons, joules, combination.NewCache(buttons))
	require.True(t, ok)
	assert.Equal(t, []int{3, 5, 4, 7}, joules)
}

// TestSolve_NegativeCount is rejected rather than explored.
func TestSolve_NegativeCount(t *testing.T) {
	buttons := sampleButtons()
	_, ok := joule.Solve(buttons, []int{1, -1, 0, 0}, combination.NewCache(buttons))
	assert.False(t, ok)
	assert.ErrorIs(t, joule.Validate([]int{1, -1}), joule.ErrNegativeJoule)
	assert.NoError(t, joule.Validate([]int{0, 4}))
}

// TestSolve_MatchesExhaustiveSearch compares against plain enumeration of
// press counts on a tiny machine.
func TestSolve_MatchesExhaustiveSearch(t *testing.T) {
	buttons := buttonsOf("(0,1)", "(1,2)", "(0)", "(2)")
	cache := combination.NewCache(buttons)

	const limit = 6
	best := map[[3]int]int{}
	for a := 0; a <= limit; a++ {
		for b := 0; b <= limit; b++ {
			for c := 0; c <= limit; c++ {
				for d := 0; d <= limit; d++ {
					key := [3]int{a + c, a + b, b + d}
					if cur, seen := best[key]; !seen || a+b+c+d < cur {
						best[key] = a + b + c + d
					}
				}
			}
		}
	}

	for key, want := range best {
		if key[0] > limit || key[1] > limit || key[2] > limit {
			continue
		}
		got, ok := joule.Solve(buttons, key[:], cache)
		require.True(t, ok, "vector %v", key)
		assert.Equal(t, want, got, "vector %v", key)
	}
}

// TestHalvingInvariant checks, over random solvable machines, that every
// feasible parity correction leaves even counts whose halves rebuild the
// original vector.
func TestHalvingInvariant(t *testing.T) {
	for n, m := range machinetest.Random(rand.New(rand.NewSource(10)), 60) {
		cache := combination.NewCache(m.Buttons)
		combos, ok := cache.Find(joule.Parity(m.Joules))
		require.True(t, ok, "machine %d", n)

		for _, combo := range combos {
			var (
				half     []int
				feasible bool
			)
			require.NotPanics(t, func() { half, feasible = joule.Reduce(m.Buttons, m.Joules, combo) },
				"machine %d combo %v", n, combo)
			if !feasible {
				continue
			}
			for light, j := range m.Joules {
				pressed := 0
				for _, idx := range combo {
					if m.Buttons[idx].Toggles(light) {
						pressed++
					}
				}
				assert.Equal(t, j, 2*half[light]+pressed, "machine %d combo %v light %d", n, combo, light)
			}
		}
	}
}

func TestReduce(t *testing.T) {
	buttons := sampleButtons()

	half, ok := joule.Reduce(buttons, []int{3, 5, 4, 7}, combination.Combination{0, 5})
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 2, 3}, half)

	// Button 0 toggles light 3, already at zero.
	_, ok = joule.Reduce(buttons, []int{1, 1, 0, 0}, combination.Combination{0, 5})
	assert.False(t, ok)

	joules := []int{2, 2, 0, 0}
	half, ok = joule.Reduce(buttons, joules, combination.Combination{5})
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 0, 0}, half)
	assert.Equal(t, []int{2, 2, 0, 0}, joules, "input must not change")
}

// TestReduce_OddResidualPanics rejects a combination that does not fix the
// parity of every light.
func TestReduce_OddResidualPanics(t *testing.T) {
	assert.PanicsWithValue(t, "joule: odd residual 1 on light 0 after parity correction", func() {
		joule.Reduce(sampleButtons(), []int{1, 0, 0, 0}, combination.Combination{})
	})
}

func TestParity(t *testing.T) {
	assert.Equal(t, uint32(0b1011), joule.Parity([]int{3, 5, 4, 7}))
	assert.Equal(t, uint32(0), joule.Parity([]int{0, 2, 8}))
	assert.Equal(t, uint32(0), joule.Parity(nil))
}
