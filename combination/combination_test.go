package combination_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccalmels/advent-2025/button"
	"github.com/ccalmels/advent-2025/combination"
)

// sampleButtons is the first machine of the puzzle example (four lights).
func sampleButtons() []button.Button {
	tokens := []string{"(3)", "(1,3)", "(2)", "(2,3)", "(0,2)", "(0,1)"}
	out := make([]button.Button, len(tokens))
	for i, tok := range tokens {
		out[i] = button.MustParse(tok)
	}

	return out
}

// TestFind_Sample checks the exact result set and order for objective .##.
func TestFind_Sample(t *testing.T) {
	combos, ok := combination.Find(sampleButtons(), 0, 0, 0b0110)
	require.True(t, ok)
	assert.Equal(t, []combination.Combination{
		{4, 5},
		{1, 3},
		{0, 2, 3, 4, 5},
		{0, 1, 2},
	}, combos)

	best, ok := combination.Smallest(combos)
	require.True(t, ok)
	assert.Len(t, best, 2)
}

// TestFind_ZeroObjective distinguishes "empty combination" from "no solution".
func TestFind_ZeroObjective(t *testing.T) {
	combos, ok := combination.Find(sampleButtons(), 0, 0, 0)
	require.True(t, ok)
	require.NotEmpty(t, combos)
	assert.Equal(t, combination.Combination{}, combos[0])

	best, ok := combination.Smallest(combos)
	require.True(t, ok)
	assert.Empty(t, best)
}

// TestFind_NoSolution covers a light no button touches.
func TestFind_NoSolution(t *testing.T) {
	buttons := []button.Button{button.MustParse("(0)"), button.MustParse("(1)")}
	combos, ok := combination.Find(buttons, 0, 0, 0b100)
	assert.False(t, ok)
	assert.Nil(t, combos)

	_, ok = combination.Smallest(nil)
	assert.False(t, ok)
}

// TestFind_NoButtons treats the empty bank as reaching only the zero mask.
func TestFind_NoButtons(t *testing.T) {
	combos, ok := combination.Find(nil, 0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, []combination.Combination{{}}, combos)

	_, ok = combination.Find(nil, 0, 0, 1)
	assert.False(t, ok)
}

// TestFind_Soundness verifies every returned combination XOR-folds to the objective.
func TestFind_Soundness(t *testing.T) {
	buttons := sampleButtons()
	for objective := uint32(0); objective < 16; objective++ {
		combos, ok := combination.Find(buttons, 0, 0, objective)
		if !ok {
			continue
		}
		for _, c := range combos {
			assert.Equal(t, objective, c.Mask(buttons), "objective %04b combo %v", objective, c)
			assert.True(t, sort.IntsAreSorted(c), "combo %v must be ascending", c)
		}
	}
}

// bruteForce enumerates all subsets with a bitmask loop.
func bruteForce(buttons []button.Button, objective uint32) map[uint64]bool {
	found := make(map[uint64]bool)
	for subset := uint64(0); subset < 1<<len(buttons); subset++ {
		var m uint32
		for i := range buttons {
			if subset&(1<<i) != 0 {
				m ^= buttons[i].Mask
			}
		}
		if m == objective {
			found[subset] = true
		}
	}

	return found
}

// TestFind_Completeness compares Find against brute force on random banks of ≤ 6 buttons.
func TestFind_Completeness(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		n := 1 + r.Intn(6)
		lights := 1 + r.Intn(5)
		buttons := make([]button.Button, n)
		for i := range buttons {
			for l := 0; l < lights; l++ {
				if r.Intn(2) == 0 {
					buttons[i].LEDs = append(buttons[i].LEDs, l)
					buttons[i].Mask |= 1 << l
				}
			}
		}

		for objective := uint32(0); objective < 1<<lights; objective++ {
			want := bruteForce(buttons, objective)
			combos, ok := combination.Find(buttons, 0, 0, objective)
			assert.Equal(t, len(want) > 0, ok)

			got := make(map[uint64]bool, len(combos))
			for _, c := range combos {
				var subset uint64
				for _, idx := range c {
					subset |= 1 << idx
				}
				assert.False(t, got[subset], "duplicate combination %v", c)
				got[subset] = true
			}
			assert.Equal(t, want, got, "round %d objective %b", round, objective)
		}
	}
}

// TestCache_Transparency checks that cached results equal fresh ones and stay isolated.
func TestCache_Transparency(t *testing.T) {
	buttons := sampleButtons()
	cache := combination.NewCache(buttons)

	first, ok := cache.Find(0b0110)
	require.True(t, ok)
	second, ok := cache.Find(0b0110)
	require.True(t, ok)
	assert.Equal(t, first, second)

	direct, _ := combination.Find(buttons, 0, 0, 0b0110)
	assert.Equal(t, direct, second)

	// Mutating a returned copy must not leak into the cache.
	first[0][0] = 99
	third, _ := cache.Find(0b0110)
	assert.Equal(t, direct, third)

	// A different key never aliases a previous one.
	other, ok := cache.Find(0b1000)
	require.True(t, ok)
	for _, c := range other {
		assert.Equal(t, uint32(0b1000), c.Mask(buttons))
	}

	assert.Equal(t, combination.Stats{Hits: 2, Misses: 2, Entries: 2}, cache.Stats())
	assert.Equal(t, buttons, cache.Buttons())
}

// TestCache_RemembersFailures caches "no solution" as well.
func TestCache_RemembersFailures(t *testing.T) {
	cache := combination.NewCache([]button.Button{button.MustParse("(0)")})
	_, ok := cache.Find(0b10)
	assert.False(t, ok)
	_, ok = cache.Find(0b10)
	assert.False(t, ok)
	assert.Equal(t, combination.Stats{Hits: 1, Misses: 1, Entries: 1}, cache.Stats())
}
