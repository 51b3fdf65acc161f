package combination

import "github.com/ccalmels/advent-2025/button"

// entry remembers both successful and failed searches.
type entry struct {
	combos []Combination
	ok     bool
}

// Stats reports cache usage for diagnostics.
type Stats struct {
	Hits    int
	Misses  int
	Entries int
}

// Cache memoizes Find by objective mask for one fixed button list.
type Cache struct {
	buttons []button.Button
	entries map[uint32]entry
	hits    int
	misses  int
}

// NewCache returns an empty cache bound to buttons.
func NewCache(buttons []button.Button) *Cache {
	return &Cache{
		buttons: buttons,
		entries: make(map[uint32]entry),
	}
}

// Buttons returns the button list the cache was built for.
func (c *Cache) Buttons() []button.Button { return c.buttons }

// Find returns all combinations reaching objective from the all-off state,
// computing them on first request. Callers receive their own copy and may
// modify it freely.
func (c *Cache) Find(objective uint32) ([]Combination, bool) {
	if e, found := c.entries[objective]; found {
		c.hits++

		return clone(e.combos), e.ok
	}

	c.misses++
	combos, ok := Find(c.buttons, 0, 0, objective)
	c.entries[objective] = entry{combos: combos, ok: ok}

	return clone(combos), ok
}

// Stats returns the current hit/miss counters.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits, Misses: c.misses, Entries: len(c.entries)}
}
