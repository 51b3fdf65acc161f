// Package day08 wires junction boxes into circuits, shortest cables first.
//
// Every pair of boxes is a candidate cable weighted by squared euclidean
// distance. Cables are taken in ascending order and merged with a disjoint-set
// forest (path compression, union by rank), as in Kruskal's algorithm.
//
//   - Part 1: after the first Pairs cables, the product of the three largest
//     circuit sizes.
//   - Part 2: the product of the X coordinates of the two boxes joined by the
//     cable that finally leaves a single circuit.
//
// Complexity: O(n² log n) for sorting the n(n-1)/2 candidate cables.
package day08

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ccalmels/advent-2025/harness"
)

// Pairs is the number of cables considered for part 1.
const Pairs = 1000

var (
	// ErrMalformedJunction indicates a line that is not "x,y,z".
	ErrMalformedJunction = errors.New("day08: malformed junction")

	// ErrTooFewJunctions indicates fewer than two boxes to connect.
	ErrTooFewJunctions = errors.New("day08: need at least two junctions")
)

func init() {
	harness.MustRegister(harness.Day{Number: 8, Solve: Solve})
}

// Junction is a box position.
type Junction struct {
	X, Y, Z int64
}

// SquareDistance returns the squared euclidean distance to o.
func (j Junction) SquareDistance(o Junction) int64 {
	dx, dy, dz := o.X-j.X, o.Y-j.Y, o.Z-j.Z

	return dx*dx + dy*dy + dz*dz
}

// ParseJunction reads "x,y,z"; spaces around numbers are allowed.
func ParseJunction(s string) (Junction, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Junction{}, fmt.Errorf("%w: %q", ErrMalformedJunction, s)
	}

	var coords [3]int64
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return Junction{}, fmt.Errorf("%w: %q: %v", ErrMalformedJunction, s, err)
		}
		coords[i] = v
	}

	return Junction{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Solve reads one junction per line.
func Solve(_ context.Context, input io.Reader, _ harness.Config) (harness.Answer, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return harness.Answer{}, fmt.Errorf("day08: Solve: %w", err)
	}

	var junctions []Junction
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		j, err := ParseJunction(line)
		if err != nil {
			return harness.Answer{}, err
		}
		junctions = append(junctions, j)
	}

	p1, p2, err := Resolve(junctions, Pairs)
	if err != nil {
		return harness.Answer{}, err
	}

	return harness.Answers(p1, p2), nil
}

// cable is a candidate connection between junctions a and b.
type cable struct {
	dist int64
	a, b int
}

// Resolve computes both answers, considering the first pairs cables for part 1.
func Resolve(junctions []Junction, pairs int) (int64, int64, error) {
	// 1) Validate.
	n := len(junctions)
	if n < 2 {
		return 0, 0, ErrTooFewJunctions
	}

	// 2) Enumerate every pair, then sort by distance (stable for equal lengths).
	cables := make([]cable, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			cables = append(cables, cable{dist: junctions[i].SquareDistance(junctions[j]), a: i, b: j})
		}
	}
	sort.SliceStable(cables, func(i, j int) bool { return cables[i].dist < cables[j].dist })

	// 3) Merge circuits shortest cable first.
	var (
		forest     = newForest(n)
		part1      int64
		part2      int64
		part1Known bool
	)
	for k, c := range cables {
		if forest.union(c.a, c.b) && forest.count == 1 {
			part2 = junctions[c.a].X * junctions[c.b].X
			if !part1Known {
				part1, part1Known = forest.largestProduct(3), true
			}
			break
		}
		if k == pairs-1 {
			part1, part1Known = forest.largestProduct(3), true
		}
	}

	return part1, part2, nil
}

// forest is a disjoint-set over junction indices.
type forest struct {
	parent []int
	rank   []int
	size   []int
	count  int
}

func newForest(n int) *forest {
	f := &forest{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f
}

// find walks to the root, halving the path on the way.
func (f *forest) find(u int) int {
	for f.parent[u] != u {
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}

	return u
}

// union merges the circuits of u and v and reports whether they were distinct.
func (f *forest) union(u, v int) bool {
	ru, rv := f.find(u), f.find(v)
	if ru == rv {
		return false
	}
	// Attach the lower-rank tree under the higher-rank root.
	if f.rank[ru] < f.rank[rv] {
		ru, rv = rv, ru
	}
	f.parent[rv] = ru
	f.size[ru] += f.size[rv]
	if f.rank[ru] == f.rank[rv] {
		f.rank[ru]++
	}
	f.count--

	return true
}

// largestProduct multiplies the sizes of the k largest circuits.
func (f *forest) largestProduct(k int) int64 {
	var sizes []int64
	for i, p := range f.parent {
		if p == i {
			sizes = append(sizes, int64(f.size[i]))
		}
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] > sizes[j] })

	return harness.Product(sizes[:min(k, len(sizes))]...)
}
