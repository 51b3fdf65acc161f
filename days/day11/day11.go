// Package day11 counts the distinct cable paths between devices of a reactor
// rack.
//
// Devices form a directed graph ("aaa: bbb ccc" = cables aaa→bbb, aaa→ccc).
// Paths are counted by depth-first search with memoization: a vertex is White
// before its count is known, Gray while its descendants are explored and Black
// once its count is final. Reaching a Gray vertex means a cycle; that edge
// contributes no path.
//
//   - Part 1: paths from "you" to "out".
//   - Part 2: paths from "svr" to "out" via "fft" then "dac", as the product of
//     the three leg counts.
//
// Complexity: O(V + E) per PathCount call.
package day11

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ccalmels/advent-2025/harness"
)

// Visitation states of PathCount.
const (
	White = iota // not visited yet
	Gray         // on the current DFS stack
	Black        // path count final
)

// ErrMalformedLine indicates a line that is not "name: out1 out2 ...".
var ErrMalformedLine = errors.New("day11: malformed device line")

func init() {
	harness.MustRegister(harness.Day{Number: 11, Solve: Solve})
}

// Rack maps a device to the devices its outputs are wired to.
type Rack map[string][]string

// Parse reads one device per non-blank line.
func Parse(input io.Reader) (Rack, error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("day11: Parse: %w", err)
	}

	rack := make(Rack)
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, outputs, ok := strings.Cut(line, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || strings.ContainsAny(name, " \t") {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, i+1, line)
		}
		rack[name] = append(rack[name], strings.Fields(outputs)...)
	}

	return rack, nil
}

// pathCounter holds the DFS state of one PathCount call.
type pathCounter struct {
	ctx    context.Context
	rack   Rack
	target string
	state  map[string]int
	paths  map[string]int
}

// PathCount returns the number of distinct paths from→to.
// A dead-end device other than to contributes no path.
func PathCount(ctx context.Context, rack Rack, from, to string) (int, error) {
	pc := &pathCounter{
		ctx:    ctx,
		rack:   rack,
		target: to,
		state:  make(map[string]int),
		paths:  make(map[string]int),
	}

	return pc.visit(from)
}

// visit returns the number of paths from id to the target.
func (pc *pathCounter) visit(id string) (int, error) {
	// 1. Cancellation check at entry.
	if err := pc.ctx.Err(); err != nil {
		return 0, err
	}

	// 2. Known or in progress.
	switch pc.state[id] {
	case Black:
		return pc.paths[id], nil
	case Gray:
		return 0, nil
	}

	// 3. Explore outputs; the target itself ends every path.
	pc.state[id] = Gray
	total := 0
	if id == pc.target {
		total = 1
	} else {
		for _, next := range pc.rack[id] {
			n, err := pc.visit(next)
			if err != nil {
				return 0, err
			}
			total += n
		}
	}

	// 4. Finalize.
	pc.state[id] = Black
	pc.paths[id] = total

	return total, nil
}

// Solve answers both parts.
func Solve(ctx context.Context, input io.Reader, _ harness.Config) (harness.Answer, error) {
	rack, err := Parse(input)
	if err != nil {
		return harness.Answer{}, err
	}

	part1, err := PathCount(ctx, rack, "you", "out")
	if err != nil {
		return harness.Answer{}, err
	}

	route := []string{"svr", "fft", "dac", "out"}
	legs := make([]int, 0, len(route)-1)
	for i := 0; i+1 < len(route); i++ {
		n, err := PathCount(ctx, rack, route[i], route[i+1])
		if err != nil {
			return harness.Answer{}, err
		}
		legs = append(legs, n)
	}

	return harness.Answers(part1, harness.Product(legs...)), nil
}
