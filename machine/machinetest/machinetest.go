// Package machinetest provides random machine generators for tests and
// benchmarks.
package machinetest

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/ccalmels/advent-2025/machine"
)

// Random builds n solvable machines: targets and joules are produced by
// pressing random buttons. Each has 3 to 8 lights and 3 to 7 buttons, and
// every button is pressed at most 19 times.
func Random(r *rand.Rand, n int) []machine.Machine {
	var lines []string
	for k := 0; k < n; k++ {
		lights := 3 + r.Intn(6)
		buttons := make([][]int, 3+r.Intn(5))
		for i := range buttons {
			perm := r.Perm(lights)
			buttons[i] = perm[:1+r.Intn(lights)]
		}

		target := make([]byte, lights)
		joules := make([]int, lights)
		for i := range target {
			target[i] = '.'
		}
		for _, b := range buttons {
			if r.Intn(2) == 0 {
				for _, l := range b {
					if target[l] == '.' {
						target[l] = '#'
					} else {
						target[l] = '.'
					}
				}
			}
			presses := r.Intn(20)
			for _, l := range b {
				joules[l] += presses
			}
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "[%s]", target)
		for _, b := range buttons {
			sb.WriteString(" (")
			for i, l := range b {
				if i > 0 {
					sb.WriteByte(',')
				}
				fmt.Fprint(&sb, l)
			}
			sb.WriteByte(')')
		}
		sb.WriteString(" {")
		for i, j := range joules {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprint(&sb, j)
		}
		sb.WriteByte('}')
		lines = append(lines, sb.String())
	}

	machines, err := machine.ParseAll(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		panic(fmt.Sprintf("machinetest: generated machines do not parse: %v", err))
	}

	return machines
}
