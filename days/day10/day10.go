// Package day10 plugs the factory machine solver into the harness: part 1 is
// the fewest presses lighting every machine's pattern, part 2 the fewest
// presses meeting every joule count.
package day10

import (
	"context"
	"io"

	"github.com/ccalmels/advent-2025/harness"
	"github.com/ccalmels/advent-2025/machine"
)

func init() {
	harness.MustRegister(harness.Day{Number: 10, Solve: Solve})
}

// Solve parses all machines and aggregates both answers in parallel.
func Solve(ctx context.Context, input io.Reader, cfg harness.Config) (harness.Answer, error) {
	machines, err := machine.ParseAll(input)
	if err != nil {
		return harness.Answer{}, err
	}

	opts := []machine.Option{machine.WithLogger(cfg.Logger)}
	if cfg.Workers > 0 {
		opts = append(opts, machine.WithWorkers(cfg.Workers))
	}
	total, err := machine.Aggregate(ctx, machines, opts...)
	if err != nil {
		return harness.Answer{}, err
	}

	return harness.Answers(total.Presses, total.JoulePresses), nil
}
