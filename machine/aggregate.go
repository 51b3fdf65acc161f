package machine

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Option configures Aggregate.
type Option func(*Options)

// Options holds the settings of Aggregate.
type Options struct {
	// Workers bounds the number of machines solved at once.
	// Values below 1 fall back to 1. Default is runtime.NumCPU().
	Workers int

	// Logger receives per-machine debug entries. Default discards everything.
	Logger logrus.FieldLogger
}

// DefaultOptions returns one worker per CPU and a silent logger.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Workers: runtime.NumCPU(),
		Logger:  silent,
	}
}

// WithWorkers sets the worker pool size.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithLogger installs a logger. A nil logger keeps the default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Aggregate solves every machine and returns the summed answers.
//
// Workers pull machine indices from a shared queue, so long machines do not
// stall a fixed partition. The first failing machine cancels the queue and
// its error is returned; no partial totals are reported.
func Aggregate(ctx context.Context, machines []Machine, opts ...Option) (Totals, error) {
	// 1) Resolve options.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	workers := max(1, min(o.Workers, len(machines)))

	// 2) Feed indices until done or cancelled.
	g, gctx := errgroup.WithContext(ctx)
	queue := make(chan int)
	g.Go(func() error {
		defer close(queue)
		for i := range machines {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case queue <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}

		return nil
	})

	// 3) Each worker folds into its own slot; nothing is shared while solving.
	partials := make([]Totals, workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range queue {
				r, stats, err := machines[i].solve()
				if err != nil {
					return fmt.Errorf("machine: Aggregate: machine %d: %w", i, err)
				}
				partials[w].Add(r)
				o.Logger.WithFields(logrus.Fields{
					"machine":       i,
					"worker":        w,
					"presses":       r.Presses,
					"joule_presses": r.JoulePresses,
					"cache_hits":    stats.Hits,
					"cache_misses":  stats.Misses,
				}).Debug("machine solved")
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Totals{}, err
	}

	// 4) Combine partials; addition makes the order irrelevant.
	var total Totals
	for _, p := range partials {
		total.Merge(p)
	}

	return total, nil
}
