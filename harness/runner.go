package harness

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Option configures a Runner.
type Option func(*Options)

// Options holds the Runner settings.
type Options struct {
	// Registry supplies the days; defaults to Default().
	Registry *Registry

	// Loader supplies the inputs; defaults to NewLoader("inputs", "").
	Loader *Loader

	// Workers is forwarded to every solver through Config.
	Workers int

	// Logger receives progress entries; defaults to a discarding logger.
	Logger logrus.FieldLogger

	// Output receives the report; defaults to os.Stdout.
	Output io.Writer

	// Language selects digit grouping of integer answers in the report.
	Language language.Tag
}

// DefaultOptions returns the settings used when no Option is given.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	return Options{
		Registry: Default(),
		Loader:   NewLoader("inputs", ""),
		Logger:   silent,
		Output:   os.Stdout,
		Language: language.English,
	}
}

// WithRegistry replaces the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *Options) {
		if r != nil {
			o.Registry = r
		}
	}
}

// WithLoader replaces the input loader.
func WithLoader(l *Loader) Option {
	return func(o *Options) {
		if l != nil {
			o.Loader = l
		}
	}
}

// WithWorkers sets the parallelism hint passed to solvers.
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

// WithOutput redirects the report.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

// WithLanguage selects how integer answers are grouped, e.g. 1,234,567 for
// English and 1.234.567 for German.
func WithLanguage(tag language.Tag) Option {
	return func(o *Options) {
		o.Language = tag
	}
}

// Runner solves days and reports their answers and timings.
type Runner struct {
	opts    Options
	printer *message.Printer
}

// NewRunner builds a Runner from opts.
func NewRunner(opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Loader.Logger == nil {
		l := *o.Loader
		l.Logger = o.Logger
		o.Loader = &l
	}

	return &Runner{opts: o, printer: message.NewPrinter(o.Language)}
}

// Run solves the given days in order, or every registered day when none is
// given. It stops at the first failing day.
func (r *Runner) Run(ctx context.Context, days ...int) error {
	start := time.Now()

	// 1) Resolve the day list.
	var selected []Day
	if len(days) == 0 {
		selected = r.opts.Registry.Days()
	} else {
		for _, n := range days {
			d, err := r.opts.Registry.Lookup(n)
			if err != nil {
				return err
			}
			selected = append(selected, d)
		}
	}

	// 2) Solve and report each day.
	for _, d := range selected {
		answer, elapsed, err := r.solve(ctx, d)
		if err != nil {
			return fmt.Errorf("harness: day %02d: %w", d.Number, err)
		}
		r.printer.Fprintf(r.opts.Output, "day%02d: part1: %s part2: %s in %v\n",
			d.Number, r.column(answer.Part1), r.column(answer.Part2), elapsed)
	}

	r.printer.Fprintf(r.opts.Output, "All done in %v\n", time.Since(start))

	return nil
}

// column renders v left-aligned in 20 columns, grouping digits for the
// runner's language.
func (r *Runner) column(v Value) string {
	if v.IsText() {
		return r.printer.Sprintf("%-20s", v.Text)
	}

	return r.printer.Sprintf("%-20d", v.Int)
}

// solve times one day, input loading included.
func (r *Runner) solve(ctx context.Context, d Day) (Answer, time.Duration, error) {
	start := time.Now()
	logger := r.opts.Logger.WithField("day", d.Number)

	in, err := r.opts.Loader.Open(ctx, d.Number)
	if err != nil {
		return Answer{}, 0, err
	}
	defer in.Close()

	answer, err := d.Solve(ctx, in, Config{Workers: r.opts.Workers, Logger: logger})
	elapsed := time.Since(start)
	if err != nil {
		return Answer{}, elapsed, err
	}
	logger.WithField("elapsed", elapsed).Debug("day solved")

	return answer, elapsed, nil
}
