package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidDay indicates a day number outside 1..25.
	ErrInvalidDay = errors.New("harness: invalid day number")

	// ErrDuplicateDay indicates a second solver for an already registered day.
	ErrDuplicateDay = errors.New("harness: day already registered")

	// ErrUnknownDay indicates a requested day without a solver.
	ErrUnknownDay = errors.New("harness: unknown day")
)

// Answer holds the answers of both parts.
type Answer struct {
	Part1 Value
	Part2 Value
}

// Value is one part's answer: an integer, or free text when Text is set.
// Integers are formatted by the runner for its language.
type Value struct {
	Int  int64
	Text string
}

// IsText reports whether v carries a free-text answer.
func (v Value) IsText() bool {
	return v.Text != ""
}

// String renders v without locale formatting.
func (v Value) String() string {
	if v.IsText() {
		return v.Text
	}

	return strconv.FormatInt(v.Int, 10)
}

// Config is handed to every solver.
type Config struct {
	// Workers bounds the parallelism a solver may use; 0 means "pick for me".
	Workers int

	// Logger is scoped to the running day.
	Logger logrus.FieldLogger
}

// SolveFunc computes both answers from the day's input.
type SolveFunc func(ctx context.Context, input io.Reader, cfg Config) (Answer, error)

// Day binds a day number to its solver.
type Day struct {
	Number int
	Solve  SolveFunc
}

// Registry is a concurrency-safe set of days keyed by number.
type Registry struct {
	mu   sync.RWMutex
	days map[int]Day
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int]Day)}
}

// Register adds d, rejecting invalid numbers, nil solvers and duplicates.
func (r *Registry) Register(d Day) error {
	if d.Number < 1 || d.Number > 25 {
		return fmt.Errorf("%w: %d", ErrInvalidDay, d.Number)
	}
	if d.Solve == nil {
		return fmt.Errorf("harness: Register: day %d has no solver", d.Number)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.days[d.Number]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, d.Number)
	}
	r.days[d.Number] = d

	return nil
}

// Lookup returns the solver registered for number.
func (r *Registry) Lookup(number int) (Day, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.days[number]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, number)
	}

	return d, nil
}

// Days lists every registered day in ascending order.
func (r *Registry) Days() []Day {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })

	return out
}

// defaultRegistry collects the days registered from init functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// MustRegister adds d to the default registry and panics on error.
func MustRegister(d Day) {
	if err := defaultRegistry.Register(d); err != nil {
		panic(err)
	}
}
