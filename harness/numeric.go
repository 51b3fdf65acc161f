package harness

import (
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds xs.
func Sum[T Number](xs ...T) T {
	var s T
	for _, x := range xs {
		s += x
	}

	return s
}

// Product multiplies xs; the empty product is 1.
func Product[T Number](xs ...T) T {
	p := T(1)
	for _, x := range xs {
		p *= x
	}

	return p
}

// Answers builds an Answer from two integers.
func Answers[T constraints.Integer](part1, part2 T) Answer {
	return Answer{Part1: Int(part1), Part2: Int(part2)}
}

// Int wraps an integer answer. Unsigned values beyond the int64 range are
// kept as text.
func Int[T constraints.Integer](v T) Value {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return Value{Text: strconv.FormatUint(uint64(v), 10)}
	}

	return Value{Int: int64(v)}
}

// Text wraps a non-numeric answer.
func Text(s string) Value {
	return Value{Text: s}
}
