package button

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxLights is the number of lights a single bitmask can describe.
const MaxLights = 32

var (
	// ErrMissingParens indicates a button token not wrapped in parentheses.
	ErrMissingParens = errors.New("button: missing enclosing parentheses")

	// ErrInvalidIndex indicates an entry that is not a light index in [0, MaxLights).
	ErrInvalidIndex = errors.New("button: invalid light index")

	// ErrDuplicateIndex indicates a light listed twice in the same button.
	ErrDuplicateIndex = errors.New("button: duplicate light index")
)

// ParseError describes why a button token could not be parsed.
type ParseError struct {
	// Token is the full text handed to Parse.
	Token string

	// Offset is the byte offset in Token where parsing failed.
	Offset int

	// Err is the underlying sentinel.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%v in %q at offset %d", e.Err, e.Token, e.Offset)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Button toggles every light whose bit is set in Mask.
// LEDs lists the same lights in declaration order.
type Button struct {
	Mask uint32
	LEDs []int
}

// Parse converts a token such as "(1,3)" into a Button.
// Lights may be declared in any order but only once each. "()" is a button
// wired to no light.
//
// Complexity: O(len(token)).
func Parse(token string) (Button, error) {
	// 1) Require the enclosing parentheses.
	if len(token) < 2 || token[0] != '(' || token[len(token)-1] != ')' {
		return Button{}, &ParseError{Token: token, Offset: 0, Err: ErrMissingParens}
	}

	// 2) An empty body toggles nothing.
	var (
		b      Button
		body   = token[1 : len(token)-1]
		offset = 1
	)
	if body == "" {
		return b, nil
	}

	// 3) Walk the comma-separated entries, tracking each entry's offset.
	for _, entry := range strings.Split(body, ",") {
		idx, ok := lightIndex(entry)
		if !ok {
			return Button{}, &ParseError{Token: token, Offset: offset, Err: ErrInvalidIndex}
		}
		if b.Mask&(1<<idx) != 0 {
			return Button{}, &ParseError{Token: token, Offset: offset, Err: ErrDuplicateIndex}
		}
		b.LEDs = append(b.LEDs, idx)
		b.Mask |= 1 << idx
		offset += len(entry) + 1
	}

	return b, nil
}

// lightIndex accepts plain decimal digits only (no sign, no spaces).
func lightIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n >= MaxLights {
		return 0, false
	}

	return n, true
}

// MustParse is like Parse but panics on error. Intended for tests and fixtures.
func MustParse(token string) Button {
	b, err := Parse(token)
	if err != nil {
		panic(err)
	}

	return b
}

// ParseAll parses every token, stopping at the first failure.
// The returned error names the position of the failing token.
func ParseAll(tokens []string) ([]Button, error) {
	buttons := make([]Button, 0, len(tokens))
	for i, tok := range tokens {
		b, err := Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("button: ParseAll: token %d: %w", i, err)
		}
		buttons = append(buttons, b)
	}

	return buttons, nil
}

// Toggles reports whether pressing b flips the given light.
func (b Button) Toggles(light int) bool {
	if light < 0 || light >= MaxLights {
		return false
	}

	return b.Mask&(1<<light) != 0
}

// String renders b back into its "(i,j)" form.
func (b Button) String() string {
	parts := make([]string, len(b.LEDs))
	for i, led := range b.LEDs {
		parts[i] = strconv.Itoa(led)
	}

	return "(" + strings.Join(parts, ",") + ")"
}
