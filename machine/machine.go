package machine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ccalmels/advent-2025/button"
)

var (
	// ErrMalformedLine indicates a description line that does not follow the
	// "[pattern] (buttons...) {joules}" layout.
	ErrMalformedLine = errors.New("machine: malformed description line")

	// ErrTooManyLights indicates a pattern wider than button.MaxLights.
	ErrTooManyLights = errors.New("machine: too many lights")

	// ErrJouleCount indicates a joule vector whose length differs from the light count.
	ErrJouleCount = errors.New("machine: joule count does not match light count")

	// ErrLightOutOfRange indicates a button wired to an undeclared light.
	ErrLightOutOfRange = errors.New("machine: button touches undeclared light")
)

// Machine is one independent puzzle instance.
type Machine struct {
	// Lights is the number of indicator lights.
	Lights int

	// Target is the light pattern to reach from all-off (bit i = light i).
	Target uint32

	// Buttons are the machine's toggle buttons, in input order.
	Buttons []button.Button

	// Joules holds the exact toggle count required for every light.
	Joules []int
}

// Parse reads one machine description line.
func Parse(line string) (Machine, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Machine{}, fmt.Errorf("%w: want pattern, buttons and joules, got %d fields", ErrMalformedLine, len(fields))
	}

	var (
		m   Machine
		err error
	)

	// 1) Light pattern.
	if m.Lights, m.Target, err = parsePattern(fields[0]); err != nil {
		return Machine{}, err
	}

	// 2) Buttons, each restricted to the declared lights.
	if m.Buttons, err = button.ParseAll(fields[1 : len(fields)-1]); err != nil {
		return Machine{}, fmt.Errorf("machine: Parse: %w", err)
	}
	for i, b := range m.Buttons {
		if b.Mask>>m.Lights != 0 {
			return Machine{}, fmt.Errorf("%w: button %d %v with %d lights", ErrLightOutOfRange, i, b, m.Lights)
		}
	}

	// 3) Joule vector.
	if m.Joules, err = parseJoules(fields[len(fields)-1]); err != nil {
		return Machine{}, err
	}
	if len(m.Joules) != m.Lights {
		return Machine{}, fmt.Errorf("%w: %d joules for %d lights", ErrJouleCount, len(m.Joules), m.Lights)
	}

	return m, nil
}

// parsePattern decodes "[.##.]" with the leftmost character as light 0.
func parsePattern(s string) (int, uint32, error) {
	if len(s) < 3 || s[0] != '[' || s[len(s)-1] != ']' {
		return 0, 0, fmt.Errorf("%w: light pattern %q", ErrMalformedLine, s)
	}
	body := s[1 : len(s)-1]
	if len(body) > button.MaxLights {
		return 0, 0, fmt.Errorf("%w: %d", ErrTooManyLights, len(body))
	}

	var target uint32
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '#':
			target |= 1 << i
		case '.':
		default:
			return 0, 0, fmt.Errorf("%w: light pattern %q has %q", ErrMalformedLine, s, body[i])
		}
	}

	return len(body), target, nil
}

// parseJoules decodes "{3,5,4,7}".
func parseJoules(s string) ([]int, error) {
	if len(s) < 3 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, fmt.Errorf("%w: joules %q", ErrMalformedLine, s)
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	joules := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: joule %d in %q: %v", ErrMalformedLine, i, s, err)
		}
		joules[i] = int(n)
	}

	return joules, nil
}

// ParseAll reads one machine per non-blank line of r.
func ParseAll(r io.Reader) ([]Machine, error) {
	var (
		machines []Machine
		scanner  = bufio.NewScanner(r)
		lineNo   int
	)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		m, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("machine: line %d: %w", lineNo, err)
		}
		machines = append(machines, m)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("machine: ParseAll: %w", err)
	}

	return machines, nil
}

// String renders m back into its description line.
func (m Machine) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i := 0; i < m.Lights; i++ {
		if m.Target&(1<<i) != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte(']')

	for _, b := range m.Buttons {
		sb.WriteByte(' ')
		sb.WriteString(b.String())
	}

	sb.WriteString(" {")
	for i, j := range m.Joules {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(j))
	}
	sb.WriteByte('}')

	return sb.String()
}
