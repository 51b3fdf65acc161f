// Package button models the toggle buttons of a factory machine.
//
// What:
//
//   - A Button flips a fixed subset of the machine's indicator lights.
//   - The subset is kept twice: as a bitmask (bit i = light i) for XOR folding,
//     and as the ordered list of light indices for per-light counting.
//   - Parse reads the textual form "(i,j,k)" found on machine description lines.
//
// Light indices live in [0, MaxLights-1]; a machine never has more lights than
// fit in one uint32.
//
// Errors:
//
//   - ErrMissingParens  token is not enclosed in "(" and ")"
//   - ErrInvalidIndex   an entry between commas is empty, not decimal, or ≥ MaxLights
//   - ErrDuplicateIndex the same light is listed twice
//
// All are reported through *ParseError, which carries the offending token and
// byte offset; use errors.Is / errors.As to inspect them.
package button
