// Package machine reads factory machine descriptions and solves both button
// puzzles for each of them.
//
// What:
//
//   - Parse / ParseAll read lines of the form
//     "[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}":
//     the light pattern (leftmost = light 0, '#' = on), one token per button,
//     and one joule count per light.
//   - Machine.Solve answers both parts for a single machine with a fresh
//     combination.Cache: the fewest presses reaching the light pattern, and the
//     fewest presses meeting the joule counts exactly.
//   - Aggregate solves many machines on a bounded worker pool and sums the
//     answers. Each worker folds its own partial totals; the partials are added
//     once all workers are done, so the result never depends on scheduling.
//
// Machines share nothing, so no locking happens while solving. A machine
// without a solution aborts the whole aggregation.
//
// Errors:
//
//   - ErrMalformedLine     missing pattern/joule delimiters, bad characters, no buttons
//   - ErrTooManyLights     more lights than button.MaxLights
//   - ErrJouleCount        joule count differs from the number of lights
//   - ErrLightOutOfRange   a button touches a light the pattern does not declare
//   - ErrUnsolvable        no press sequence satisfies one of the two parts
//   - *button.ParseError   malformed button token
package machine
