// Package harness runs daily puzzle solvers: it keeps the registry of days,
// finds or downloads each day's input, times the solver and prints a report.
//
// Days register themselves from an init function:
//
//	func init() {
//		harness.MustRegister(harness.Day{Number: 10, Solve: Solve})
//	}
//
// and the binary selects them by blank-importing their packages.
//
// Inputs are read from <dir>/NN.txt. When the file is missing and a session
// cookie is configured, it is fetched from adventofcode.com and stored there
// for the next run.
//
// The report prints one line per day and a closing "All done in" line.
// Integer answers are grouped for the runner's language (WithLanguage).
//
// Errors:
//
//   - ErrInvalidDay    day number outside 1..25
//   - ErrDuplicateDay  the same day registered twice
//   - ErrUnknownDay    requested day has no solver
//   - ErrNoSession     input missing and no session to download it
//   - ErrDownload      the input server answered with a non-200 status
package harness
