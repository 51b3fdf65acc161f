// Package advent gathers the Advent of Code 2025 solvers and their shared
// harness.
//
// Layout:
//
//	button/      : toggle buttons of a factory machine, parsed from "(i,j,k)"
//	combination/ : every button subset reaching a light pattern, memoized per machine
//	joule/       : fewest presses meeting exact per-light toggle counts (recursive halving)
//	machine/     : machine descriptions, per-machine solving, parallel aggregation
//	harness/     : day registry, input loading and download, timing and report
//	days/        : one package per day, registered with the harness from init
//	cmd/advent/  : the command line entry point
//
// Quick start:
//
//	AOC_SESSION=... go run ./cmd/advent 10
//
// prints the two answers of day 10 and the time spent.
package advent
