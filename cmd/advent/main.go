// Command advent runs the registered puzzle solvers and prints their answers
// and timings.
//
// Usage:
//
//	advent [-n threads] [-s session] [-inputs dir] [-v] [-lang tag] [-profile cpu|mem] [day...]
//
// Without day arguments every registered day runs in ascending order. Missing
// inputs are downloaded when a session is given with -s or AOC_SESSION.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/ccalmels/advent-2025/harness"

	_ "github.com/ccalmels/advent-2025/days/day08"
	_ "github.com/ccalmels/advent-2025/days/day10"
	_ "github.com/ccalmels/advent-2025/days/day11"
)

var log = logrus.New()

func main() {
	os.Exit(run())
}

// run holds the program so deferred profile writers complete before exit.
func run() int {
	var (
		threads  int
		session  string
		inputs   string
		verbose  bool
		profMode string
		lang     string
	)
	flag.IntVar(&threads, "n", 0, "limit the number of worker goroutines (0 = one per CPU)")
	flag.IntVar(&threads, "nthreads", 0, "same as -n")
	flag.StringVar(&session, "s", "", "Advent of Code session ID for automatic downloading of inputs")
	flag.StringVar(&session, "session", "", "same as -s")
	flag.StringVar(&inputs, "inputs", "inputs", "directory holding the NN.txt inputs")
	flag.BoolVar(&verbose, "v", false, "enable debug logging")
	flag.StringVar(&lang, "lang", "en", "BCP 47 language used to group digits of the answers")
	flag.StringVar(&profMode, "profile", "", "write a cpu or mem profile to the current directory")
	flag.Parse()

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	switch profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		log.Errorf("unknown profile mode %q", profMode)
		return 2
	}

	if session == "" {
		session = os.Getenv("AOC_SESSION")
	}

	tag, err := language.Parse(lang)
	if err != nil {
		log.WithError(err).Errorf("invalid language %q", lang)
		return 2
	}

	days, err := parseDays(flag.Args())
	if err != nil {
		log.Error(err)
		return 2
	}

	runner := harness.NewRunner(
		harness.WithLoader(harness.NewLoader(inputs, session)),
		harness.WithWorkers(threads),
		harness.WithLogger(log),
		harness.WithLanguage(tag),
	)
	if err = runner.Run(context.Background(), days...); err != nil {
		log.WithError(err).Error("run failed")
		return 1
	}

	return 0
}

// parseDays converts the positional arguments to day numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", a, err)
		}
		days = append(days, n)
	}

	return days, nil
}
