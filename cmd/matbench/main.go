// SPDX-License-Identifier: MIT

// Command matbench times naive int32 matrix multiplication.
//
// It multiplies a rows×mid matrix by a mid×cols matrix of random values in
// [-99, 99], either on one goroutine or partitioned over -workers goroutines,
// and prints the elapsed time of every repetition on its own line.
//
// Usage:
//
//	matbench -rows 999 -mid 1588 -cols 777 -workers 4 -seed 13 -reps 4
//
// Exit status is 2 for invalid flags or configuration and 1 for a failed run.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/matbench/bench"
)

// Defaults mirror the dimensions used by the reference benchmark runs.
const (
	defaultRows = 999
	defaultMid  = 1588
	defaultCols = 777
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, executes the benchmark and returns the exit status.
// Durations go to stdout; diagnostics and the optional summary go to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "matbench: ", 0)

	fs := flag.NewFlagSet("matbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		rows    = fs.Int("rows", defaultRows, "rows of the left operand")
		mid     = fs.Int("mid", defaultMid, "shared dimension (left cols, right rows)")
		cols    = fs.Int("cols", defaultCols, "columns of the right operand")
		workers = fs.Int("workers", bench.DefaultWorkers, "worker goroutines; 1 runs the sequential multiplier")
		seed    = fs.Int64("seed", 0, "random seed; unset means a different stream every run")
		reps    = fs.Int("reps", bench.DefaultRepetitions, "number of timed repetitions")
		unit    = fs.String("unit", bench.DefaultUnit.String(), "reported unit: ms, us or ns")
		summary = fs.Bool("summary", false, "print min/max/mean to stderr after the run")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	u, err := bench.ParseUnit(*unit)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}
	opts := []bench.Option{
		bench.WithWorkers(*workers),
		bench.WithRepetitions(*reps),
		bench.WithUnit(u),
	}
	if flagSet(fs, "seed") {
		opts = append(opts, bench.WithSeed(*seed))
	}

	cfg, err := bench.NewConfig(*rows, *mid, *cols, opts...)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	ds, err := emit(stdout, cfg)
	if err != nil {
		logger.Print(err)
		return exitFailed
	}
	if *summary {
		logger.Print(bench.Summarize(ds).Format(cfg.Unit))
	}

	return exitOK
}

// emit prints each duration as soon as its repetition finishes and returns
// everything it printed.
func emit(w io.Writer, cfg bench.Config) ([]time.Duration, error) {
	var out []time.Duration
	for d, err := range bench.Run(cfg) {
		if err != nil {
			return out, err
		}
		if _, err = fmt.Fprintln(w, cfg.Unit.Count(d)); err != nil {
			return out, err
		}
		out = append(out, d)
	}

	return out, nil
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}
