// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"iter"
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// Run returns the lazy sequence of per-repetition durations for cfg.
//
// Implementation:
//   - Stage 1: Validate cfg; an invalid config yields (0, err) once.
//   - Stage 2: build one Generator from cfg.Seed (clock-seeded when nil).
//   - Stage 3: per repetition, generate left then right, allocate the zero
//     result, time the multiply with the monotonic clock, yield the duration.
//
// Behavior highlights:
//   - Each range over the returned sequence starts again at repetition 0
//     with a fresh Generator, so a seeded config yields the same operands on
//     every pass.
//   - An error yields (0, err) and ends the sequence.
//   - Breaking out of the range loop stops the remaining repetitions.
func Run(cfg Config) iter.Seq2[time.Duration, error] {
	return func(yield func(time.Duration, error) bool) {
		if err := cfg.Validate(); err != nil {
			yield(0, err)
			return
		}
		gen, err := cfg.generator()
		if err != nil {
			yield(0, err)
			return
		}
		for rep := 0; rep < cfg.Repetitions; rep++ {
			d, err := runOnce(cfg, gen, rep)
			if err != nil {
				yield(0, fmt.Errorf("bench: repetition %d: %w", rep, err))
				return
			}
			if !yield(d, nil) {
				return
			}
		}
	}
}

// Durations runs cfg to completion and collects every duration.
func Durations(cfg Config) ([]time.Duration, error) {
	out := make([]time.Duration, 0, max(cfg.Repetitions, 0))
	for d, err := range Run(cfg) {
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}

// generator builds the random source for one pass over the repetitions.
func (c Config) generator() (*matrix.Generator, error) {
	var opts []matrix.GeneratorOption
	if c.Seed != nil {
		opts = append(opts, matrix.WithSeed(*c.Seed))
	}

	return matrix.NewGenerator(c.Low, c.High, opts...)
}

// runOnce generates fresh operands and times a single multiply. Allocation of
// operands and result happens before the clock starts.
func runOnce(cfg Config, gen *matrix.Generator, rep int) (time.Duration, error) {
	left, err := gen.Generate(cfg.Rows, cfg.Mid)
	if err != nil {
		return 0, err
	}
	right, err := gen.Generate(cfg.Mid, cfg.Cols)
	if err != nil {
		return 0, err
	}
	product, err := matrix.NewDense(cfg.Rows, cfg.Cols)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	if cfg.Sequential() {
		err = matrix.MulInto(product, left, right)
	} else {
		err = matrix.MulParallelInto(product, left, right, cfg.Workers)
	}
	elapsed := time.Since(start)
	if err != nil {
		return 0, err
	}

	if cfg.OnResult != nil {
		if err = cfg.OnResult(rep, left, right, product); err != nil {
			return 0, err
		}
	}

	return elapsed, nil
}
