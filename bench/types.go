// SPDX-License-Identifier: MIT

// Package bench: configuration, options and sentinel errors for the harness.
package bench

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matbench/matrix"
)

// Sentinel errors for harness configuration.
var (
	// ErrOptionViolation is returned by NewConfig when an invalid Option was supplied.
	ErrOptionViolation = errors.New("bench: invalid option supplied")

	// ErrInvalidRepetitions is returned when fewer than one repetition is requested.
	ErrInvalidRepetitions = errors.New("bench: repetitions must be >= 1")

	// ErrUnknownUnit is returned for a duration unit name that is not recognized.
	ErrUnknownUnit = errors.New("bench: unknown duration unit")
)

// DEFAULTS - single source of truth for zero-option behavior.
const (
	// DefaultWorkers selects the sequential multiplier.
	DefaultWorkers = 1

	// DefaultRepetitions runs a single timed trial.
	DefaultRepetitions = 1

	// DefaultUnit reports whole milliseconds, like the reference benchmark.
	DefaultUnit = Millisecond
)

// Option configures a Config via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewConfig.
type Option func(*Config)

// ResultHook observes the operands and product of one repetition after its
// timer has stopped. Returning an error aborts the run with that error.
type ResultHook func(rep int, left, right, product *matrix.Dense) error

// Config describes one benchmark: left is Rows×Mid, right is Mid×Cols.
type Config struct {
	Rows, Mid, Cols int

	// Workers is the degree of parallelism; 1 means the sequential path.
	Workers int

	// Seed, when non-nil, makes every run reproduce the same operands.
	Seed *int64

	// Repetitions is the number of timed trials per run.
	Repetitions int

	// Low and High bound the generated values (inclusive).
	Low, High matrix.Element

	// Unit is how durations are reported by callers such as the CLI.
	Unit Unit

	// OnResult, if set, is called after each timed multiply.
	OnResult ResultHook

	// internal error recorded during option parsing
	err error
}

// DefaultConfig returns a Config for the given shapes with all defaults:
// sequential, one repetition, range [-99, 99], non-deterministic seed,
// milliseconds.
func DefaultConfig(rows, mid, cols int) Config {
	return Config{
		Rows:        rows,
		Mid:         mid,
		Cols:        cols,
		Workers:     DefaultWorkers,
		Repetitions: DefaultRepetitions,
		Low:         matrix.DefaultLow,
		High:        matrix.DefaultHigh,
		Unit:        DefaultUnit,
	}
}

// NewConfig builds a validated Config from shapes and options.
//
// Errors:
//   - ErrOptionViolation when an option rejected its argument.
//   - any error from Validate.
func NewConfig(rows, mid, cols int, opts ...Option) (Config, error) {
	cfg := DefaultConfig(rows, mid, cols)
	for _, fn := range opts {
		fn(&cfg)
	}
	if cfg.err != nil {
		return Config{}, cfg.err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the configuration before any matrix is generated.
//
// Errors (first failure wins, in this order):
//   - matrix.ErrInvalidDimensions for a non-positive Rows, Mid or Cols, or
//     when an operand or the Rows×Cols product exceeds matrix.MaxCells.
//   - matrix.ErrInvalidWorkerCount for Workers < 1.
//   - ErrInvalidRepetitions for Repetitions < 1.
//   - matrix.ErrInvalidRange for Low > High.
//   - ErrUnknownUnit for an unrecognized Unit.
func (c Config) Validate() error {
	if err := matrix.ValidateShape(c.Rows, c.Mid); err != nil {
		return fmt.Errorf("bench: left %dx%d: %w", c.Rows, c.Mid, err)
	}
	if err := matrix.ValidateShape(c.Mid, c.Cols); err != nil {
		return fmt.Errorf("bench: right %dx%d: %w", c.Mid, c.Cols, err)
	}
	if err := matrix.ValidateShape(c.Rows, c.Cols); err != nil {
		return fmt.Errorf("bench: product %dx%d: %w", c.Rows, c.Cols, err)
	}
	if err := matrix.ValidateWorkerCount(c.Workers); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	if c.Repetitions < 1 {
		return fmt.Errorf("bench: got %d: %w", c.Repetitions, ErrInvalidRepetitions)
	}
	if err := matrix.ValidateRange(c.Low, c.High); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	if !c.Unit.valid() {
		return fmt.Errorf("bench: unit %d: %w", int(c.Unit), ErrUnknownUnit)
	}

	return nil
}

// Sequential reports whether the run uses the single-goroutine multiplier.
func (c Config) Sequential() bool { return c.Workers <= 1 }

// WithWorkers sets the degree of parallelism. Values above 1 select the
// partitioned multiplier.
//
//	n >= 1: use n workers
//	n < 1 : invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(c *Config) {
		if err := matrix.ValidateWorkerCount(n); err != nil {
			c.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		c.Workers = n
	}
}

// WithSeed makes runs reproducible.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		s := seed
		c.Seed = &s
	}
}

// WithRepetitions sets the number of timed trials.
//
//	n >= 1: run n trials
//	n < 1 : invalid option → ErrOptionViolation
func WithRepetitions(n int) Option {
	return func(c *Config) {
		if n < 1 {
			c.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrInvalidRepetitions, n)
			return
		}
		c.Repetitions = n
	}
}

// WithRange sets the inclusive bounds of generated values.
// low > high is an invalid option → ErrOptionViolation.
func WithRange(low, high matrix.Element) Option {
	return func(c *Config) {
		if err := matrix.ValidateRange(low, high); err != nil {
			c.err = fmt.Errorf("%w: %w", ErrOptionViolation, err)
			return
		}
		c.Low, c.High = low, high
	}
}

// WithUnit sets the reporting unit.
func WithUnit(u Unit) Option {
	return func(c *Config) {
		if !u.valid() {
			c.err = fmt.Errorf("%w: %w (%d)", ErrOptionViolation, ErrUnknownUnit, int(u))
			return
		}
		c.Unit = u
	}
}

// WithOnResult registers a hook that inspects each repetition's product.
func WithOnResult(fn ResultHook) Option {
	return func(c *Config) {
		if fn != nil {
			c.OnResult = fn
		}
	}
}
