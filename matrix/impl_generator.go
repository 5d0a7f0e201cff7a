// SPDX-License-Identifier: MIT

// Package matrix - random matrix generator.
//
// Purpose:
//   - Produce matrices whose cells are independent uniform samples over an
//     inclusive [low, high] range.
//   - Make reproducible benchmark runs possible: with a seed, the content is a
//     pure function of (rows, cols, low, high, seed) and the row-major fill order.
//
// Determinism:
//   - Cells are drawn row by row, left to right. Two matrices generated in
//     sequence from one Generator consume one stream, so the second depends
//     on the size of the first.

package matrix

import "math/rand"

// Defaults for the sampling range, mirroring the reference workload.
const (
	// DefaultLow is the smallest value drawn when no range is configured.
	DefaultLow Element = -99

	// DefaultHigh is the largest value drawn when no range is configured.
	DefaultHigh Element = 99
)

const opGenerate = "Generate"

// Generator fills matrices from an owned random stream.
// It is not safe for concurrent use.
type Generator struct {
	low, high Element
	rng       *rand.Rand
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	seed    int64
	seeded  bool
	source  rand.Source
	sourced bool
}

// WithSeed makes the generator deterministic: every Generator built with the
// same seed and range yields the same sequence of matrices.
func WithSeed(seed int64) GeneratorOption {
	return func(o *generatorOptions) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSource hands the generator an explicit random source. It takes
// precedence over WithSeed. A nil source is ignored.
func WithSource(src rand.Source) GeneratorOption {
	return func(o *generatorOptions) {
		if src != nil {
			o.source = src
			o.sourced = true
		}
	}
}

// NewGenerator returns a Generator drawing from [low, high].
//
// Implementation:
//   - Stage 1: ValidateRange(low, high); low > high is ErrInvalidRange.
//   - Stage 2: resolve the random stream: explicit source, else seed, else wall clock.
func NewGenerator(low, high Element, opts ...GeneratorOption) (*Generator, error) {
	if err := ValidateRange(low, high); err != nil {
		return nil, matrixErrorf("NewGenerator", err)
	}

	var o generatorOptions
	for _, fn := range opts {
		fn(&o)
	}

	var r *rand.Rand
	switch {
	case o.sourced:
		r = rand.New(o.source)
	case o.seeded:
		r = rngFromSeed(o.seed)
	default:
		r = rngFromClock()
	}

	return &Generator{low: low, high: high, rng: r}, nil
}

// Range returns the inclusive sampling bounds.
func (g *Generator) Range() (low, high Element) { return g.low, g.high }

// Generate returns a fresh rows×cols matrix filled row-major with uniform samples.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is non-positive.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (g *Generator) Generate(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opGenerate, err)
	}
	m.Apply(func(_, _ int, _ Element) Element {
		return uniformInclusive(g.rng, g.low, g.high)
	})

	return m, nil
}

// Generate is the one-shot form: build a Generator for [low, high] and draw a
// single rows×cols matrix. A nil seed selects a non-deterministic stream.
func Generate(rows, cols int, low, high Element, seed *int64) (*Dense, error) {
	var opts []GeneratorOption
	if seed != nil {
		opts = append(opts, WithSeed(*seed))
	}
	g, err := NewGenerator(low, high, opts...)
	if err != nil {
		return nil, err
	}

	return g.Generate(rows, cols)
}
