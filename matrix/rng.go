// SPDX-License-Identifier: MIT

// Package matrix - RNG utilities for the random matrix generator.
//
// Goals:
//   - Determinism: same seed ⇒ identical sample stream across runs.
//   - Encapsulation: a single RNG factory; every Generator owns its *rand.Rand,
//     there is no package-level generator state.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Generator must not be shared
//     across goroutines; build one per goroutine instead.
package matrix

import (
	"math/rand"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand seeded verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rngFromClock returns a *rand.Rand seeded from the wall clock.
// Used when the caller asks for no reproducibility.
func rngFromClock() *rand.Rand {
	return rngFromSeed(time.Now().UnixNano())
}

// uniformInclusive draws one sample from the inclusive range [low, high].
// The span is computed in int64 so the full Element range is legal
// (high-low+1 can reach 2^32).
//
// Complexity: O(1).
func uniformInclusive(r *rand.Rand, low, high Element) Element {
	span := int64(high) - int64(low) + 1

	return Element(int64(low) + r.Int63n(span))
}
