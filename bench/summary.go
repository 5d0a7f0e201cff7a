// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"time"
)

// Summary aggregates the durations of one run.
type Summary struct {
	N    int
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
}

// Summarize computes count, min, max and mean of ds.
// An empty slice yields the zero Summary.
func Summarize(ds []time.Duration) Summary {
	if len(ds) == 0 {
		return Summary{}
	}
	s := Summary{N: len(ds), Min: ds[0], Max: ds[0]}
	var total time.Duration
	for _, d := range ds {
		s.Min = min(s.Min, d)
		s.Max = max(s.Max, d)
		total += d
	}
	s.Mean = total / time.Duration(len(ds))

	return s
}

// Format renders the summary in unit u, e.g. "n=5 min=10 max=14 mean=12 (ms)".
func (s Summary) Format(u Unit) string {
	return fmt.Sprintf("n=%d min=%d max=%d mean=%d (%s)",
		s.N, u.Count(s.Min), u.Count(s.Max), u.Count(s.Mean), u)
}
