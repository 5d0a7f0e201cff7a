package bench_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matbench/bench"
)

func TestSummarize(t *testing.T) {
	s := bench.Summarize([]time.Duration{
		12 * time.Millisecond,
		10 * time.Millisecond,
		14 * time.Millisecond,
	})
	assert.Equal(t, 3, s.N)
	assert.Equal(t, 10*time.Millisecond, s.Min)
	assert.Equal(t, 14*time.Millisecond, s.Max)
	assert.Equal(t, 12*time.Millisecond, s.Mean)
	assert.Equal(t, "n=3 min=10 max=14 mean=12 (ms)", s.Format(bench.Millisecond))
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, bench.Summary{}, bench.Summarize(nil))
}
