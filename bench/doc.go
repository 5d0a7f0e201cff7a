// Package bench times the naive matrix multiplication kernels.
//
// A benchmark is described by a Config (operand shapes, worker count,
// optional seed, repetitions) built with NewConfig and functional options.
// Run turns a Config into a lazy sequence of wall-clock durations, one per
// repetition. Every repetition generates fresh operands, allocates the
// result, and then times only the multiply call:
//
//	cfg, err := bench.NewConfig(999, 1588, 777,
//	  bench.WithWorkers(4),
//	  bench.WithSeed(13),
//	  bench.WithRepetitions(5),
//	)
//	if err != nil {
//	  // handle ErrOptionViolation or a matrix sentinel
//	}
//	for d, err := range bench.Run(cfg) {
//	  if err != nil {
//	    break
//	  }
//	  fmt.Println(cfg.Unit.Count(d))
//	}
//
// Workers <= 1 selects matrix.MulInto; anything larger selects
// matrix.MulParallelInto with that many goroutines. Nothing is shared
// between repetitions except the seeded random stream.
package bench
