// SPDX-License-Identifier: MIT

// Package matbench is a benchmark for naive dense matrix multiplication.
//
// It measures how long the textbook triple loop takes to multiply two int32
// matrices, either on one goroutine or with the output cells split into
// contiguous partitions, one goroutine per partition.
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/        - Dense container, seeded generator, sequential and partitioned multipliers
//	bench/         - harness: Config + options, lazy duration sequence, units, summaries
//	cmd/matbench/  - command-line front end printing one duration per line
//
//	go run github.com/katalvlaran/matbench/cmd/matbench -workers 4 -seed 13 -reps 4
package matbench
