package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPrintsOneLinePerRepetition(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-rows", "8", "-mid", "6", "-cols", "5", "-workers", "3", "-seed", "13", "-reps", "4", "-unit", "us"},
		&stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	for _, l := range lines {
		n, err := strconv.ParseInt(l, 10, 64)
		require.NoError(t, err, l)
		require.GreaterOrEqual(t, n, int64(0))
	}
	require.Empty(t, stderr.String())
}

func TestRunSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-rows", "3", "-mid", "3", "-cols", "3", "-reps", "2", "-summary"}, &stdout, &stderr)
	require.Equal(t, exitOK, code)
	require.Contains(t, stderr.String(), "matbench: n=2 ")
	require.Contains(t, stderr.String(), "(ms)")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero workers", []string{"-rows", "2", "-mid", "2", "-cols", "2", "-workers", "0"}, "worker count"},
		{"zero reps", []string{"-rows", "2", "-mid", "2", "-cols", "2", "-reps", "0"}, "invalid option"},
		{"bad unit", []string{"-unit", "h"}, "unknown duration unit"},
		{"bad shape", []string{"-rows", "0"}, "invalid dimensions"},
		{"oversized shape", []string{"-rows", "1048576", "-mid", "1048576", "-cols", "1"}, "exceeds"},
		{"oversized product", []string{"-rows", "1048576", "-mid", "1", "-cols", "1048576"}, "exceeds"},
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			require.Equal(t, exitUsage, run(tc.args, &stdout, &stderr))
			require.Contains(t, stderr.String(), tc.want)
			require.Empty(t, stdout.String())
		})
	}
}
