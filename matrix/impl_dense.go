// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own the backing storage exclusively; constructors copy caller data.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewFromRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxFromRows = "NewFromRows" // ctor tag for row-data construction
)

// ---------- Formatting literals ----------
const (
	_fmtShapeSep = "x"
	_fmtCellSep  = ","
	_fmtLineEnd  = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result reads "Dense.<method>(row,col): <sentinel>" and preserves the
// sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of Element values.
//   - r,c hold dimensions (rows, cols), both >= 1 for every public constructor.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []Element // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the zero-filled buffer (make zero-fills deterministically).
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateShape(rows, cols); err != nil {
		return nil, err
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]Element, rows*cols),
	}, nil
}

// NewFromRows builds a Dense from row data, copying every value.
//
// Implementation:
//   - Stage 1: reject zero rows (ErrEmptyMatrix).
//   - Stage 2: take cols from the first row; an empty first row or any row of a
//     different length is ErrShapeMismatch.
//   - Stage 3: copy rows into a fresh flat buffer.
//
// The caller keeps ownership of rows; later mutations of rows do not reach
// the returned matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]Element) (*Dense, error) {
	if len(rows) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrEmptyMatrix)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row 0 is empty: %w", ErrShapeMismatch))
	}

	var i int
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, matrixErrorf(ctxFromRows,
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), cols, ErrShapeMismatch))
		}
	}

	m := &Dense{r: len(rows), c: cols, data: make([]Element, len(rows)*cols)}
	for i = 0; i < m.r; i++ {
		copy(m.data[i*cols:(i+1)*cols], rows[i]) // row i lands at offset i*cols
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf validates (row, col) and returns the flat offset row*c + col.
// Returns ErrOutOfRange for negative or too-large indices.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col) or ErrOutOfRange wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) At(row, col int) (Element, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange wrapped with coordinates.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v Element) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with an independent buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]Element, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and identical cells.
// A nil receiver equals only a nil argument.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// RawRows returns a row-of-rows copy of the matrix contents.
// Mutating the result never affects m.
func (m *Dense) RawRows() [][]Element {
	out := make([][]Element, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		row := make([]Element, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders the matrix as "RxC" followed by one line per row, every
// value terminated by a comma:
//
//	2x2
//	19,22,
//	43,50,
//
// Intended for diagnostics; not for hot paths.
func (m *Dense) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.r))
	sb.WriteString(_fmtShapeSep)
	sb.WriteString(strconv.Itoa(m.c))
	sb.WriteString(_fmtLineEnd)

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sb.WriteString(strconv.FormatInt(int64(m.data[base+j]), 10))
			sb.WriteString(_fmtCellSep)
		}
		sb.WriteString(_fmtLineEnd)
	}

	return sb.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v Element) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, in row-major order.
// Used by the generator to fill a freshly allocated matrix.
func (m *Dense) Apply(f func(i, j int, v Element) Element) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
