// SPDX-License-Identifier: MIT

// Package engine - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of heterogeneous cells with the explicit
//     index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Carry optional row/column labels so label axes can be resolved.
//   - Support copy-based submatrix extraction (Induced) used by Subset.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Induced: O(r'*c');
//     RowIndex/ColIndex: O(r) / O(c).

package engine

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxInduce = "Induced" // tag for Dense.Induced
	ctxRows   = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of heterogeneous cells.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - rowNames/colNames are nil or exactly r/c unique labels.
type Dense struct {
	r, c     int      // row and column counts (>=0)
	data     []any    // contiguous row-major storage (len == r*c)
	rowNames []string // optional row labels
	colNames []string // optional column labels
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c matrix of nil cells using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Behavior highlights:
//   - Zero-sized shapes (0×k, k×0) are legal: an R data frame may be empty.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrBadShape when rows<0 or cols<0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]any, rows*cols)}, nil
}

// FromRows builds a Dense from row slices, copying every cell.
// MAIN DESCRIPTION:
//   - Ingest nested data (e.g., decoded JSON arrays) into row-major storage.
//
// Implementation:
//   - Stage 1: width = len(rows[0]); every row must match it.
//   - Stage 2: copy cells row by row.
//   - Stage 3: apply WithRowNames/WithColNames; label counts must match the shape.
//
// Errors:
//   - ErrDimensionMismatch for ragged rows or label count mismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]any, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := &Dense{r: r, c: c, data: make([]any, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d cells, want %d: %w", ctxRows, i, len(row), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}
	if o.rowNames != nil {
		if err := m.SetRowNames(o.rowNames); err != nil {
			return nil, err
		}
	}
	if o.colNames != nil {
		if err := m.SetColNames(o.colNames); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the cell at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (any, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v any) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a copy with its own buffer and labels.
// Cells are copied shallowly: reference values stay shared.
func (m *Dense) Clone() *Dense {
	cp := make([]any, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:        m.r,
		c:        m.c,
		data:     cp,
		rowNames: cloneStrings(m.rowNames),
		colNames: cloneStrings(m.colNames),
	}
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]any, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]any, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRowNames labels the rows; nil clears them.
// Errors: ErrDimensionMismatch on count mismatch, ErrBadLabel on empty/duplicate labels.
func (m *Dense) SetRowNames(names []string) error {
	if names == nil {
		m.rowNames = nil
		return nil
	}
	if len(names) != m.r {
		return fmt.Errorf("Dense.SetRowNames: %d labels for %d rows: %w", len(names), m.r, ErrDimensionMismatch)
	}
	if err := validateLabels(names); err != nil {
		return fmt.Errorf("Dense.SetRowNames: %w", err)
	}
	m.rowNames = cloneStrings(names)

	return nil
}

// SetColNames labels the columns; nil clears them.
// Errors: ErrDimensionMismatch on count mismatch, ErrBadLabel on empty/duplicate labels.
func (m *Dense) SetColNames(names []string) error {
	if names == nil {
		m.colNames = nil
		return nil
	}
	if len(names) != m.c {
		return fmt.Errorf("Dense.SetColNames: %d labels for %d cols: %w", len(names), m.c, ErrDimensionMismatch)
	}
	if err := validateLabels(names); err != nil {
		return fmt.Errorf("Dense.SetColNames: %w", err)
	}
	m.colNames = cloneStrings(names)

	return nil
}

// RowNames returns a copy of the row labels (nil when unlabeled).
func (m *Dense) RowNames() []string { return cloneStrings(m.rowNames) }

// ColNames returns a copy of the column labels (nil when unlabeled).
func (m *Dense) ColNames() []string { return cloneStrings(m.colNames) }

// RowIndex resolves a row label to its offset.
func (m *Dense) RowIndex(label string) (int, error) {
	return lookupLabel(m.rowNames, label, "row")
}

// ColIndex resolves a column label to its offset.
func (m *Dense) ColIndex(label string) (int, error) {
	return lookupLabel(m.colNames, label, "col")
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: bounds-check every index up front.
//   - Stage 2: nested loops with direct offset math.
//   - Stage 3: carry labels of the selected rows/cols.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	for _, ri := range rowsIdx {
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
	}
	for _, cj := range colsIdx {
		if cj < 0 || cj >= m.c {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
		}
	}
	rp, cp := len(rowsIdx), len(colsIdx)
	res := &Dense{r: rp, c: cp, data: make([]any, rp*cp)}
	var i, j int
	for i = 0; i < rp; i++ {
		src := rowsIdx[i] * m.c
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[src+colsIdx[j]]
		}
	}
	// Duplicated selections cannot keep unique labels; drop them in that case.
	res.rowNames = pickLabels(m.rowNames, rowsIdx)
	res.colNames = pickLabels(m.colNames, colsIdx)

	return res, nil
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v any) bool) {
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

// String renders rows as lines with comma-separated %v cells.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// MarshalJSON writes the matrix as an array of row arrays. Labels are not
// part of the encoding.
func (m *Dense) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	rows := make([][]any, m.r)
	for i := range rows {
		rows[i] = m.data[i*m.c : (i+1)*m.c]
	}

	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(rows)
}

func validateLabels(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return ErrBadLabel
		}
		if _, dup := seen[n]; dup {
			return ErrBadLabel
		}
		seen[n] = struct{}{}
	}

	return nil
}

func lookupLabel(names []string, label, axis string) (int, error) {
	for i, n := range names {
		if n == label {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%s label %q: %w", axis, label, ErrUnknownLabel)
}

func pickLabels(names []string, idx []int) []string {
	if names == nil {
		return nil
	}
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = names[i]
	}
	if validateLabels(out) != nil {
		return nil
	}

	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	cp := make([]string, len(s))
	copy(cp, s)

	return cp
}
