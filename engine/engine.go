// SPDX-License-Identifier: MIT

// Package engine - the array engine facade (Size, Index, Subtract, Subset).
//
// Purpose:
//   - Answer shape queries for Dense values and arbitrary Go slices.
//   - Build validated index descriptors; a negative offset never escapes Index.
//   - Read positions or labels out of a value without mutating it.
//
// Rank policy:
//   - Flat slices are rank 1; slices of slices and *Dense are rank 2.
//   - Deeper nesting is rejected with ErrBadShape.

package engine

import (
	"fmt"

	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/typeutil"
)

// Engine is stateless; the zero value is ready to use.
type Engine struct{}

// New returns an Engine.
func New() *Engine { return &Engine{} }

// Size returns the native shape of v.
// MAIN DESCRIPTION:
//   - *Dense → [rows, cols].
//   - slice of slices → [rows, cols] (all rows must have the same width).
//   - flat slice → [n].
//
// Errors:
//   - ErrNotArray for scalars, maps and structs.
//   - ErrDimensionMismatch for ragged or mixed nesting.
//   - ErrBadShape for nesting deeper than two levels.
//
// Complexity:
//   - Time O(rows) plus the cost of flattening each row.
func (e *Engine) Size(v any) ([]int, error) {
	if m, ok := v.(*Dense); ok {
		if m == nil {
			return nil, ErrNilDense
		}
		return []int{m.r, m.c}, nil
	}
	rows, nested, err := flatten(v)
	if err != nil {
		return nil, fmt.Errorf("Size(%T): %w", v, err)
	}
	if !nested {
		return []int{len(rows[0])}, nil
	}

	return []int{len(rows), len(rows[0])}, nil
}

// Index builds a descriptor from one or two axes.
// Negative offsets are rejected here so Subset never sees them.
func (e *Engine) Index(axes ...Axis) (Index, error) {
	if len(axes) == 0 || len(axes) > 2 {
		return Index{}, fmt.Errorf("Index: %d axes: %w", len(axes), ErrRank)
	}
	out := make([]Axis, len(axes))
	for k, a := range axes {
		if a.IsNumeric() {
			for _, p := range a.Offsets() {
				if p < 0 {
					return Index{}, fmt.Errorf("Index: axis %d offset %d: %w", k, p, ErrOutOfRange)
				}
			}
			a = Axis{kind: a.kind, pos: a.Offsets()}
		}
		out[k] = a
	}

	return Index{axes: out}, nil
}

// Subtract decrements every offset of a numeric axis by k.
func (e *Engine) Subtract(a Axis, k int) (Axis, error) {
	if !a.IsNumeric() {
		return Axis{}, fmt.Errorf("Subtract(%s, %d): %w", a, k, ErrNotNumeric)
	}
	off := a.Offsets()
	for i := range off {
		off[i] -= k
	}

	return Axis{kind: a.kind, pos: off}, nil
}

// Subset reads the selection described by idx out of v.
// MAIN DESCRIPTION:
//   - Scalar and label axes drop their dimension, position lists keep it.
//   - Rank 1 on a flat slice selects elements; on 2-D values it selects rows.
//   - Rank 2 requires a 2-D value (*Dense or slice of slices).
//
// Returns:
//   - a single cell, a []any (one dimension left) or a *Dense (two left).
//
// Errors:
//   - ErrOutOfRange, ErrUnknownLabel, ErrRank, ErrNotArray.
//
// Complexity:
//   - Time O(size of the selection).
func (e *Engine) Subset(v any, idx Index) (any, error) {
	if idx.Rank() == 0 || idx.Rank() > 2 {
		return nil, fmt.Errorf("Subset: %w", ErrRank)
	}
	m, err := asDense(v)
	if err != nil {
		return nil, fmt.Errorf("Subset(%T): %w", v, err)
	}
	if m == nil { // flat slice
		if idx.Rank() != 1 {
			return nil, fmt.Errorf("Subset: rank %d on a flat value: %w", idx.Rank(), ErrRank)
		}
		rows, _, _ := flatten(v)
		return subsetFlat(rows[0], idx.Axis(0))
	}

	rowSel, rowScalar, err := resolve(idx.Axis(0), m.r, m.rowNames, "row")
	if err != nil {
		return nil, fmt.Errorf("Subset: %w", err)
	}
	colSel, colScalar := allOffsets(m.c), false
	if idx.Rank() == 2 {
		colSel, colScalar, err = resolve(idx.Axis(1), m.c, m.colNames, "col")
		if err != nil {
			return nil, fmt.Errorf("Subset: %w", err)
		}
	}
	sub, err := m.Induced(rowSel, colSel)
	if err != nil {
		return nil, fmt.Errorf("Subset: %w", err)
	}

	switch {
	case rowScalar && colScalar:
		return sub.data[0], nil
	case rowScalar || colScalar:
		out := make([]any, len(sub.data))
		copy(out, sub.data)
		return out, nil
	default:
		return sub, nil
	}
}

// flatten turns an array-like value into rows. For a flat slice the result
// is a single row and nested is false.
func flatten(v any) (rows [][]any, nested bool, err error) {
	if !typeutil.IsArray(v) {
		return nil, false, ErrNotArray
	}
	items := sliceutil.Sliceify(v)
	inner := 0
	for _, it := range items {
		if typeutil.IsArray(it) {
			inner++
		}
	}
	if inner == 0 {
		return [][]any{items}, false, nil
	}
	if inner != len(items) {
		return nil, false, ErrDimensionMismatch
	}
	rows = make([][]any, len(items))
	for i, it := range items {
		row := sliceutil.Sliceify(it)
		if i > 0 && len(row) != len(rows[0]) {
			return nil, false, ErrDimensionMismatch
		}
		for _, cell := range row {
			if typeutil.IsArray(cell) {
				return nil, false, ErrBadShape
			}
		}
		rows[i] = row
	}

	return rows, true, nil
}

// asDense returns v as a *Dense, converting slices of slices.
// A flat slice yields (nil, nil).
func asDense(v any) (*Dense, error) {
	if m, ok := v.(*Dense); ok {
		if m == nil {
			return nil, ErrNilDense
		}
		return m, nil
	}
	rows, nested, err := flatten(v)
	if err != nil {
		return nil, err
	}
	if !nested {
		return nil, nil
	}

	return FromRows(rows)
}

func subsetFlat(items []any, a Axis) (any, error) {
	sel, scalar, err := resolve(a, len(items), nil, "element")
	if err != nil {
		return nil, fmt.Errorf("Subset: %w", err)
	}
	if scalar {
		return items[sel[0]], nil
	}
	out := make([]any, len(sel))
	for k, p := range sel {
		out[k] = items[p]
	}

	return out, nil
}

// resolve maps an axis onto offsets in [0,n), resolving labels against names.
func resolve(a Axis, n int, names []string, axis string) (sel []int, scalar bool, err error) {
	if a.Kind() == AxisLabel {
		p, err := lookupLabel(names, a.LabelName(), axis)
		if err != nil {
			return nil, false, err
		}
		return []int{p}, true, nil
	}
	sel = a.Offsets()
	for _, p := range sel {
		if p < 0 || p >= n {
			return nil, false, fmt.Errorf("%s offset %d of %d: %w", axis, p, n, ErrOutOfRange)
		}
	}

	return sel, a.Kind() == AxisScalar, nil
}

func allOffsets(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
