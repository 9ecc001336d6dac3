// SPDX-License-Identifier: MIT

// Package engine: index descriptor types.
// An Index is produced by Engine.Index and consumed by Engine.Subset; the
// shim never builds one by hand.
package engine

import (
	"strconv"
	"strings"
)

// AxisKind tells how an Axis selects along its dimension.
type AxisKind int

const (
	// AxisScalar selects one position and drops the dimension.
	AxisScalar AxisKind = iota
	// AxisPositions selects a list of positions and keeps the dimension.
	AxisPositions
	// AxisLabel selects one position by its label and drops the dimension.
	AxisLabel
)

// String returns a short tag used in error messages.
func (k AxisKind) String() string {
	switch k {
	case AxisScalar:
		return "scalar"
	case AxisPositions:
		return "positions"
	case AxisLabel:
		return "label"
	default:
		return "AxisKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Axis is one component of an index descriptor: 0-based offsets or a label.
// The zero Axis is the scalar offset 0.
type Axis struct {
	kind  AxisKind
	pos   []int  // offsets (len 1 for AxisScalar)
	label string // AxisLabel only
}

// Scalar returns a single-offset axis that drops its dimension on Subset.
func Scalar(p int) Axis { return Axis{kind: AxisScalar, pos: []int{p}} }

// Positions returns an aggregate axis. The slice is copied.
func Positions(p ...int) Axis {
	cp := make([]int, len(p))
	copy(cp, p)

	return Axis{kind: AxisPositions, pos: cp}
}

// Label returns a label-based axis; labels are never offset.
func Label(s string) Axis { return Axis{kind: AxisLabel, label: s} }

// Kind reports how the axis selects.
func (a Axis) Kind() AxisKind { return a.kind }

// IsNumeric reports whether the axis holds offsets rather than a label.
func (a Axis) IsNumeric() bool { return a.kind != AxisLabel }

// Offsets returns a copy of the axis offsets (nil for a label axis).
func (a Axis) Offsets() []int {
	if a.kind == AxisLabel {
		return nil
	}
	if a.pos == nil { // zero Axis
		return []int{0}
	}
	cp := make([]int, len(a.pos))
	copy(cp, a.pos)

	return cp
}

// LabelName returns the label of a label axis and "" otherwise.
func (a Axis) LabelName() string { return a.label }

// String renders the axis as it appears inside an Index.
func (a Axis) String() string {
	if a.kind == AxisLabel {
		return strconv.Quote(a.label)
	}
	off := a.Offsets()
	if a.kind == AxisScalar {
		return strconv.Itoa(off[0])
	}
	parts := make([]string, len(off))
	for i, p := range off {
		parts[i] = strconv.Itoa(p)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Index is a host-native index descriptor of rank 1 or 2.
type Index struct {
	axes []Axis
}

// Rank is the number of axes (1 or 2 for descriptors built by Engine.Index).
func (ix Index) Rank() int { return len(ix.axes) }

// Axis returns axis k. It panics when k is out of range, like a slice index.
func (ix Index) Axis(k int) Axis { return ix.axes[k] }

// Axes returns a copy of the axes.
func (ix Index) Axes() []Axis {
	cp := make([]Axis, len(ix.axes))
	copy(cp, ix.axes)

	return cp
}

// String renders the descriptor, e.g. `[2, "col"]`.
func (ix Index) String() string {
	parts := make([]string, len(ix.axes))
	for i, a := range ix.axes {
		parts[i] = a.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
