// SPDX-License-Identifier: MIT
// Package engine: sentinel error set.
// Every public operation returns one of these sentinels, possibly wrapped
// with fmt.Errorf("ctx: %w", ErrX). Callers match with errors.Is.

package engine

import "errors"

var (
	// ErrBadShape is returned when a value's shape cannot be represented
	// (negative dimensions, nesting deeper than two levels).
	ErrBadShape = errors.New("engine: invalid shape")

	// ErrOutOfRange indicates a position outside [0, n) on some axis.
	// It is also the result of a negative offset reaching Index.
	ErrOutOfRange = errors.New("engine: index out of range")

	// ErrDimensionMismatch indicates ragged nested slices or a row of the
	// wrong width passed to FromRows.
	ErrDimensionMismatch = errors.New("engine: dimension mismatch")

	// ErrRank indicates an index descriptor with zero or more than two axes,
	// or a two-axis descriptor applied to a flat value.
	ErrRank = errors.New("engine: unsupported index rank")

	// ErrNotNumeric indicates arithmetic on a label axis.
	ErrNotNumeric = errors.New("engine: axis is not numeric")

	// ErrUnknownLabel indicates a label that the value does not carry.
	ErrUnknownLabel = errors.New("engine: unknown label")

	// ErrNotArray indicates a shape query or subset on a non-array value.
	ErrNotArray = errors.New("engine: value is not array-like")

	// ErrNilDense indicates a nil *Dense receiver or argument.
	ErrNilDense = errors.New("engine: nil dense")
)

// ErrBadLabel indicates an empty or repeated row/column label.
var ErrBadLabel = errors.New("engine: empty or duplicate label")
