// SPDX-License-Identifier: MIT
// Package rshim: sentinel error set.
// Operations return these sentinels (wrapped with call context via %w) or
// an engine sentinel passed through unchanged. Match with errors.Is.

package rshim

import "errors"

var (
	// ErrNilEngine indicates New was called without an array engine.
	ErrNilEngine = errors.New("rshim: nil engine")

	// ErrInvalidIndexKind indicates an index argument that is neither a
	// number, a label nor an aggregate of numbers, or too many arguments.
	ErrInvalidIndexKind = errors.New("rshim: invalid index kind")

	// ErrEmptyInput indicates an empty sequence where at least one element
	// is required (WhichMin/WhichMax, ExpandArray).
	ErrEmptyInput = errors.New("rshim: empty input")

	// ErrNegativeTimes indicates a negative repetition or target length.
	ErrNegativeTimes = errors.New("rshim: negative count")

	// ErrRangeTooLong indicates a Range with more than MaxRangeLen elements.
	ErrRangeTooLong = errors.New("rshim: range too long")

	// ErrNotDimensioned indicates Nrow/Ncol on a value without a shape.
	ErrNotDimensioned = errors.New("rshim: value has no dimensions")

	// ErrInvalidShape indicates an nrow/ncol attribute that is not a
	// non-negative integer.
	ErrInvalidShape = errors.New("rshim: invalid nrow/ncol attribute")

	// ErrInvalidNames indicates a names attribute that is not a list of strings.
	ErrInvalidNames = errors.New("rshim: invalid names attribute")
)
