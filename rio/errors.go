// SPDX-License-Identifier: MIT
// Package rio: sentinel error set. Filesystem causes are attached with
// github.com/bdlm/errors; match the sentinel with errors.Is.

package rio

import "errors"

var (
	// ErrRead indicates a file could not be read.
	ErrRead = errors.New("rio: read failed")

	// ErrWrite indicates a file could not be written.
	ErrWrite = errors.New("rio: write failed")

	// ErrDecode indicates malformed JSON.
	ErrDecode = errors.New("rio: malformed JSON")

	// ErrNotObject indicates a JSON document whose top level is not an object.
	ErrNotObject = errors.New("rio: top-level JSON value is not an object")

	// ErrUnboundVariable indicates a variable name with no value or binding.
	ErrUnboundVariable = errors.New("rio: unbound variable")
)
