// SPDX-License-Identifier: MIT

// Package engine: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: every Dense carries its own labels.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package engine

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEmptyLabel     = "engine: WithRowNames/WithColNames: labels must be non-empty"
	panicDuplicateLabel = "engine: WithRowNames/WithColNames: labels must be unique"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rowNames []string // nil ⇒ unlabeled rows
	colNames []string // nil ⇒ unlabeled columns
}

// WithRowNames labels the rows of a Dense built by FromRows.
// Panics when a label is empty or repeated.
func WithRowNames(names ...string) Option {
	cp := checkLabels(names)

	return func(o *Options) { o.rowNames = cp }
}

// WithColNames labels the columns of a Dense built by FromRows.
// Panics when a label is empty or repeated.
func WithColNames(names ...string) Option {
	cp := checkLabels(names)

	return func(o *Options) { o.colNames = cp }
}

// gatherOptions applies setters over zero defaults.
func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// checkLabels copies names and panics when they are empty or repeated.
func checkLabels(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			panic(panicEmptyLabel)
		}
		if _, dup := seen[n]; dup {
			panic(panicDuplicateLabel)
		}
		seen[n] = struct{}{}
	}

	return cloneStrings(names)
}
