// SPDX-License-Identifier: MIT

// Package rshim: functional configuration for Shim.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error).
package rshim

import (
	"io"
	"os"
)

// DefaultLabelPrefix is prepended to 1-based positions when Names has to
// synthesise labels for an unnamed value ("X1", "X2", ...).
const DefaultLabelPrefix = "X"

const (
	panicLabelPrefixEmpty = "rshim: WithLabelPrefix: prefix must be non-empty"
	panicOutputNil        = "rshim: WithOutput: writer must be non-nil"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	labelPrefix string    // DefaultLabelPrefix
	out         io.Writer // os.Stdout; target of Print
}

// WithLabelPrefix changes the prefix of synthesised names.
func WithLabelPrefix(prefix string) Option {
	if prefix == "" {
		panic(panicLabelPrefixEmpty)
	}

	return func(o *Options) { o.labelPrefix = prefix }
}

// WithOutput sets the writer used by Print.
func WithOutput(w io.Writer) Option {
	if w == nil {
		panic(panicOutputNil)
	}

	return func(o *Options) { o.out = w }
}

func defaultOptions() Options {
	return Options{labelPrefix: DefaultLabelPrefix, out: os.Stdout}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
