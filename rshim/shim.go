// SPDX-License-Identifier: MIT

package rshim

import (
	"fmt"

	"github.com/katalvlaran/rcompat/engine"
)

// Engine is the array engine the shim delegates to.
// *engine.Engine is the stock implementation.
type Engine interface {
	// Size returns the native shape of an array-like value.
	Size(v any) ([]int, error)
	// Index builds a descriptor from one or two axes.
	Index(axes ...engine.Axis) (engine.Index, error)
	// Subtract decrements every offset of a numeric axis by k.
	Subtract(a engine.Axis, k int) (engine.Axis, error)
	// Subset reads the selection described by idx out of v.
	Subset(v any, idx engine.Index) (any, error)
}

var _ Engine = (*engine.Engine)(nil)

// Shim binds the dimension and index operations to one array engine.
// A Shim holds no mutable state and may be shared.
type Shim struct {
	eng  Engine
	opts Options
}

// New returns a Shim over eng.
func New(eng Engine, opts ...Option) (*Shim, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}

	return &Shim{eng: eng, opts: gatherOptions(opts...)}, nil
}

// Engine returns the array engine the shim was built with.
func (s *Shim) Engine() Engine { return s.eng }

// Print writes x on its own line to the configured output and returns x
// unchanged, so it can wrap an expression.
func (s *Shim) Print(x any) any {
	fmt.Fprintln(s.opts.out, x)
	return x
}
