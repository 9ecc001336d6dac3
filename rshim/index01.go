// SPDX-License-Identifier: MIT

// Package rshim - Index Translator.
//
// R positions start at 1 and either axis may be a label; engine offsets
// start at 0. Index01 converts each axis independently: numbers and
// aggregates are decremented through the engine, labels pass through.
// That covers the single-axis form and all four double-axis pairings
// (num,num) (num,label) (label,label) (label,num) with one exhaustive switch.

package rshim

import (
	"fmt"
	"math"

	"github.com/katalvlaran/rcompat/engine"
)

// IndexArg is one R-style index component. It is sealed: the only
// variants are Num, Label and Agg.
type IndexArg interface {
	indexArg()
}

// Num is a single 1-based position.
type Num int

// Label selects by name and is never offset.
type Label string

// Agg is a list of 1-based positions; the selected dimension is kept.
type Agg []int

func (Num) indexArg()   {}
func (Label) indexArg() {}
func (Agg) indexArg()   {}

// Index01 translates R index components into an engine descriptor.
// MAIN DESCRIPTION:
//   - Index01(i) builds a single-axis descriptor.
//   - Index01(i, j) builds a double-axis descriptor.
//
// Errors:
//   - ErrInvalidIndexKind for a nil component or more than two components.
//   - engine.ErrOutOfRange when an R position below 1 reaches the engine.
//
// Complexity:
//   - O(k) in the number of positions.
func (s *Shim) Index01(i IndexArg, j ...IndexArg) (engine.Index, error) {
	if len(j) > 1 {
		return engine.Index{}, fmt.Errorf("Index01: %d components: %w", 1+len(j), ErrInvalidIndexKind)
	}
	ai, err := s.axis(i)
	if err != nil {
		return engine.Index{}, err
	}
	if len(j) == 0 {
		return s.eng.Index(ai)
	}
	aj, err := s.axis(j[0])
	if err != nil {
		return engine.Index{}, err
	}

	return s.eng.Index(ai, aj)
}

func (s *Shim) axis(a IndexArg) (engine.Axis, error) {
	switch x := a.(type) {
	case Num:
		return s.eng.Subtract(engine.Scalar(int(x)), 1)
	case Agg:
		return s.eng.Subtract(engine.Positions(x...), 1)
	case Label:
		return engine.Label(string(x)), nil
	default:
		return engine.Axis{}, fmt.Errorf("Index01(%T): %w", a, ErrInvalidIndexKind)
	}
}

// ParseIndexArg converts a dynamically typed value (decoded JSON, CLI
// input) into an IndexArg. Integral numbers become Num, strings Label,
// slices of integral numbers Agg. Booleans, nil and everything else fail
// with ErrInvalidIndexKind.
func ParseIndexArg(v any) (IndexArg, error) {
	switch x := v.(type) {
	case string:
		return Label(x), nil
	case bool, nil:
		return nil, fmt.Errorf("ParseIndexArg(%T): %w", v, ErrInvalidIndexKind)
	case []int:
		return Agg(append([]int(nil), x...)), nil
	case []any:
		out := make(Agg, len(x))
		for k, e := range x {
			n, ok := integral(e)
			if !ok {
				return nil, fmt.Errorf("ParseIndexArg: element %d (%T): %w", k, e, ErrInvalidIndexKind)
			}
			out[k] = n
		}
		return out, nil
	}
	if n, ok := integral(v); ok {
		return Num(n), nil
	}

	return nil, fmt.Errorf("ParseIndexArg(%T): %w", v, ErrInvalidIndexKind)
}

// integral reports whether v is a number with no fractional part.
func integral(v any) (int, bool) {
	if _, isBool := v.(bool); isBool {
		return 0, false
	}
	f, ok := numberOf(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	return int(f), true
}
