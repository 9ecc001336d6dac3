// SPDX-License-Identifier: MIT

// Package rshim - Dimension Inspector and Axis Accessors.
//
// Purpose:
//   - Report shape (Dim), entry count (Length) and axis labels (Names) of
//     array-like and object-like values the way R does.
//   - Explicit nrow/ncol/names attributes win over structural inference.
//   - Reserved attribute keys never count as data.

package rshim

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/ghetzel/go-stockutil/sliceutil"
	"github.com/ghetzel/go-stockutil/typeutil"
	"github.com/katalvlaran/rcompat/engine"
)

// Dim returns the shape of v as [rows, cols].
// MAIN DESCRIPTION:
//   - array-like → the engine's native shape; a flat [n] becomes [n, 1].
//   - object-like with both nrow and ncol → [nrow, ncol], trusted as given.
//   - other object-like → [data entries, 1].
//   - anything else → nil (not dimensioned), no error.
//
// Errors:
//   - ErrInvalidShape when nrow/ncol are not non-negative integers.
//   - engine errors for malformed arrays (ragged rows, too deep).
//
// Complexity:
//   - O(n) in the number of entries.
func (s *Shim) Dim(v any) ([]int, error) {
	if o, ok := objectOf(v); ok {
		if o.Has(KeyNrow) && o.Has(KeyNcol) {
			r, err := attrInt(o, KeyNrow)
			if err != nil {
				return nil, err
			}
			c, err := attrInt(o, KeyNcol)
			if err != nil {
				return nil, err
			}
			return []int{r, c}, nil
		}
		return []int{len(o.DataKeys()), 1}, nil
	}
	if !isArrayLike(v) {
		return nil, nil
	}
	shape, err := s.eng.Size(v)
	if err != nil {
		return nil, fmt.Errorf("Dim: %w", err)
	}
	if len(shape) == 1 {
		return []int{shape[0], 1}, nil
	}

	return shape, nil
}

// Length counts the own entries of v, reserved keys excluded.
// Slices count elements, a *engine.Dense counts rows (its outer entries),
// strings count runes; any other scalar has no entries.
func Length(v any) int {
	if o, ok := objectOf(v); ok {
		return len(o.DataKeys())
	}
	switch x := v.(type) {
	case *engine.Dense:
		if x == nil {
			return 0
		}
		return x.Rows()
	case string:
		return utf8.RuneCountInString(x)
	}
	if typeutil.IsArray(v) {
		return sliceutil.Len(v)
	}

	return 0
}

// Names returns the axis labels of v.
// An explicit names attribute (object key or Dense column labels) is
// returned as is; an object yields its data keys in order; anything else
// gets synthesised labels prefix1..prefixN with N = Length(v).
func (s *Shim) Names(v any) ([]string, error) {
	if o, ok := objectOf(v); ok {
		if attr, has := o.Get(KeyNames); has && attr != nil {
			return namesAttr(attr)
		}
		return o.DataKeys(), nil
	}
	if m, ok := v.(*engine.Dense); ok && m != nil {
		if cn := m.ColNames(); cn != nil {
			return cn, nil
		}
	}
	n := Length(v)
	out := make([]string, n)
	for i := range out {
		out[i] = s.opts.labelPrefix + strconv.Itoa(i+1)
	}

	return out, nil
}

// Colnames is Names under its R data-frame name.
func (s *Shim) Colnames(v any) ([]string, error) { return s.Names(v) }

// Nrow returns element 0 of Dim(v).
func (s *Shim) Nrow(v any) (int, error) { return s.axisLen(v, 0, "Nrow") }

// Ncol returns element 1 of Dim(v).
func (s *Shim) Ncol(v any) (int, error) { return s.axisLen(v, 1, "Ncol") }

// axisLen reads one entry of Dim(v) through the engine's subset operation,
// so the override rules of Dim apply unchanged.
func (s *Shim) axisLen(v any, k int, ctx string) (int, error) {
	d, err := s.Dim(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctx, err)
	}
	if d == nil {
		return 0, fmt.Errorf("%s(%T): %w", ctx, v, ErrNotDimensioned)
	}
	ix, err := s.eng.Index(engine.Scalar(k))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctx, err)
	}
	got, err := s.eng.Subset(d, ix)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctx, err)
	}
	n, ok := got.(int)
	if !ok {
		return 0, fmt.Errorf("%s: %v: %w", ctx, got, ErrInvalidShape)
	}

	return n, nil
}

func isArrayLike(v any) bool {
	if m, ok := v.(*engine.Dense); ok {
		return m != nil
	}
	return typeutil.IsArray(v)
}

// attrInt reads an nrow/ncol attribute. Integral floats (decoded JSON) pass.
func attrInt(o *Object, key string) (int, error) {
	raw, _ := o.Get(key)
	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() >= 0 {
			return int(rv.Int()), nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() <= math.MaxInt {
			return int(rv.Uint()), nil
		}
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f >= 0 && f == math.Trunc(f) && f <= math.MaxInt32 {
			return int(f), nil
		}
	}

	return 0, fmt.Errorf("Dim: %s=%v: %w", key, raw, ErrInvalidShape)
}

func namesAttr(attr any) ([]string, error) {
	switch x := attr.(type) {
	case []string:
		cp := make([]string, len(x))
		copy(cp, x)
		return cp, nil
	case []any:
		out := make([]string, len(x))
		for i, n := range x {
			str, ok := n.(string)
			if !ok {
				return nil, fmt.Errorf("Names: element %d (%T): %w", i, n, ErrInvalidNames)
			}
			out[i] = str
		}
		return out, nil
	default:
		return nil, fmt.Errorf("Names: %T: %w", attr, ErrInvalidNames)
	}
}
