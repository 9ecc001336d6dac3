// SPDX-License-Identifier: MIT

// Package rshim - Reduction Helpers.
// Results are 1-based positions, as R reports them. Inputs are read-only.

package rshim

import (
	"fmt"
	"regexp"
)

// Rep returns a new slice holding times copies of x.
func Rep[T any](x T, times int) ([]T, error) {
	if times < 0 {
		return nil, fmt.Errorf("Rep(%d): %w", times, ErrNegativeTimes)
	}
	out := make([]T, times)
	for i := range out {
		out[i] = x
	}

	return out, nil
}

// MaxRangeLen bounds the number of elements Range materialises.
const MaxRangeLen = 1 << 26

// Range returns the integers from start to end, both included.
// The step is +1 when end >= start and -1 otherwise. A range longer than
// MaxRangeLen fails with ErrRangeTooLong.
func Range(start, end int) ([]int, error) {
	step := 1
	// uint64 subtraction is exact for any int pair, even MinInt to MaxInt.
	span := uint64(end) - uint64(start)
	if end < start {
		step, span = -1, uint64(start)-uint64(end)
	}
	if span >= MaxRangeLen {
		return nil, fmt.Errorf("Range(%d, %d): %w", start, end, ErrRangeTooLong)
	}
	n := int(span) + 1
	out := make([]int, n)
	for i, x := 0, start; i < n; i, x = i+1, x+step {
		out[i] = x
	}

	return out, nil
}

// Which returns the 1-based positions holding the boolean true.
// Only a bool true matches; truthy values such as 1 or "true" do not.
func Which[T any](x []T) []int {
	out := []int{}
	for i, v := range x {
		if b, ok := any(v).(bool); ok && b {
			out = append(out, i+1)
		}
	}

	return out
}

// WhichMin returns every 1-based position attaining the minimum of x.
// See scanExtremum for the tie policy.
func WhichMin[T any](x []T) ([]int, error) {
	return scanExtremum(x, looseLess, "WhichMin")
}

// WhichMax returns every 1-based position attaining the maximum of x.
func WhichMax[T any](x []T) ([]int, error) {
	return scanExtremum(x, func(a, b any) bool { return looseLess(b, a) }, "WhichMax")
}

// scanExtremum runs one left-to-right pass with the running extremum
// seeded from x[0]. Position 1 starts in the result and is only dropped
// when a strictly better element resets it. A tie (loose equality with the
// running extremum) appends; equality is tested before betterness.
func scanExtremum[T any](x []T, better func(a, b any) bool, ctx string) ([]int, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("%s: %w", ctx, ErrEmptyInput)
	}
	out := []int{1}
	m := any(x[0])
	for i := 1; i < len(x); i++ {
		v := any(x[i])
		switch {
		case looseEqual(v, m):
			out = append(out, i+1)
		case better(v, m):
			out = []int{i + 1}
			m = v
		}
	}

	return out, nil
}

// ExpandArray repeats the elements of x cyclically until the result has
// length n. Use Rep for a single value.
func ExpandArray[T any](x []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("ExpandArray(%d): %w", n, ErrNegativeTimes)
	}
	if n > 0 && len(x) == 0 {
		return nil, fmt.Errorf("ExpandArray: %w", ErrEmptyInput)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = x[i%len(x)]
	}

	return out, nil
}

// RemoveMatching returns the strings of xs that match re, dropping the
// others. xs is left untouched.
func RemoveMatching(xs []string, re *regexp.Regexp) []string {
	out := make([]string, 0, len(xs))
	for _, s := range xs {
		if re.MatchString(s) {
			out = append(out, s)
		}
	}

	return out
}
