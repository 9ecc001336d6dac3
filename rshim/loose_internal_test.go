package rshim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLooseEqual pins the coercion table used for WhichMin/WhichMax ties.
func TestLooseEqual(t *testing.T) {
	cases := []struct {
		a, b any
		want bool
	}{
		{2, 2.0, true},
		{"2", 2, true},
		{" 2 ", 2, true},
		{"", 0, true},
		{true, 1, true},
		{false, "0", true},
		{"a", "a", true},
		{"a", "b", false},
		{"1", "1.0", false}, // both strings: no numeric coercion
		{true, "true", false},
		{nil, nil, true},
		{nil, 0, false},
		{math.NaN(), math.NaN(), false},
		{"x", math.NaN(), false},
		{[]int{1}, []int{1}, false},
		{uint8(3), int64(3), true},
		{"0x10", 16, true},
		{"0X1f", 31, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"-0x10", -16, false},
		{"0x", 0, false},
		{"0x1p4", 16, false},
		{"Infinity", math.Inf(1), true},
		{" -Infinity", math.Inf(-1), true},
		{"inf", math.Inf(1), false},
		{"infinity", math.Inf(1), false},
		{"1e400", math.Inf(1), true},
		{"-1e400", math.Inf(-1), true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1_000", 1000, false},
		{"nan", math.NaN(), false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, looseEqual(tc.a, tc.b), "%#v == %#v", tc.a, tc.b)
	}
}

// TestStringToNumber checks the numeric reading of strings.
func TestStringToNumber(t *testing.T) {
	assert.Equal(t, 16.0, stringToNumber("0x10"))
	assert.Equal(t, 0.0, stringToNumber(" \t\n"))
	assert.Equal(t, -2.5e3, stringToNumber("-2.5e3"))
	assert.True(t, math.IsInf(stringToNumber("1e400"), 1))
	assert.True(t, math.IsNaN(stringToNumber("inf")))
	assert.True(t, math.IsNaN(stringToNumber("0b12")))
	assert.True(t, math.IsNaN(stringToNumber("12px")))
	// 2^64 does not fit a uint64 but is still a finite number.
	assert.Equal(t, math.Pow(2, 64), stringToNumber("0x10000000000000000"))
}

// TestLooseLess pins the coercing order.
func TestLooseLess(t *testing.T) {
	assert.True(t, looseLess(1, 2))
	assert.True(t, looseLess("1", 2))
	assert.True(t, looseLess("10", "9")) // lexical for two strings
	assert.False(t, looseLess(10, "9"))
	assert.True(t, looseLess(nil, 1))
	assert.True(t, looseLess(false, true))
	assert.False(t, looseLess("abc", 1))
	assert.False(t, looseLess(1, math.NaN()))
	assert.False(t, looseLess(struct{}{}, 1))
}
