// SPDX-License-Identifier: MIT

package rshim

import (
	"errors"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// looseEqual is the coercing equality used for WhichMin/WhichMax ties.
// Same-kind strings and booleans compare directly; nil only equals nil;
// any other mix is compared numerically after coercion, so "2" ties 2 and
// true ties 1. NaN never ties.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as == bs
	}
	ab, aBool := a.(bool)
	bb, bBool := b.(bool)
	if aBool && bBool {
		return ab == bb
	}
	x, okx := coerceNumber(a)
	y, oky := coerceNumber(b)
	if !okx || !oky {
		return false
	}

	return x == y
}

// looseLess is the coercing ordering: two strings compare lexically,
// everything else numerically (nil as 0). Incomparable values are never less.
func looseLess(a, b any) bool {
	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		return as < bs
	}
	x, okx := coerceNumber(a)
	y, oky := coerceNumber(b)

	return okx && oky && x < y
}

// coerceNumber converts a scalar to float64 the way a numeric comparison
// would. Unparseable strings become NaN; composite values are not scalars.
func coerceNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		return stringToNumber(x), true
	}

	return numberOf(v)
}

var decimalLiteral = regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// stringToNumber follows the string grammar of a numeric comparison:
// surrounding whitespace is ignored, "" is 0, unsigned 0x/0o/0b integers
// are read in their base, only "Infinity" spells infinity and decimals too
// large for float64 saturate to ±Inf. Anything else is NaN.
func stringToNumber(s string) float64 {
	t := strings.TrimSpace(s)
	switch t {
	case "":
		return 0
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(t) > 2 && t[0] == '0' {
		base := 0
		switch t[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			digits := t[2:]
			if digits[0] == '+' || digits[0] == '-' {
				return math.NaN()
			}
			n, ok := new(big.Int).SetString(digits, base)
			if !ok {
				return math.NaN()
			}
			f, _ := new(big.Float).SetInt(n).Float64()
			return f
		}
	}
	if !decimalLiteral.MatchString(t) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}

	return f
}

// numberOf converts any Go numeric kind, named types included.
func numberOf(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
