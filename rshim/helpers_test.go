package rshim_test

import (
	"testing"

	"github.com/katalvlaran/rcompat/engine"
	"github.com/katalvlaran/rcompat/rshim"
	"github.com/stretchr/testify/require"
)

// newShim builds a Shim over the stock engine or fails the test.
func newShim(t testing.TB, opts ...rshim.Option) *rshim.Shim {
	t.Helper()
	s, err := rshim.New(engine.New(), opts...)
	require.NoError(t, err)

	return s
}

// obj builds an Object from alternating key/value arguments.
func obj(kv ...any) *rshim.Object {
	o := rshim.NewObject()
	for i := 0; i+1 < len(kv); i += 2 {
		o.Set(kv[i].(string), kv[i+1])
	}

	return o
}
