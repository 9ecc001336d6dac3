package rshim_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/rcompat/rshim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObjectOrder keeps first insertion order across re-sets.
func TestObjectOrder(t *testing.T) {
	o := obj("b", 1, "nrow", 2, "a", 3)
	o.Set("b", 10)

	assert.Equal(t, []string{"b", "nrow", "a"}, o.Keys())
	assert.Equal(t, []string{"b", "a"}, o.DataKeys())
	assert.Equal(t, 3, o.Len())

	v, ok := o.Get("b")
	require.True(t, ok)
	assert.Equal(t, 10, v)
	assert.False(t, o.Has("zz"))
	assert.True(t, rshim.IsReserved("ncol"))
	assert.False(t, rshim.IsReserved("a"))
}

// TestObjectMarshalJSON writes keys in insertion order, nested objects included.
func TestObjectMarshalJSON(t *testing.T) {
	o := obj("z", 1, "a", []any{"x", true}, "m", obj("q", nil, "p", 2.5))

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"z":1,"a":["x",true],"m":{"q":null,"p":2.5}}`, string(b))
	assert.Equal(t, `{"z":1,"a":["x",true],"m":{"q":null,"p":2.5}}`, string(b))

	var nilObj *rshim.Object
	b, err = nilObj.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
