package rio_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/rcompat/engine"
	"github.com/katalvlaran/rcompat/rio"
	"github.com/katalvlaran/rcompat/rshim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile puts content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

// TestCsvRoundTrip writes and reads back text, normalising CRLF.
func TestCsvRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.csv")
	require.False(t, rio.FileExists(p))

	require.NoError(t, rio.WriteCsv(p, "a,b\r\n1,2\r\n"))
	require.True(t, rio.FileExists(p))

	got, err := rio.ReadCsv(p)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2", got)
}

// TestCsvErrors reports the rio sentinels for missing paths.
func TestCsvErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := rio.ReadCsv(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, rio.ErrRead)

	err = rio.WriteCsv(filepath.Join(dir, "no", "such", "dir.csv"), "x")
	assert.ErrorIs(t, err, rio.ErrWrite)
}

// TestReadJSONVariables keeps file order.
func TestReadJSONVariables(t *testing.T) {
	p := writeFile(t, "vars.json", `{
  "zeta": [1, 2, 3],
  "alpha": {"b": 1, "a": 2, "nrow": 2, "ncol": 1},
  "flag": true
}`)
	names, err := rio.ReadJSONVariables(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "flag"}, names)
}

// TestDecodeObject checks value kinds and nested key order.
func TestDecodeObject(t *testing.T) {
	o, err := rio.DecodeObject([]byte(`{"m":{"y":1,"x":[true,null,"s"]},"n":2.5}`))
	require.NoError(t, err)

	m, ok := o.Get("m")
	require.True(t, ok)
	inner, ok := m.(*rshim.Object)
	require.True(t, ok)
	assert.Equal(t, []string{"y", "x"}, inner.Keys())

	x, _ := inner.Get("x")
	assert.Equal(t, []any{true, nil, "s"}, x)
	n, _ := o.Get("n")
	assert.Equal(t, 2.5, n)

	_, err = rio.DecodeObject([]byte(`[1,2]`))
	assert.ErrorIs(t, err, rio.ErrNotObject)

	_, err = rio.DecodeObject([]byte(`{"a": }`))
	assert.ErrorIs(t, err, rio.ErrDecode)

	o, err = rio.DecodeObject([]byte("{\"a\":1}\n\t "))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, o.Keys())

	for _, bad := range []string{
		`{"a":1} {"b":2} garbage`,
		`{"a":1}{"b":2}`,
		`{"a":1} x`,
		`{"a":1`,
	} {
		_, err = rio.DecodeObject([]byte(bad))
		assert.ErrorIs(t, err, rio.ErrDecode, bad)
	}
}

// TestLoadJSONFeedsShim loads variables and inspects them with the shim.
func TestLoadJSONFeedsShim(t *testing.T) {
	p := writeFile(t, "vars.json", `{"frame":{"a":1,"b":2,"c":3,"nrow":1,"ncol":3},"v":[5,3,3,7]}`)
	store := rshim.NewObject()

	names, err := rio.LoadJSON(p, store)
	require.NoError(t, err)
	assert.Equal(t, []string{"frame", "v"}, names)

	s, err := rshim.New(engine.New())
	require.NoError(t, err)

	frame, _ := store.Get("frame")
	d, err := s.Dim(frame)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, d)

	fn, err := s.Names(frame)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fn)

	v, _ := store.Get("v")
	mins, err := rshim.WhichMin(v.([]any))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, mins)
}

// TestLoadJSONInto calls explicit bindings and rejects unknown names.
func TestLoadJSONInto(t *testing.T) {
	p := writeFile(t, "vars.json", `{"a":1,"b":"two"}`)

	var a float64
	var b string
	err := rio.LoadJSONInto(p, rio.Bindings{
		"a": func(v any) error { a = v.(float64); return nil },
		"b": func(v any) error { b = v.(string); return nil },
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, "two", b)

	called := false
	err = rio.LoadJSONInto(p, rio.Bindings{"a": func(any) error { called = true; return nil }})
	assert.ErrorIs(t, err, rio.ErrUnboundVariable)
	assert.False(t, called)

	boom := errors.New("boom")
	err = rio.LoadJSONInto(p, rio.Bindings{
		"a": func(any) error { return boom },
		"b": func(any) error { return nil },
	})
	assert.ErrorIs(t, err, boom)

	err = rio.LoadJSONInto(filepath.Join(t.TempDir(), "none.json"), rio.Bindings{})
	assert.ErrorIs(t, err, rio.ErrRead)
}

// TestCreateJSONString encodes selected variables in the requested order.
func TestCreateJSONString(t *testing.T) {
	store := rshim.NewObject()
	store.Set("x", []any{1.0, 2.0})
	store.Set("y", "label")
	store.Set("z", true)

	got, err := rio.CreateJSONString(store, "z", "x")
	require.NoError(t, err)
	assert.Equal(t, `{"z":true,"x":[1,2]}`, got)

	_, err = rio.CreateJSONString(store, "nope")
	assert.ErrorIs(t, err, rio.ErrUnboundVariable)
}
