package rshim_test

import (
	"testing"

	"github.com/katalvlaran/rcompat/engine"
	"github.com/katalvlaran/rcompat/rshim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndex01Forms walks the single-axis form and the four pairings.
func TestIndex01Forms(t *testing.T) {
	s := newShim(t)

	cases := []struct {
		name string
		i    rshim.IndexArg
		j    []rshim.IndexArg
		want string
	}{
		{"num", rshim.Num(3), nil, "[2]"},
		{"label", rshim.Label("row"), nil, `["row"]`},
		{"agg", rshim.Agg{1, 3}, nil, "[[0 2]]"},
		{"num,num", rshim.Num(1), []rshim.IndexArg{rshim.Num(2)}, "[0, 1]"},
		{"num,label", rshim.Num(3), []rshim.IndexArg{rshim.Label("col")}, `[2, "col"]`},
		{"label,label", rshim.Label("row"), []rshim.IndexArg{rshim.Label("col")}, `["row", "col"]`},
		{"label,num", rshim.Label("row"), []rshim.IndexArg{rshim.Num(4)}, `["row", 3]`},
		{"agg,label", rshim.Agg{2}, []rshim.IndexArg{rshim.Label("c")}, `[[1], "c"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix, err := s.Index01(tc.i, tc.j...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ix.String())
		})
	}
}

// TestIndex01Axes inspects the descriptor rather than its rendering.
func TestIndex01Axes(t *testing.T) {
	s := newShim(t)

	ix, err := s.Index01(rshim.Num(3), rshim.Label("col"))
	require.NoError(t, err)
	require.Equal(t, 2, ix.Rank())
	assert.Equal(t, engine.AxisScalar, ix.Axis(0).Kind())
	assert.Equal(t, []int{2}, ix.Axis(0).Offsets())
	assert.Equal(t, "col", ix.Axis(1).LabelName())
}

// TestIndex01Errors covers unsupported kinds, arity and R position 0.
func TestIndex01Errors(t *testing.T) {
	s := newShim(t)

	_, err := s.Index01(nil)
	assert.ErrorIs(t, err, rshim.ErrInvalidIndexKind)

	_, err = s.Index01(rshim.Num(1), nil)
	assert.ErrorIs(t, err, rshim.ErrInvalidIndexKind)

	_, err = s.Index01(rshim.Num(1), rshim.Num(1), rshim.Num(1))
	assert.ErrorIs(t, err, rshim.ErrInvalidIndexKind)

	_, err = s.Index01(rshim.Num(0))
	assert.ErrorIs(t, err, engine.ErrOutOfRange)

	_, err = s.Index01(rshim.Agg{1, -2})
	assert.ErrorIs(t, err, engine.ErrOutOfRange)
}

// TestIndex01Subset reads R-indexed cells out of a labeled Dense.
func TestIndex01Subset(t *testing.T) {
	s := newShim(t)
	m, err := engine.FromRows([][]any{{1, "a"}, {2, "b"}, {3, "c"}},
		engine.WithRowNames("r1", "r2", "r3"), engine.WithColNames("n", "tag"))
	require.NoError(t, err)

	ix, err := s.Index01(rshim.Num(3), rshim.Label("tag"))
	require.NoError(t, err)
	got, err := s.Engine().Subset(m, ix)
	require.NoError(t, err)
	assert.Equal(t, "c", got)

	ix, err = s.Index01(rshim.Label("r1"), rshim.Num(1))
	require.NoError(t, err)
	got, err = s.Engine().Subset(m, ix)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	ix, err = s.Index01(rshim.Agg{1, 2})
	require.NoError(t, err)
	got, err = s.Engine().Subset([]string{"x", "y", "z"}, ix)
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, got)
}

// TestParseIndexArg maps dynamic values onto the three variants.
func TestParseIndexArg(t *testing.T) {
	cases := []struct {
		in   any
		want rshim.IndexArg
	}{
		{3.0, rshim.Num(3)},
		{2, rshim.Num(2)},
		{"col", rshim.Label("col")},
		{[]any{1.0, 2.0}, rshim.Agg{1, 2}},
		{[]int{4}, rshim.Agg{4}},
	}
	for _, tc := range cases {
		got, err := rshim.ParseIndexArg(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	for _, bad := range []any{true, nil, 1.5, []any{"a"}, map[string]any{}} {
		_, err := rshim.ParseIndexArg(bad)
		assert.ErrorIs(t, err, rshim.ErrInvalidIndexKind, "%v", bad)
	}
}
