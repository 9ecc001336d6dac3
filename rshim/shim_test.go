package rshim_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/rcompat/engine"
	"github.com/katalvlaran/rcompat/rshim"
	"github.com/stretchr/testify/assert"
)

// TestPrintReturnsValue writes the value and hands it back unchanged.
func TestPrintReturnsValue(t *testing.T) {
	var buf bytes.Buffer
	s := newShim(t, rshim.WithOutput(&buf))

	got := s.Print([]int{1, 2})
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, "[1 2]\n", buf.String())
}

// TestEngineAccessor exposes the injected engine.
func TestEngineAccessor(t *testing.T) {
	e := engine.New()
	s, err := rshim.New(e)
	assert.NoError(t, err)
	assert.Same(t, e, s.Engine())
}
