package engine_test

import (
	"fmt"

	"github.com/katalvlaran/rcompat/engine"
)

// ExampleEngine_Subset reads a labeled cell and a column out of a Dense.
func ExampleEngine_Subset() {
	e := engine.New()
	m, _ := engine.FromRows([][]any{{1.5, "a"}, {2.5, "b"}}, engine.WithColNames("x", "tag"))

	ix, _ := e.Index(engine.Scalar(1), engine.Label("tag"))
	cell, _ := e.Subset(m, ix)
	fmt.Println(ix, cell)

	ix, _ = e.Index(engine.Positions(0, 1), engine.Scalar(0))
	col, _ := e.Subset(m, ix)
	fmt.Println(ix, col)

	// Output:
	// [1, "tag"] b
	// [[0 1], 0] [1.5 2.5]
}
