// Package engine is the array engine the R compatibility shim runs on.
//
// What & Why:
//
//	The shim translates R's 1-based, name-aware indexing into the 0-based,
//	positional world of a host array model. This package is that host model:
//	a heterogeneous row-major Dense matrix with optional row/column labels,
//	a native shape query for Go slices, index descriptors and a subset
//	operation that reads positions or labels out of a value.
//
// The contract consumed by rshim:
//
//	Size(v)          native shape ([r,c] for 2-D values, [n] for flat slices)
//	Index(a[, b])    build a 1- or 2-axis descriptor; negative offsets rejected
//	Subtract(a, k)   elementwise decrement of a numeric axis
//	Subset(v, idx)   positional or label read; scalar axes drop a dimension
//
// Errors are package sentinels (errors.go) matched with errors.Is.
//
// Complexity:
//
//	Size is O(n) over the outer slice; Index and Subtract are O(k) in the
//	number of positions; Subset is O(rows*cols) of the selection.
package engine
