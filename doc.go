// Package rcompat runs code written against R's array and indexing model
// on a generic array substrate.
//
// 🚀 What is in the box?
//
//	engine/     the array engine: heterogeneous row-major Dense, shape
//	            query, index descriptors, positional and label subset
//	rshim/      the R layer: Dim, Length, Names, Nrow/Ncol, Index01,
//	            Which/WhichMin/WhichMax, Rep, Range
//	rio/        file and JSON variable glue with explicit bindings
//	cmd/rshim/  command-line front end over a JSON variable file
//
// ✨ Why a shim?
//
//   - R counts from 1, the engine from 0: Index01 translates every axis
//   - R values carry nrow/ncol/names attributes: Dim and Names honour them
//   - R's which.min/which.max report every tied position: so do these
//
// Quick example:
//
//	s, _ := rshim.New(engine.New())
//	ix, _ := s.Index01(rshim.Num(3), rshim.Label("col")) // [2, "col"]
//	v, _ := s.Engine().Subset(frame, ix)
//
//	go get github.com/katalvlaran/rcompat
package rcompat
