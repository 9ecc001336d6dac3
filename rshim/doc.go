// Package rshim lets code written against R's array and indexing model run
// on the host array engine.
//
// 🚀 What does it translate?
//
//	R indexes from 1 and lets either axis be a label; the engine indexes
//	from 0 and resolves labels itself. Index01 bridges the two. Dim, Length,
//	Names, Nrow and Ncol answer shape questions the way R does, honouring
//	explicit nrow/ncol/names attributes on object-like values. Which,
//	WhichMin and WhichMax return 1-based positions with R's tie handling,
//	and Range is inclusive at both ends.
//
// ✨ Values:
//
//   - array-like: any Go slice, slices of slices, *engine.Dense
//   - object-like: *Object (ordered keys) or map[string]any (sorted keys)
//   - reserved keys "names", "nrow", "ncol" never count as data
//
// ⚙️ Usage:
//
//	s, _ := rshim.New(engine.New())
//	ix, _ := s.Index01(rshim.Num(3), rshim.Label("col")) // [2, "col"]
//	pos, _ := rshim.WhichMin([]any{5, 3, 3, 7})         // [2 3]
//
// All operations are synchronous and pure; inputs are never mutated.
package rshim
