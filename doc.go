// Package gridpath finds minimum-cost monotone paths through rectangular
// grids of non-negative cell costs.
//
// 🚀 What is gridpath?
//
//	A small, zero-surprise library plus a command:
//		• grid/     — immutable N×M cost grid, coordinates, path validation & pricing
//		• monopath/ — memoized and tabulated solvers with deterministic path reconstruction
//		• cmd/gridpath — solves the built-in flower bed example and prints the path
//
// ✨ Why choose gridpath?
//
//   - Explicit "not yet computed" memo entries, no sentinel costs
//   - Overflow rejected at grid construction, never mid-recursion
//   - Pure Go, one memo table per solve
//
// Quick ASCII example (moves: ↓ and → only):
//
//	100   200   1000   0
//	 ↓
//	200 → 100 → 600 →  0
//	                   ↓
//	300   1600  100    0
//
// is the down-preferred optimal path of cost 1000 through the 3×4 example.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
