// Package monopath finds a minimum-cost monotone path through a grid of
// non-negative cell costs, moving only down or right from the top-left
// cell to the bottom-right cell.
//
// 🚀 What is a monotone path?
//
//	A walk (0,0) → … → (N-1,M-1) where each step is one row down or one
//	column right. Every such path visits exactly N+M-1 cells, so the
//	problem is a shortest path in a DAG and yields to dynamic programming:
//
//	  cost(r,c) = grid[r][c] + min(cost(r+1,c), cost(r,c+1))
//
//	with the destination's cost being its own cell value and the out-of-range
//	neighbour dropped on the last row and last column.
//
// ✨ Key features:
//   - Memoized mode: top-down recursion that fills the memo table lazily.
//   - Tabulated mode: bottom-up sweep producing the identical table.
//   - Deterministic reconstruction with a selectable tie-break (down by default).
//   - One memo table per Solver; Solve allocates a fresh Solver every call.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/gridpath/grid"
//	  "github.com/katalvlaran/gridpath/monopath"
//	)
//
//	g, err := grid.NewGrid([][]uint64{
//	  {100, 200, 1000, 0},
//	  {200, 100, 600, 0},
//	  {300, 1600, 100, 0},
//	})
//	res, err := monopath.Solve(g, nil) // DefaultOptions
//	fmt.Println(res.Cost, res.Path)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) for the memo table; Memoized mode also uses O(N+M) stack.
package monopath
