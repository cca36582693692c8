package monopath_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/monopath"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Walk across a flower bed from the top-left to the bottom-right corner,
//	stepping only down or right, trampling as few flowers as possible.
//
//	  100  200  1000  0
//	  200  100  600   0
//	  300  1600 100   0
//
// Options: defaults (Memoized, PreferDown).
//
// At (0,0) both neighbours cost 900 to the destination, so the walk goes down.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleSolve() {
	g, _ := grid.NewGrid([][]uint64{
		{100, 200, 1000, 0},
		{200, 100, 600, 0},
		{300, 1600, 100, 0},
	})

	res, err := monopath.Solve(g, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("Optimal value:", res.Cost)
	fmt.Println("Path:", res.Path)
	// Output:
	// Optimal value: 1000
	// Path: [(0,0) (1,0) (1,1) (1,2) (1,3) (2,3)]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSolve_preferRight
// //////////////////////////////////////////////////////////////////////////////
//
// Same grid solved bottom-up with ties resolved to the right. The cost is
// unchanged; only the first step differs.
func ExampleSolve_preferRight() {
	g := grid.MustGrid([][]uint64{
		{100, 200, 1000, 0},
		{200, 100, 600, 0},
		{300, 1600, 100, 0},
	})
	opts := monopath.DefaultOptions()
	opts.Strategy = monopath.Tabulated
	opts.TieBreak = monopath.PreferRight

	res, _ := monopath.Solve(g, &opts)
	fmt.Println(res.Cost, res.Path)
	// Output:
	// 1000 [(0,0) (0,1) (1,1) (1,2) (1,3) (2,3)]
}

// ExampleSolver_CostFrom queries cost-to-destination from an interior cell.
func ExampleSolver_CostFrom() {
	s, _ := monopath.NewSolver(grid.MustGrid([][]uint64{
		{1, 3, 1},
		{1, 5, 1},
		{4, 2, 1},
	}))
	fromOrigin, _ := s.CostFrom(grid.Coord{Row: 0, Col: 0})
	fromCenter, _ := s.CostFrom(grid.Coord{Row: 1, Col: 1})
	fmt.Println(fromOrigin, fromCenter)
	// Output:
	// 7 7
}
