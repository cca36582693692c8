// Package grid holds an immutable rectangular grid of non-negative cell
// costs and the coordinate helpers shared by the monotone path solvers.
//
// What:
//
//   - Grid wraps a rectangular [][]uint64 of costs, deep-copied on construction.
//   - Coord addresses a cell by (Row, Col), 0-indexed from the top-left.
//   - ValidatePath / PathCost check and price a down/right-only path.
//
// Why:
//
//   - A private copy means the caller may reuse or mutate its input slice
//     while a solver still holds the Grid.
//   - Overflow of the accumulated cost is rejected up front, so the solver
//     never has to check sums mid-recursion.
//
// Complexity:
//
//   - NewGrid:      O(N×M) time and memory.
//   - At, InBounds: O(1).
//   - PathCost:     O(len(path)).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCostOverflow: the largest cell cost times (N+M-1) exceeds uint64.
//   - ErrInvalidPath: a path is empty, leaves the grid, does not join origin
//     to destination, or takes a step other than one down or one right.
package grid
