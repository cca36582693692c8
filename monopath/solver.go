package monopath

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// entry is one memo cell. known distinguishes "not computed yet" from
// every legal cost, including zero.
type entry struct {
	cost  uint64
	known bool
}

// Solver owns the memo table for one grid. It is not safe for concurrent
// use. The table is released with the Solver.
type Solver struct {
	g    *grid.Grid
	memo [][]entry
}

// NewSolver allocates a Solver with an empty memo table sized to g.
// Returns ErrNilGrid if g is nil.
// Complexity: O(N·M) memory.
func NewSolver(g *grid.Grid) (*Solver, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	memo := make([][]entry, g.Rows())
	for r := range memo {
		memo[r] = make([]entry, g.Cols())
	}

	return &Solver{g: g, memo: memo}, nil
}

// CostFrom returns the minimum sum of cell costs along any down/right path
// from start to the destination, both endpoints included. Results are
// memoized: a cell is computed at most once per Solver.
// Returns ErrOutOfBounds if start is outside the grid.
//
// Algorithm:
//  1. Destination: its own cost.
//  2. Known memo entry: returned as is.
//  3. Otherwise the cell cost plus the smaller of the valid neighbours'
//     costs (down if row < N-1, right if col < M-1), stored before return.
func (s *Solver) CostFrom(start grid.Coord) (uint64, error) {
	if !s.g.InBounds(start) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}

	return s.costFrom(start), nil
}

// costFrom is the recursive core of CostFrom; start must be in bounds.
func (s *Solver) costFrom(c grid.Coord) uint64 {
	e := &s.memo[c.Row][c.Col]
	if e.known {
		return e.cost
	}

	here := s.g.At(c)
	var best uint64
	switch last := s.g.Destination(); {
	case c == last:
		best = here
	case c.Row == last.Row:
		best = here + s.costFrom(c.Right())
	case c.Col == last.Col:
		best = here + s.costFrom(c.Down())
	default:
		best = here + min(s.costFrom(c.Down()), s.costFrom(c.Right()))
	}

	*e = entry{cost: best, known: true}

	return best
}

// Tabulate fills the whole memo table bottom-up, from the destination
// towards the origin, and returns the origin's cost. Afterwards every
// CostFrom call is a memo hit.
// Complexity: O(N·M) time, no recursion.
func (s *Solver) Tabulate() uint64 {
	last := s.g.Destination()
	for r := last.Row; r >= 0; r-- {
		for c := last.Col; c >= 0; c-- {
			here := s.g.At(grid.Coord{Row: r, Col: c})
			var best uint64
			switch {
			case r == last.Row && c == last.Col:
				best = here
			case r == last.Row:
				best = here + s.memo[r][c+1].cost
			case c == last.Col:
				best = here + s.memo[r+1][c].cost
			default:
				best = here + min(s.memo[r+1][c].cost, s.memo[r][c+1].cost)
			}
			s.memo[r][c] = entry{cost: best, known: true}
		}
	}

	return s.memo[0][0].cost
}

// Known reports whether the cost-to-destination of c has been computed.
func (s *Solver) Known(c grid.Coord) bool {
	return s.g.InBounds(c) && s.memo[c.Row][c.Col].known
}
