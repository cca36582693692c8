package grid

import (
	"math/bits"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of costs.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if costs has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrCostOverflow if
// the largest cost summed over a full path (N+M-1 cells) overflows uint64.
// Algorithmic complexity: O(N×M) time and memory.
func NewGrid(costs [][]uint64) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	n, m := len(costs), len(costs[0])
	for _, row := range costs {
		if len(row) != m {
			return nil, ErrNonRectangular
		}
	}

	// Deep copy to prevent external mutation, tracking the maximum cost.
	var peak uint64
	cells := make([][]uint64, n)
	for r := 0; r < n; r++ {
		cells[r] = make([]uint64, m)
		copy(cells[r], costs[r])
		for _, v := range cells[r] {
			if v > peak {
				peak = v
			}
		}
	}

	// Every monotone path visits exactly n+m-1 cells.
	if hi, _ := bits.Mul64(peak, uint64(n+m-1)); hi != 0 {
		return nil, ErrCostOverflow
	}

	return &Grid{rows: n, cols: m, cells: cells}, nil
}

// MustGrid is like NewGrid but panics on error. Intended for fixed,
// known-good inputs such as package-level examples.
func MustGrid(costs [][]uint64) *Grid {
	g, err := NewGrid(costs)
	if err != nil {
		panic(err)
	}

	return g
}

// Rows returns N, the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns M, the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Origin returns the top-left cell (0,0).
func (g *Grid) Origin() Coord { return Coord{} }

// Destination returns the bottom-right cell (N-1,M-1).
func (g *Grid) Destination() Coord {
	return Coord{Row: g.rows - 1, Col: g.cols - 1}
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the cost of cell c. It panics if c is out of range.
// Complexity: O(1).
func (g *Grid) At(c Coord) uint64 {
	return g.cells[c.Row][c.Col]
}

// Costs returns a copy of the underlying cost table.
func (g *Grid) Costs() [][]uint64 {
	out := make([][]uint64, g.rows)
	for r := range g.cells {
		out[r] = make([]uint64, g.cols)
		copy(out[r], g.cells[r])
	}

	return out
}
