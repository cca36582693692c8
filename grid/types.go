package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCostOverflow indicates a path sum could exceed the uint64 range.
	ErrCostOverflow = errors.New("grid: accumulated path cost may overflow uint64")
	// ErrInvalidPath indicates a path that is not a monotone origin-to-destination walk.
	ErrInvalidPath = errors.New("grid: invalid monotone path")
)

// Coord identifies a grid cell. Row grows downwards, Col grows to the right.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Down returns the cell one row below c.
func (c Coord) Down() Coord { return Coord{Row: c.Row + 1, Col: c.Col} }

// Right returns the cell one column right of c.
func (c Coord) Right() Coord { return Coord{Row: c.Row, Col: c.Col + 1} }

// Grid is an immutable N×M table of cell costs.
// cells[row][col] holds the cost of Coord{row, col}.
type Grid struct {
	rows, cols int
	cells      [][]uint64
}
