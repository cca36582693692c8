package grid

import "fmt"

// ValidatePath checks that path is a monotone walk from Origin to
// Destination: every coordinate in bounds and every step exactly one
// row down or one column right. A valid path has N+M-1 coordinates.
// Errors wrap ErrInvalidPath.
func (g *Grid) ValidatePath(path []Coord) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if path[0] != g.Origin() {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, path[0], g.Origin())
	}
	if last := path[len(path)-1]; last != g.Destination() {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, g.Destination())
	}
	for i, c := range path {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: step %d at %v is out of bounds", ErrInvalidPath, i, c)
		}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if c != prev.Down() && c != prev.Right() {
			return fmt.Errorf("%w: step %d from %v to %v is not down or right", ErrInvalidPath, i, prev, c)
		}
	}

	return nil
}

// PathCost validates path and returns the sum of the costs it visits,
// both endpoints included.
// Complexity: O(len(path)).
func (g *Grid) PathCost(path []Coord) (uint64, error) {
	if err := g.ValidatePath(path); err != nil {
		return 0, err
	}
	var sum uint64
	for _, c := range path {
		sum += g.At(c)
	}

	return sum, nil
}
