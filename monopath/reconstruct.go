package monopath

import "github.com/katalvlaran/gridpath/grid"

// Path reconstructs one optimal path from the origin to the destination
// using the memo table, solving the origin first if needed.
//
// Walk: at each cell, the last row forces right and the last column forces
// down; otherwise the neighbour with the strictly smaller cost-to-destination
// wins and tie selects the move on equality.
//
// The returned path has N+M-1 coordinates and its cost equals
// CostFrom(origin).
// Returns ErrBadOption for an unknown tie value.
func (s *Solver) Path(tie TieBreak) ([]grid.Coord, error) {
	if tie != PreferDown && tie != PreferRight {
		return nil, ErrBadOption
	}
	s.costFrom(s.g.Origin())

	last := s.g.Destination()
	path := make([]grid.Coord, 0, last.Row+last.Col+1)
	cur := s.g.Origin()
	for cur != last {
		path = append(path, cur)
		switch {
		case cur.Row == last.Row:
			cur = cur.Right()
		case cur.Col == last.Col:
			cur = cur.Down()
		default:
			cur = s.step(cur, tie)
		}
	}
	path = append(path, last)

	return path, nil
}

// step picks the interior move from c. Both neighbours lie on some path
// from the origin's solve, so their memo entries are known.
func (s *Solver) step(c grid.Coord, tie TieBreak) grid.Coord {
	down := s.costFrom(c.Down())
	right := s.costFrom(c.Right())
	switch {
	case down < right:
		return c.Down()
	case right < down:
		return c.Right()
	case tie == PreferRight:
		return c.Right()
	default:
		return c.Down()
	}
}
