package monopath

import "github.com/katalvlaran/gridpath/grid"

// Solve computes the minimum-cost monotone path through g.
// Returns (result, error).
//
// opts may be nil, meaning DefaultOptions(). Each call allocates its own
// Solver, so the memo table never outlives the call.
//
// Errors:
//   - ErrNilGrid   — g is nil.
//   - ErrBadOption — unknown Strategy or TieBreak.
//
// Example:
//
//	res, err := Solve(g, nil)
//	fmt.Println(res.Cost, res.Path)
func Solve(g *grid.Grid, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	s, err := NewSolver(g)
	if err != nil {
		return nil, err
	}

	var cost uint64
	if o.Strategy == Tabulated {
		cost = s.Tabulate()
	} else {
		cost = s.costFrom(g.Origin())
	}

	path, err := s.Path(o.TieBreak)
	if err != nil {
		return nil, err
	}

	return &Result{Cost: cost, Path: path}, nil
}
