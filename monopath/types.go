package monopath

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for solver operations.
var (
	// ErrNilGrid indicates a Solver was requested for a nil grid.
	ErrNilGrid = errors.New("monopath: grid must not be nil")

	// ErrOutOfBounds indicates a start coordinate outside the grid.
	ErrOutOfBounds = errors.New("monopath: coordinate out of grid bounds")

	// ErrBadOption indicates an unknown Strategy or TieBreak value.
	ErrBadOption = errors.New("monopath: invalid option value")
)

// Strategy controls how the memo table is filled.
//
//   - Memoized  — top-down recursion; only cells reachable from the queried
//     start are computed. Recursion depth is at most N+M-1.
//
//   - Tabulated — bottom-up sweep from the destination row by row.
//     Computes every cell, no recursion.
type Strategy int

const (
	// Memoized fills the table by recursion with memoization.
	Memoized Strategy = iota

	// Tabulated fills the table by a bottom-up sweep.
	Tabulated
)

// String returns the flag spelling of the strategy.
func (s Strategy) String() string {
	switch s {
	case Memoized:
		return "memo"
	case Tabulated:
		return "table"
	default:
		return "unknown"
	}
}

// TieBreak selects the move taken during reconstruction when going down
// and going right lead to equal cost-to-destination.
type TieBreak int

const (
	// PreferDown moves down on ties. Down is also taken whenever the
	// down value is not strictly greater than the right value.
	PreferDown TieBreak = iota

	// PreferRight moves right on ties.
	PreferRight
)

// String returns the flag spelling of the tie-break.
func (t TieBreak) String() string {
	switch t {
	case PreferDown:
		return "down"
	case PreferRight:
		return "right"
	default:
		return "unknown"
	}
}

// Options configures Solve.
//
// Fields:
//   - Strategy — Memoized (default) or Tabulated.
//   - TieBreak — PreferDown (default) or PreferRight.
//
// Example:
//
//	opts := monopath.DefaultOptions()
//	opts.TieBreak = monopath.PreferRight
//	res, err := monopath.Solve(g, &opts)
type Options struct {
	Strategy Strategy
	TieBreak TieBreak
}

// DefaultOptions returns Options{Strategy: Memoized, TieBreak: PreferDown}.
func DefaultOptions() Options {
	return Options{
		Strategy: Memoized,
		TieBreak: PreferDown,
	}
}

// validate reports ErrBadOption for out-of-range enum values.
func (o Options) validate() error {
	if o.Strategy != Memoized && o.Strategy != Tabulated {
		return ErrBadOption
	}
	if o.TieBreak != PreferDown && o.TieBreak != PreferRight {
		return ErrBadOption
	}

	return nil
}

// Result is the outcome of Solve: the minimal total cost and one path
// achieving it, origin first.
type Result struct {
	Cost uint64
	Path []grid.Coord
}
