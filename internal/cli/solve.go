package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/monopath"
)

// flowerBed is the built-in example: flowers per cell.
var flowerBed = [][]uint64{
	{100, 200, 1000, 0},
	{200, 100, 600, 0},
	{300, 1600, 100, 0},
}

// solverOptions maps validated flag values onto monopath.Options.
func solverOptions(opts *RootOptions) monopath.Options {
	o := monopath.DefaultOptions()
	if opts.Strategy == monopath.Tabulated.String() {
		o.Strategy = monopath.Tabulated
	}
	if opts.TieBreak == monopath.PreferRight.String() {
		o.TieBreak = monopath.PreferRight
	}
	return o
}

func runSolve(opts *RootOptions, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	formatter := &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}

	g, err := grid.NewGrid(flowerBed)
	if err != nil {
		return WrapExitError(ExitFailure, "build grid", err)
	}
	logger.Debug("grid loaded", "rows", g.Rows(), "cols", g.Cols())

	so := solverOptions(opts)
	logger.Debug("solving", "strategy", so.Strategy, "tie_break", so.TieBreak)

	res, err := monopath.Solve(g, &so)
	if err != nil {
		return WrapExitError(ExitFailure, "solve", err)
	}
	logger.Info("solved", "cost", res.Cost, "path_len", len(res.Path))

	return formatter.Result(res)
}
