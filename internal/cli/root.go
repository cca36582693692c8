package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/monopath"
)

// RootOptions holds the flags of the gridpath command.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "yaml"
	TieBreak string // "down" | "right"
	Strategy string // "memo" | "table"
}

// Allowed flag values.
var (
	ValidFormats    = []string{"text", "yaml"}
	ValidTieBreaks  = []string{monopath.PreferDown.String(), monopath.PreferRight.String()}
	ValidStrategies = []string{monopath.Memoized.String(), monopath.Tabulated.String()}
)

// NewRootCommand creates the gridpath command. It takes no arguments and
// solves the built-in flower bed example.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gridpath",
		Short: "Minimum-cost monotone path through a grid",
		Long: `Find the path from the top-left to the bottom-right cell of the built-in
3x4 flower bed, moving only down or right, that tramples the fewest flowers.

Prints the optimal value followed by the visited cells in order.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return WrapExitError(ExitCommandError, "bad arguments", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := checkChoice("format", opts.Format, ValidFormats); err != nil {
				return err
			}
			if err := checkChoice("tie-break", opts.TieBreak, ValidTieBreaks); err != nil {
				return err
			}
			return checkChoice("strategy", opts.Strategy, ValidStrategies)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, cmd)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "bad flags", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output on stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")
	cmd.PersistentFlags().StringVar(&opts.TieBreak, "tie-break", "down", "move taken on equal cost (down|right)")
	cmd.PersistentFlags().StringVar(&opts.Strategy, "strategy", "memo", "how the memo table is filled (memo|table)")

	return cmd
}

// checkChoice returns an ExitCommandError unless value is one of allowed.
func checkChoice(flag, value string, allowed []string) error {
	for _, a := range allowed {
		if a == value {
			return nil
		}
	}
	return NewExitError(ExitCommandError, fmt.Sprintf("invalid %s %q: must be one of %v", flag, value, allowed))
}

// newLogger returns a debug-level text logger on w when verbose is set,
// and a discarding logger otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
