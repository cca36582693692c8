// Command gridpath prints the minimum-cost down/right path through the
// built-in 3x4 flower bed.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
