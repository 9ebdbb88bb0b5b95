// Command permuted prints the smallest positive integer x such that
// x, 2x, 3x, 4x, 5x and 6x contain the same digits.
//
// It takes no arguments. Set PERMUTED_TRACE=1 to log search progress to
// stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gitrdm/permuted/pkg/permuted"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "permuted",
		Usage:     "find the smallest x whose multiples 1x..6x share the same digits",
		Version:   permuted.GetVersion(),
		Writer:    stdout,
		ErrWriter: stderr,
		Action:    solveCmd,
	}
}

func solveCmd(c *cli.Context) error {
	_, err := fmt.Fprintln(c.App.Writer, permuted.Solve())
	return err
}
