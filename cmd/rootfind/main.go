// SPDX-License-Identifier: MIT

// Command rootfind solves scalar equations f(x) = 0 from the command line.
//
//	rootfind solve --method newton --f "x*x - 2" --df "2*x" --x0 1
//	rootfind solve --method bisection --f "math.Cos(x) - x" --a 0 --b 1
//	rootfind batch problems.yaml --workers 4 --format yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by subcommands.
type app struct {
	verbose bool
	logger  *zap.Logger

	// newLogger builds the logger once flags are parsed.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func newApp() *app {
	return &app{logger: zap.NewNop(), newLogger: productionLogger}
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func main() {
	if err := execute(newApp(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and flushes the logger on every exit path.
// cobra skips post-run hooks when RunE fails, so the flush lives here.
func execute(a *app, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	defer func() { _ = a.logger.Sync() }()

	return root.Execute()
}

// newRootCmd wires the command tree. Built per call so tests get fresh flags.
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "rootfind",
		Short: "Iterative scalar root finding (Newton, Secant, Bisection)",
		Long: `rootfind approximates a zero of f(x) with Newton's method (exact derivative),
the Secant variant (forward-difference derivative) or Bisection (sign-changing bracket).

Functions are Go expressions in x; the math package is available, e.g. "math.Exp(x) - 3".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging (one line per iteration)")

	root.AddCommand(newSolveCmd(a), newBatchCmd(a))

	return root
}
