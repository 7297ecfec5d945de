// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/rootfinder/problemset"
	"github.com/katalvlaran/rootfinder/rootfind"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		p           problemset.Problem
		method      string
		x0, lo, hi  float64
		maxIter     int
		rtol, stol  float64
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a single equation given by flags",
		Example: `  rootfind solve --method newton --f "x*x - 2" --df "2*x" --x0 1
  rootfind solve --method secant --f "math.Cos(x) - x" --x0 1 --h 1e-7
  rootfind solve --method bisection --f "x*x - 2" --a 0 --b 2 --stol 1e-12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Name = "cli"
			p.Method = problemset.Method(method)
			if cmd.Flags().Changed("x0") {
				p.X0 = &x0
			}
			if cmd.Flags().Changed("a") {
				p.A = &lo
			}
			if cmd.Flags().Changed("b") {
				p.B = &hi
			}
			p.MaxIterations = &maxIter
			p.ResidualTol, p.StepTol = &rtol, &stol
			p.Resolve()
			if err := p.Validate(); err != nil {
				return err
			}

			log := a.logger.With(zap.String("method", method))
			f, err := p.Finder(func(it rootfind.Iterate) error {
				log.Debug("iterate",
					zap.Int("iteration", it.Iteration),
					zap.Float64("estimate", it.Estimate),
					zap.Float64("residual", it.Residual),
					zap.Float64("step", it.Step))
				return nil
			})
			if err != nil {
				return err
			}

			_, err = f.Solve()
			if err != nil {
				log.Error("solve failed", zap.Error(err))
				return err
			}
			log.Debug("solved", zap.String("status", f.Status().String()))

			out := cmd.OutOrStdout()
			fmt.Fprint(out, f)
			fmt.Fprintf(out, " - status           : %s\n", f.Status())
			if showHistory {
				for i, x := range f.History() {
					fmt.Fprintf(out, "%4d  %.17g\n", i, x)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&method, "method", string(problemset.MethodSecant), "newton | secant | bisection")
	flags.StringVar(&p.F, "f", "", "target function, a Go expression in x")
	flags.StringVar(&p.DF, "df", "", "exact derivative (newton only)")
	flags.Float64Var(&x0, "x0", 0, "initial guess (newton, secant; required)")
	flags.Float64Var(&lo, "a", 0, "bracket start (bisection)")
	flags.Float64Var(&hi, "b", 0, "bracket end (bisection)")
	flags.Float64Var(&p.DifferenceStep, "h", rootfind.DefaultDifferenceStep, "forward-difference step (secant)")
	flags.IntVar(&maxIter, "max-iter", rootfind.DefaultMaxIterations, "iteration cap, at least 1")
	flags.Float64Var(&rtol, "rtol", rootfind.DefaultResidualTol, "residual tolerance")
	flags.Float64Var(&stol, "stol", rootfind.DefaultStepTol, "step tolerance")
	flags.BoolVar(&showHistory, "history", false, "print every estimate")
	_ = cmd.MarkFlagRequired("f")

	return cmd
}
