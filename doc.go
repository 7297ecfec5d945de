// SPDX-License-Identifier: MIT

// Package rootfinder is a small toolkit for iterative scalar root finding:
// given a continuous f: ℝ → ℝ it approximates an x with f(x) = 0 under an
// iteration cap and residual/step tolerances.
//
// 🚀 What is inside?
//
//	rootfind/    — the engine: Finder interface, Newton, Secant, Bisection
//	expr/        — compile "x*x - 2"-style Go expressions into functions
//	problemset/  — YAML problem files → ready-to-run finders
//	batch/       — solve many independent problems concurrently
//	cmd/rootfind — CLI: `rootfind solve ...`, `rootfind batch FILE`
//
// ✨ Quick start:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	n := rootfind.NewNewton(rootfind.DefaultParams(f), 1,
//		rootfind.WithDerivative(func(x float64) float64 { return 2 * x }))
//	x, err := n.Solve() // 1.41421356..., 4 iterations
//	fmt.Print(n)        // "Newton method" + root / # iterations / residual
//
// Non-goals: multi-dimensional systems, symbolic differentiation, guaranteed
// global convergence, arbitrary precision.
//
//	go get github.com/katalvlaran/rootfinder
package rootfinder
