// SPDX-License-Identifier: MIT

// Package rootfind finds a zero of a continuous real function of one real
// variable by iteration, under an iteration cap and two tolerances.
//
// 🚀 Strategies
//
//	Newton    — x ← x − f(x)/f'(x) with an exact derivative (WithDerivative).
//	Secant    — the same update with f' replaced by the forward difference
//	            (f(x+h) − f(x)) / h, fixed h (WithDifferenceStep).
//	Bisection — halves a sign-changing bracket [a, b].
//
// All three satisfy the Finder interface and share one loop: at least one
// update is always performed, and the loop continues while
//
//	iterations < MaxIterations  &&  step > StepTol  &&  residual > ResidualTol
//
// ✨ Reading the result
//
//	x, err := f.Solve()    // final estimate (+ error for bad input)
//	f.Iterations()         // iterations performed
//	f.Residual()           // |f(x)|
//	f.History()            // every estimate, oldest first
//	f.Status()             // converged-residual / converged-step / max-iterations / ...
//	fmt.Print(f)           // "<Name> method" + three labeled lines
//
// Exhausting MaxIterations is not an error: Solve returns the last estimate
// and Status reports StatusMaxIterations.
//
// ⚙️ Usage:
//
//	p := rootfind.NewParams(func(x float64) float64 { return x*x - 2 }, 100, 1e-10, 1e-10)
//
//	newton := rootfind.NewNewton(p, 1, rootfind.WithDerivative(func(x float64) float64 { return 2 * x }))
//	secant := rootfind.NewNewton(p, 1)
//	bisect := rootfind.NewBisection(p, 0, 2)
//
// Errors:
//   - ErrInvalidBracket      — Bisection bracket without a sign change.
//   - ErrSingularDerivative  — zero or non-finite f', or non-finite Δx.
//   - ErrStopped             — Params.Observer returned an error.
//   - ErrNilFunction, ErrInvalidMaxIterations, ErrInvalidTolerance — bad Params.
//
// Concurrency: a finder is single-use and not safe for concurrent Solve calls.
// Separate finders share nothing and may run in parallel.
package rootfind
