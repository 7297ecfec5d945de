// SPDX-License-Identifier: MIT

// Package problemset loads batches of root-finding problems from YAML.
//
// File layout:
//
//	defaults:
//	  max_iterations: 1000
//	  residual_tolerance: 1e-6
//	  step_tolerance: 1e-6
//	problems:
//	  - name: sqrt2
//	    method: newton          # newton | secant | bisection
//	    f: "x*x - 2"            # Go expression in x, math.* allowed
//	    df: "2*x"               # newton only
//	    x0: 1
//	  - name: sqrt2-bracket
//	    method: bisection
//	    f: "x*x - 2"
//	    a: 0
//	    b: 2
//	    step_tolerance: 1e-9    # per-problem override
//
// Unset limits fall back to the defaults block, then to the rootfind defaults.
// An explicit max_iterations below 1 is rejected rather than inherited.
// newton and secant need x0; there is no implicit starting point.
package problemset

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfinder/expr"
	"github.com/katalvlaran/rootfinder/rootfind"
)

// Method selects the strategy.
type Method string

const (
	MethodNewton    Method = "newton"
	MethodSecant    Method = "secant"
	MethodBisection Method = "bisection"
)

// Limits are the iteration cap and tolerances. Nil fields mean "inherit";
// a set field, including an explicit zero, is kept as written.
type Limits struct {
	MaxIterations *int     `yaml:"max_iterations,omitempty"`
	ResidualTol   *float64 `yaml:"residual_tolerance,omitempty"`
	StepTol       *float64 `yaml:"step_tolerance,omitempty"`
}

// Problem is one entry of a set.
type Problem struct {
	Name           string   `yaml:"name"`
	Method         Method   `yaml:"method"`
	F              string   `yaml:"f"`
	DF             string   `yaml:"df,omitempty"`
	X0             *float64 `yaml:"x0,omitempty"`
	A              *float64 `yaml:"a,omitempty"`
	B              *float64 `yaml:"b,omitempty"`
	DifferenceStep float64  `yaml:"difference_step,omitempty"`
	Limits         `yaml:",inline"`
}

// Set is a parsed problem file.
type Set struct {
	Defaults Limits    `yaml:"defaults"`
	Problems []Problem `yaml:"problems"`
}

// Load reads and parses a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problemset: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, rejects unknown keys, resolves inherited limits and
// validates every problem.
func Parse(data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Set
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("problemset: decode: %w", err)
	}
	if len(s.Problems) == 0 {
		return nil, ErrNoProblems
	}

	seen := make(map[string]struct{}, len(s.Problems))
	for i := range s.Problems {
		p := &s.Problems[i]
		p.Limits = p.Limits.inherit(s.Defaults)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("problem #%d: %w", i+1, err)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return &s, nil
}

// inherit fills unset fields from parent, then from the rootfind defaults.
func (l Limits) inherit(parent Limits) Limits {
	if l.MaxIterations == nil {
		l.MaxIterations = parent.MaxIterations
	}
	if l.MaxIterations == nil {
		n := rootfind.DefaultMaxIterations
		l.MaxIterations = &n
	}
	if l.ResidualTol == nil {
		l.ResidualTol = parent.ResidualTol
	}
	if l.ResidualTol == nil {
		l.ResidualTol = ptr(rootfind.DefaultResidualTol)
	}
	if l.StepTol == nil {
		l.StepTol = parent.StepTol
	}
	if l.StepTol == nil {
		l.StepTol = ptr(rootfind.DefaultStepTol)
	}

	return l
}

// Resolve fills unset limits from the rootfind defaults. Problems built by
// hand (the CLI) call it; Parse does it for file-based problems.
func (p *Problem) Resolve() {
	p.Limits = p.Limits.inherit(Limits{})
}

// Validate checks the static shape of the problem. Expressions are compiled
// later, by Finder.
func (p *Problem) Validate() error {
	if p.Name == "" {
		return ErrMissingName
	}
	if p.F == "" {
		return fmt.Errorf("%w (%s)", ErrMissingFunction, p.Name)
	}

	switch p.Method {
	case MethodNewton:
		if p.DF == "" {
			return fmt.Errorf("%w: %s: newton requires df", ErrMethodMismatch, p.Name)
		}
		if p.X0 == nil {
			return fmt.Errorf("%w (%s)", ErrMissingInitialGuess, p.Name)
		}
	case MethodSecant:
		if p.DF != "" {
			return fmt.Errorf("%w: %s: secant uses a finite difference, drop df or use newton", ErrMethodMismatch, p.Name)
		}
		if p.X0 == nil {
			return fmt.Errorf("%w (%s)", ErrMissingInitialGuess, p.Name)
		}
	case MethodBisection:
		if p.DF != "" {
			return fmt.Errorf("%w: %s: bisection takes no df", ErrMethodMismatch, p.Name)
		}
		if p.A == nil || p.B == nil {
			return fmt.Errorf("%w (%s)", ErrMissingBracket, p.Name)
		}
	default:
		return fmt.Errorf("%w: %q (%s)", ErrUnknownMethod, p.Method, p.Name)
	}

	if !(p.DifferenceStep >= 0) || math.IsInf(p.DifferenceStep, 1) {
		return fmt.Errorf("%w: %s: difference_step %g", ErrBadLimit, p.Name, p.DifferenceStep)
	}
	if p.MaxIterations != nil && *p.MaxIterations < 1 {
		return fmt.Errorf("%w: %s: max_iterations %d", ErrBadLimit, p.Name, *p.MaxIterations)
	}
	if (p.ResidualTol != nil && *p.ResidualTol < 0) || (p.StepTol != nil && *p.StepTol < 0) {
		return fmt.Errorf("%w: %s: negative tolerance", ErrBadLimit, p.Name)
	}

	return nil
}

// Params compiles f and returns the convergence bundle for the problem.
func (p *Problem) Params() (rootfind.Params, error) {
	f, err := expr.Compile(p.F)
	if err != nil {
		return rootfind.Params{}, fmt.Errorf("%s: f: %w", p.Name, err)
	}
	l := p.Limits.inherit(Limits{})

	return rootfind.NewParams(f, *l.MaxIterations, *l.ResidualTol, *l.StepTol), nil
}

// Finder compiles the expressions and builds the matching strategy.
// observer may be nil.
func (p *Problem) Finder(observer rootfind.Observer) (rootfind.Finder, error) {
	params, err := p.Params()
	if err != nil {
		return nil, err
	}
	params.Observer = observer

	switch p.Method {
	case MethodNewton:
		df, err := expr.Compile(p.DF)
		if err != nil {
			return nil, fmt.Errorf("%s: df: %w", p.Name, err)
		}
		if p.X0 == nil {
			return nil, fmt.Errorf("%w (%s)", ErrMissingInitialGuess, p.Name)
		}
		return rootfind.NewNewton(params, *p.X0, rootfind.WithDerivative(df)), nil
	case MethodSecant:
		var opts []rootfind.Option
		if p.DifferenceStep > 0 {
			opts = append(opts, rootfind.WithDifferenceStep(p.DifferenceStep))
		}
		if p.X0 == nil {
			return nil, fmt.Errorf("%w (%s)", ErrMissingInitialGuess, p.Name)
		}
		return rootfind.NewNewton(params, *p.X0, opts...), nil
	case MethodBisection:
		if p.A == nil || p.B == nil {
			return nil, fmt.Errorf("%w (%s)", ErrMissingBracket, p.Name)
		}
		return rootfind.NewBisection(params, *p.A, *p.B), nil
	}

	return nil, fmt.Errorf("%w: %q (%s)", ErrUnknownMethod, p.Method, p.Name)
}

func ptr(v float64) *float64 { return &v }
