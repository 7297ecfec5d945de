// SPDX-License-Identifier: MIT
// Package: rootfinder/rootfind
//
// options.go — functional options for the Newton/Secant strategy.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Solve itself never panics.
//   • Every option changes behavior: WithDerivative switches the strategy to
//     "Newton", WithDifferenceStep tunes the "Secant" forward difference.

package rootfind

import (
	"fmt"
	"math"
)

// Option customizes a Newton finder before it is returned by NewNewton.
type Option func(*newtonConfig)

// newtonConfig is the resolved option set.
type newtonConfig struct {
	df Func    // exact derivative; nil selects the forward difference
	h  float64 // forward-difference step, DefaultDifferenceStep
}

// WithDerivative supplies the exact derivative f'. The finder then reports
// itself as "Newton". Panics on nil.
func WithDerivative(df Func) Option {
	if df == nil {
		panic("rootfind: WithDerivative(nil)")
	}
	return func(c *newtonConfig) {
		c.df = df
	}
}

// WithDifferenceStep sets the fixed h of the forward difference used when no
// exact derivative is given. h is independent from the per-iteration step
// tracked by the loop. Panics unless h is finite and > 0.
func WithDifferenceStep(h float64) Option {
	if !(h > 0) || math.IsInf(h, 1) {
		panic(fmt.Sprintf("rootfind: WithDifferenceStep(%v): h must be finite and > 0", h))
	}
	return func(c *newtonConfig) {
		c.h = h
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) newtonConfig {
	cfg := newtonConfig{h: DefaultDifferenceStep}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
