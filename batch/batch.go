// SPDX-License-Identifier: MIT

// Package batch solves many independent root-finding problems concurrently.
//
// Every problem gets its own compiled functions and its own finder inside its
// own goroutine, so nothing mutable is shared between workers. A failing
// problem is reported in its Outcome and does not stop the others; only
// context cancellation aborts the run.
package batch

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rootfinder/problemset"
	"github.com/katalvlaran/rootfinder/rootfind"
)

// Outcome is the result of one problem. Err is empty on success.
type Outcome struct {
	Problem    string    `yaml:"problem"`
	Method     string    `yaml:"method"`
	Root       float64   `yaml:"root"`
	Iterations int       `yaml:"iterations"`
	Residual   float64   `yaml:"residual"`
	Status     string    `yaml:"status"`
	History    []float64 `yaml:"history,omitempty"`
	Err        string    `yaml:"error,omitempty"`

	// Error is the error behind Err, kept for errors.Is.
	Error error `yaml:"-"`

	// Report is the finder's text report; empty when no finder was built.
	Report string `yaml:"-"`
}

// Options tune Run.
type Options struct {
	// Workers bounds concurrent problems; <= 0 means GOMAXPROCS.
	Workers int

	// KeepHistory copies every estimate into Outcome.History.
	KeepHistory bool

	// OnIterate, if set, sees every iterate of every problem before the
	// cancellation check. It is called from worker goroutines.
	OnIterate func(problem string, it rootfind.Iterate)
}

// Run solves problems with at most opts.Workers in flight and returns one
// Outcome per problem, in input order. The error is non-nil only when ctx is
// done; problems not finished by then carry the context error.
func Run(ctx context.Context, log *zap.Logger, problems []problemset.Problem, opts Options) ([]Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	log = log.With(zap.String("run", uuid.NewString()))
	log.Info("batch started", zap.Int("problems", len(problems)), zap.Int("workers", workers))

	out := make([]Outcome, len(problems))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range problems {
		i := i
		p := &problems[i]
		g.Go(func() error {
			out[i] = solveOne(gctx, log, p, opts)
			return gctx.Err()
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	log.Info("batch finished", zap.Error(err))

	return out, err
}

// solveOne builds and runs a single finder. The observer turns context
// cancellation into an early stop.
func solveOne(ctx context.Context, log *zap.Logger, p *problemset.Problem, opts Options) Outcome {
	o := Outcome{Problem: p.Name, Method: string(p.Method)}
	log = log.With(zap.String("problem", p.Name), zap.String("method", o.Method))

	if err := ctx.Err(); err != nil {
		o.fail(err)
		o.Status = rootfind.StatusPending.String()
		return o
	}

	f, err := p.Finder(func(it rootfind.Iterate) error {
		log.Debug("iterate",
			zap.Int("iteration", it.Iteration),
			zap.Float64("estimate", it.Estimate),
			zap.Float64("residual", it.Residual),
			zap.Float64("step", it.Step))
		if opts.OnIterate != nil {
			opts.OnIterate(p.Name, it)
		}
		return ctx.Err()
	})
	if err != nil {
		log.Warn("build failed", zap.Error(err))
		o.fail(err)
		o.Status = rootfind.StatusPending.String()
		return o
	}

	root, err := f.Solve()
	o.Method = f.Name()
	o.Root = root
	o.Iterations = f.Iterations()
	o.Residual = f.Residual()
	o.Status = f.Status().String()
	o.Report = f.String()
	if opts.KeepHistory {
		o.History = f.History()
	}

	if err != nil {
		o.fail(err)
		log.Warn("solve failed", zap.Error(err), zap.Int("iterations", o.Iterations))
		return o
	}
	log.Info("solved",
		zap.Float64("root", root),
		zap.Int("iterations", o.Iterations),
		zap.Float64("residual", o.Residual),
		zap.String("status", o.Status))

	return o
}

func (o *Outcome) fail(err error) {
	o.Error = err
	o.Err = err.Error()
}
