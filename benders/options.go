// Package benders - options.go
// Functional options controlling one Decompose run: the artificial bound
// M, the x box, the iteration cap, the convergence tolerance, the LP/MIP
// backend and the trace switch.
package benders

import (
	"math"

	"github.com/katalvlaran/lvlopt/solver"
)

// Options bundles every tunable of the decomposition loop. Zero values
// are not meaningful; start from DefaultOptions (Decompose does).
type Options struct {
	// M is the artificial upper bound on the master's bound variable t.
	// It must dominate the achievable optimum: too small silently clips
	// the objective, absurdly large slows master pivoting. Default 1e6.
	M float64

	// UpperBoundX is the shared box bound: every master variable lives in
	// [0, UpperBoundX]. Default 1e6.
	UpperBoundX float64

	// MaxIterations caps the number of master/subproblem rounds before
	// the loop gives up with ErrIterationLimit. Default 1000.
	MaxIterations int

	// Eps is the convergence tolerance on |fs−fm|. Zero (the default)
	// demands exact agreement, which the reference arithmetic reaches on
	// well-scaled data; set a small positive value for noisy instances.
	Eps float64

	// Solver is the LP/MIP backend used for both the master and the
	// subproblem. Default solver.NewSimplex().
	Solver solver.Solver

	// Trace enables the per-iteration Records in the Result. Default true.
	Trace bool
}

// Option mutates Options in place.
type Option func(*Options)

// WithM overrides the artificial bound on t.
// Non-positive, NaN or infinite values cause ErrBadM.
func WithM(m float64) Option {
	return func(o *Options) {
		if !(m > 0) || math.IsInf(m, 0) {
			panic(ErrBadM.Error())
		}
		o.M = m
	}
}

// WithUpperBoundX overrides the box bound on the master variables.
// Non-positive, NaN or infinite values cause ErrBadUpperBound.
func WithUpperBoundX(ub float64) Option {
	return func(o *Options) {
		if !(ub > 0) || math.IsInf(ub, 0) {
			panic(ErrBadUpperBound.Error())
		}
		o.UpperBoundX = ub
	}
}

// WithMaxIterations overrides the iteration cap.
// Non-positive caps cause ErrBadIterations.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadIterations.Error())
		}
		o.MaxIterations = n
	}
}

// WithEps sets the convergence tolerance on |fs−fm|. Zero demands exact
// agreement. Negative, NaN or infinite values cause ErrBadEps.
func WithEps(eps float64) Option {
	return func(o *Options) {
		if !(eps >= 0) || math.IsInf(eps, 0) {
			panic(ErrBadEps.Error())
		}
		o.Eps = eps
	}
}

// WithSolver swaps the LP/MIP backend.
// A nil backend causes ErrNilSolver.
func WithSolver(s solver.Solver) Option {
	return func(o *Options) {
		if s == nil {
			panic(ErrNilSolver.Error())
		}
		o.Solver = s
	}
}

// WithTrace toggles the per-iteration Records in the Result.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		M:             1e6,
		UpperBoundX:   1e6,
		MaxIterations: 1000,
		Eps:           0,
		Solver:        solver.NewSimplex(),
		Trace:         true,
	}
}
