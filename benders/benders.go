// Package benders - benders.go
// The decomposition loop: alternate master and subproblem solves,
// harvest cuts from subproblem certificates, stop when both sides agree
// on the objective.
package benders

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/solver"
)

// engine owns one Decompose run: the immutable problem, the accumulated
// master state and the iteration trace.
type engine struct {
	// problem and knobs, read-only during the run
	prob *ProblemData
	opts Options

	// cuts only ever grow; the master is rebuilt from them each round
	optimality  []Cut
	feasibility []Cut

	// diagnostics, filled when opts.Trace is set
	records []IterationRecord
}

// Decompose maximizes c1·x + c2·y subject to A1·x + A2·y ≤ b over
// integer x in [0, UpperBoundX]^n and continuous y ≥ 0, by Benders
// decomposition: a master MIP proposes (t, x), the dual-form subproblem
// prices x, and each disagreement is fed back as one cut.
//
// Contracts:
//   - p comes from NewProblem (shapes and finiteness already verified);
//   - on success Result.Objective is the shared optimum, Result.X an
//     optimal integer point, Result.V the optimal second-stage variables;
//   - with Eps == 0 (default) convergence demands exact float equality
//     of the two bounds, which the cut arithmetic reaches on well-scaled
//     data; set WithEps for noisy instances.
//
// Errors:
//   - ErrNilProblem for a nil p;
//   - ErrMasterInfeasible when the cuts exclude the whole box (the
//     original problem is infeasible);
//   - ErrSubproblemDegenerate when a subproblem yields neither a usable
//     vertex nor a usable ray;
//   - ErrSolverFailure when the backend errors or returns a malformed
//     solution (wraps the cause);
//   - ErrIterationLimit when MaxIterations elapse; the Result carries
//     the best bound found and Converged=false.
//
// Determinism: with the default backend, identical problems and options
// yield identical results, iteration counts and traces.
//
// Complexity: per iteration one MIP over n+1 columns and k accumulated
// cuts plus one LP over m columns and p rows; k grows by exactly one per
// non-terminal iteration.
func Decompose(p *ProblemData, opts ...Option) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &engine{prob: p, opts: o}
	return e.run()
}

// run is the alternation loop. Iterations are 1-based; the cap check
// sits at the top so exactly MaxIterations rounds execute before the
// best bound is surrendered.
func (e *engine) run() (Result, error) {
	var (
		fm float64
		x  []float64
	)
	for iter := 1; ; iter++ {
		if iter > e.opts.MaxIterations {
			return Result{
				Objective:  fm,
				X:          x,
				Converged:  false,
				Iterations: e.opts.MaxIterations,
				Records:    e.records,
			}, ErrIterationLimit
		}

		var (
			mst solver.Status
			err error
		)
		fm, x, mst, err = e.solveMaster()
		if err != nil {
			// Infeasible master terminates before any subproblem call.
			return Result{}, err
		}

		sub, err := e.solveSubproblem(x)
		if err != nil {
			return Result{}, err
		}
		e.trace(iter, mst, sub, fm, x)

		switch {
		case sub.status == solver.StatusOptimal && e.agreed(sub.fs, fm):
			if sub.v == nil {
				return Result{}, fmt.Errorf("%w: subproblem omitted duals at convergence", ErrSolverFailure)
			}
			return Result{
				Objective:  fm,
				X:          x,
				V:          sub.v,
				Converged:  true,
				Iterations: iter,
				Records:    e.records,
			}, nil

		case sub.status == solver.StatusOptimal:
			e.optimality = append(e.optimality, e.optimalityCut(sub.u))

		case sub.ray != nil:
			e.feasibility = append(e.feasibility, e.feasibilityCut(sub.ray))

		default:
			return Result{}, ErrSubproblemDegenerate
		}
	}
}

// agreed reports whether the subproblem bound meets the master bound:
// exact equality when Eps is zero, |fs−fm| ≤ Eps otherwise.
func (e *engine) agreed(fs, fm float64) bool {
	if e.opts.Eps == 0 {
		return fs == fm
	}
	diff := fs - fm
	if diff < 0 {
		diff = -diff
	}
	return diff <= e.opts.Eps
}

// trace appends one diagnostics record; U holds the dual vertex or the
// ray, whichever the iteration produced.
func (e *engine) trace(iter int, mst solver.Status, sub subOutcome, fm float64, x []float64) {
	if !e.opts.Trace {
		return
	}
	point := sub.u
	if point == nil {
		point = sub.ray
	}
	e.records = append(e.records, IterationRecord{
		Iteration:    iter,
		MasterStatus: mst,
		SubStatus:    sub.status,
		FM:           fm,
		FS:           sub.fs,
		X:            append([]float64(nil), x...),
		U:            append([]float64(nil), point...),
	})
}
