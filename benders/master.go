// Package benders - master.go
// Master side of the decomposition: a small MIP over the bound variable t
// and the integer vector x, carrying every cut accumulated so far.
package benders

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/lvlopt/solver"
)

// buildMaster assembles the current master program:
//
//	maximize  t
//	s.t.      t ≤ M                        (variable bound)
//	          t + cv·x ≤ γ                 (one row per optimality cut)
//	          ce·x ≤ γ                     (one row per feasibility cut)
//	          x ∈ Z^n ∩ [0, UpperBoundX]^n
//
// Column order is t first, then x in index order; solveMaster relies on it.
// The model is rebuilt from the cut slices every iteration, so the
// solver always sees a fresh, self-contained instance.
func (e *engine) buildMaster() *solver.Model {
	mdl := solver.NewModel(solver.Maximize)
	mdl.AddVariable("t", math.Inf(-1), e.opts.M, 1)
	for j := 0; j < e.prob.n; j++ {
		mdl.AddIntegerVariable("x"+strconv.Itoa(j), 0, e.opts.UpperBoundX, 0)
	}

	row := make([]float64, 1+e.prob.n)
	for _, cut := range e.optimality {
		row[0] = 1
		copy(row[1:], cut.Coeffs)
		mdl.AddConstraint("", row, solver.LessEq, cut.RHS)
	}
	for _, cut := range e.feasibility {
		row[0] = 0
		copy(row[1:], cut.Coeffs)
		mdl.AddConstraint("", row, solver.LessEq, cut.RHS)
	}
	return mdl
}

// solveMaster runs the master MIP and classifies the outcome into the
// loop's vocabulary:
//
//   - Infeasible: the cuts exclude every box point, so the original
//     problem is infeasible; ErrMasterInfeasible.
//   - InfeasibleOrUnbounded: t is unconstrained from above by the cuts;
//     proceed with fm = M and the trivial box corner as x.
//   - Optimal: fm = t*, x = the integral primal rounded to kill float fuzz.
//
// Any other status or a solve error is ErrSolverFailure.
func (e *engine) solveMaster() (fm float64, x []float64, st solver.Status, err error) {
	sol, err := e.opts.Solver.Solve(e.buildMaster())
	if err != nil {
		return 0, nil, 0, fmt.Errorf("%w: master solve: %v", ErrSolverFailure, err)
	}

	switch sol.Status {
	case solver.StatusInfeasible:
		return 0, nil, sol.Status, ErrMasterInfeasible

	case solver.StatusInfeasibleOrUnbounded:
		// No cut bounds t yet (or the backend cannot tell the cases
		// apart). Pessimistic bound, trivial integer point.
		x = make([]float64, e.prob.n)
		corner := math.Floor(e.opts.UpperBoundX)
		for j := range x {
			x[j] = corner
		}
		return e.opts.M, x, sol.Status, nil

	case solver.StatusOptimal:
		if len(sol.X) != 1+e.prob.n {
			return 0, nil, sol.Status, fmt.Errorf("%w: master returned %d values, want %d", ErrSolverFailure, len(sol.X), 1+e.prob.n)
		}
		x = make([]float64, e.prob.n)
		for j := range x {
			x[j] = math.Round(sol.X[1+j])
			if x[j] == 0 {
				// Round keeps the sign of a negative zero; drop it.
				x[j] = 0
			}
		}
		return sol.Objective, x, sol.Status, nil

	default:
		return 0, nil, sol.Status, fmt.Errorf("%w: master status %v", ErrSolverFailure, sol.Status)
	}
}
