// Package benders - subproblem.go
// Continuous side of the decomposition: for a fixed master point x the
// driver solves the dual-form subproblem
//
//	minimize  (b − A1·x)·u   s.t.   A2ᵀ·u ≥ c2,  u ≥ 0
//
// whose optimum shifted by c1·x equals the best original objective
// reachable from x, and whose certificates (vertex u* or extreme ray d)
// translate straight into master cuts.
package benders

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/solver"
)

// subOutcome is the classified result of one subproblem solve.
// Exactly one of u/ray is set, matching status; v carries the row duals
// (the optimal second-stage variables) when the solve was optimal and
// the backend reported them.
type subOutcome struct {
	status solver.Status
	fs     float64   // c1·x + optimum; -Inf when unbounded below
	u      []float64 // optimal dual vertex, status Optimal only
	ray    []float64 // recession direction, status InfeasibleOrUnbounded only
	v      []float64 // row duals in c2 order, status Optimal only
}

// buildSubproblem assembles the dual-form LP at the point x. Rows are
// named y0..y{p-1} so their duals, the second-stage variables, can be
// read back by name.
func (e *engine) buildSubproblem(x []float64) *solver.Model {
	q := mat.NewVecDense(e.prob.m, nil)
	q.MulVec(e.prob.a1, mat.NewVecDense(e.prob.n, x))

	mdl := solver.NewModel(solver.Minimize)
	for i := 0; i < e.prob.m; i++ {
		mdl.AddVariable("u"+strconv.Itoa(i), 0, math.Inf(1), e.prob.b[i]-q.AtVec(i))
	}
	col := make([]float64, e.prob.m)
	for j := 0; j < e.prob.p; j++ {
		for i := 0; i < e.prob.m; i++ {
			col[i] = e.prob.a2.At(i, j)
		}
		mdl.AddConstraint("y"+strconv.Itoa(j), col, solver.GreaterEq, e.prob.c2[j])
	}
	return mdl
}

// solveSubproblem runs the dual-form LP at x and classifies the outcome:
//
//   - Optimal: a priced vertex; fs = c1·x + optimum, u and v filled in.
//   - InfeasibleOrUnbounded with a ray: the subproblem is unbounded
//     below, meaning x is infeasible for the original problem; the ray
//     certifies it and becomes a feasibility cut.
//   - Everything else (infeasible, unbounded without a certificate, an
//     unknown status) is degenerate: the loop has no cut to make
//     progress with, and the caller terminates.
//
// A solve error or a malformed result is ErrSolverFailure.
func (e *engine) solveSubproblem(x []float64) (subOutcome, error) {
	mdl := e.buildSubproblem(x)
	sol, err := e.opts.Solver.Solve(mdl)
	if err != nil {
		return subOutcome{}, fmt.Errorf("%w: subproblem solve: %v", ErrSolverFailure, err)
	}

	out := subOutcome{status: sol.Status}
	switch sol.Status {
	case solver.StatusOptimal:
		if len(sol.X) != e.prob.m {
			return subOutcome{}, fmt.Errorf("%w: subproblem returned %d values, want %d", ErrSolverFailure, len(sol.X), e.prob.m)
		}
		out.fs = mat.Dot(mat.NewVecDense(e.prob.n, e.prob.c1), mat.NewVecDense(e.prob.n, x)) + sol.Objective
		out.u = append([]float64(nil), sol.X...)
		if len(sol.Dual) == e.prob.p {
			out.v = make([]float64, e.prob.p)
			for j := 0; j < e.prob.p; j++ {
				idx, ierr := mdl.ConstraintIndex("y" + strconv.Itoa(j))
				if ierr != nil {
					return subOutcome{}, fmt.Errorf("%w: subproblem row lookup: %v", ErrSolverFailure, ierr)
				}
				out.v[j] = sol.DualValue(idx)
			}
		}
		return out, nil

	case solver.StatusInfeasibleOrUnbounded:
		if sol.Ray == nil {
			// No certificate to cut with; degenerate for the caller.
			return out, nil
		}
		if len(sol.Ray) != e.prob.m {
			return subOutcome{}, fmt.Errorf("%w: subproblem ray has %d entries, want %d", ErrSolverFailure, len(sol.Ray), e.prob.m)
		}
		out.fs = math.Inf(-1)
		out.ray = append([]float64(nil), sol.Ray...)
		return out, nil

	default:
		return out, nil
	}
}

// optimalityCut turns the dual vertex u* into the master row
//
//	t + (A1ᵀu* − c1)·x ≤ b·u*
//
// tightening the bound t whenever the master revisits the region around
// the x that produced u*.
func (e *engine) optimalityCut(u []float64) Cut {
	at := mat.NewVecDense(e.prob.n, nil)
	at.MulVec(e.prob.a1.T(), mat.NewVecDense(e.prob.m, u))
	coeffs := make([]float64, e.prob.n)
	for j := range coeffs {
		coeffs[j] = at.AtVec(j) - e.prob.c1[j]
	}
	rhs := mat.Dot(mat.NewVecDense(e.prob.m, e.prob.b), mat.NewVecDense(e.prob.m, u))
	return Cut{Coeffs: coeffs, RHS: rhs}
}

// feasibilityCut turns the extreme ray d into the master row
//
//	(A1ᵀd)·x ≤ b·d
//
// excluding every x whose subproblem escapes along d.
func (e *engine) feasibilityCut(d []float64) Cut {
	at := mat.NewVecDense(e.prob.n, nil)
	at.MulVec(e.prob.a1.T(), mat.NewVecDense(e.prob.m, d))
	coeffs := make([]float64, e.prob.n)
	for j := range coeffs {
		coeffs[j] = at.AtVec(j)
	}
	rhs := mat.Dot(mat.NewVecDense(e.prob.m, e.prob.b), mat.NewVecDense(e.prob.m, d))
	return Cut{Coeffs: coeffs, RHS: rhs}
}
