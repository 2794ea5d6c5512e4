// Package benders - types.go
// Problem container, sentinel errors, cut records and the Result of a
// Decompose run. The problem shape is fixed at construction and never
// mutated:
//
//	maximize  c1·x + c2·y
//	s.t.      A1·x + A2·y ≤ b
//	          x ∈ Z^n ∩ [0, UpperBoundX]^n,  y ≥ 0
package benders

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/solver"
)

// Sentinel errors returned by the decomposition driver.
var (
	// ErrNilProblem indicates that a nil *ProblemData was passed to Decompose.
	ErrNilProblem = errors.New("benders: problem is nil")

	// ErrBadDimension indicates an empty dimension: the problem needs at
	// least one master variable, one subproblem variable and one row.
	ErrBadDimension = errors.New("benders: dimensions must be positive")

	// ErrDimensionMismatch indicates that matrix and vector shapes disagree
	// (A1 must be m×n, A2 must be m×p, with n=len(c1), p=len(c2), m=len(b)).
	ErrDimensionMismatch = errors.New("benders: matrix and vector dimensions disagree")

	// ErrBadValue indicates a NaN or infinite coefficient in the problem data.
	ErrBadValue = errors.New("benders: coefficient is NaN or infinite")

	// ErrMasterInfeasible indicates the master program is infeasible, which
	// proves the original problem infeasible.
	ErrMasterInfeasible = errors.New("benders: master problem is infeasible")

	// ErrSubproblemDegenerate indicates a subproblem outcome outside the
	// three anticipated cases (optimal vertex, extreme ray, or agreement):
	// the dual polyhedron's structure is not exploitable and looping would
	// be unsound.
	ErrSubproblemDegenerate = errors.New("benders: subproblem outcome has no usable vertex or ray")

	// ErrSolverFailure indicates the Solver collaborator returned an error
	// or a malformed result; inspect the wrapped cause.
	ErrSolverFailure = errors.New("benders: solver call failed")

	// ErrIterationLimit indicates MaxIterations elapsed without
	// convergence. The accompanying Result holds the best bound found and
	// Converged=false.
	ErrIterationLimit = errors.New("benders: iteration limit exceeded")

	// ErrBadM indicates a non-positive or non-finite sentinel bound M.
	ErrBadM = errors.New("benders: M must be positive and finite")

	// ErrBadUpperBound indicates a non-positive or non-finite x box bound.
	ErrBadUpperBound = errors.New("benders: UpperBoundX must be positive and finite")

	// ErrBadIterations indicates a non-positive iteration cap.
	ErrBadIterations = errors.New("benders: MaxIterations must be positive")

	// ErrBadEps indicates a negative or non-finite convergence tolerance.
	ErrBadEps = errors.New("benders: Eps must be non-negative and finite")

	// ErrNilSolver indicates a nil Solver collaborator.
	ErrNilSolver = errors.New("benders: solver must not be nil")
)

// ProblemData is the immutable instance handed to Decompose: the cost
// split (c1, c2), the coupling matrices (A1, A2) and the shared
// right-hand side b. Construct with NewProblem, which deep-copies every
// input; the driver never mutates it and callers may reuse it across runs.
type ProblemData struct {
	c1 []float64
	c2 []float64
	a1 *mat.Dense
	a2 *mat.Dense
	b  []float64

	n int // master (integer) variables
	p int // subproblem variables
	m int // coupling rows
}

// NewProblem validates and deep-copies a problem instance.
//
// Contracts:
//   - len(c1) = n ≥ 1, len(c2) = p ≥ 1, len(b) = m ≥ 1;
//   - a1 is m×n and a2 is m×p;
//   - every coefficient is finite.
//
// Errors: ErrBadDimension, ErrDimensionMismatch, ErrBadValue.
//
// Complexity: O(m·(n+p)) for the copy and screen.
func NewProblem(c1, c2 []float64, a1, a2 mat.Matrix, b []float64) (*ProblemData, error) {
	n, p, m := len(c1), len(c2), len(b)
	if n == 0 || p == 0 || m == 0 {
		return nil, ErrBadDimension
	}
	if a1 == nil || a2 == nil {
		return nil, ErrDimensionMismatch
	}
	if r, c := a1.Dims(); r != m || c != n {
		return nil, ErrDimensionMismatch
	}
	if r, c := a2.Dims(); r != m || c != p {
		return nil, ErrDimensionMismatch
	}

	pd := &ProblemData{
		c1: append([]float64(nil), c1...),
		c2: append([]float64(nil), c2...),
		a1: mat.DenseCopyOf(a1),
		a2: mat.DenseCopyOf(a2),
		b:  append([]float64(nil), b...),
		n:  n,
		p:  p,
		m:  m,
	}

	for _, v := range pd.c1 {
		if !finite(v) {
			return nil, ErrBadValue
		}
	}
	for _, v := range pd.c2 {
		if !finite(v) {
			return nil, ErrBadValue
		}
	}
	for _, v := range pd.b {
		if !finite(v) {
			return nil, ErrBadValue
		}
	}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			if !finite(pd.a1.At(i, j)) {
				return nil, ErrBadValue
			}
		}
		for j := 0; j < p; j++ {
			if !finite(pd.a2.At(i, j)) {
				return nil, ErrBadValue
			}
		}
	}

	return pd, nil
}

// Dims reports the problem shape: n master variables, p subproblem
// variables, m coupling rows.
func (p *ProblemData) Dims() (n, sub, rows int) { return p.n, p.p, p.m }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Cut is one accumulated master constraint in x-space.
//
// An optimality cut constrains t + Coeffs·x ≤ RHS; a feasibility cut
// constrains Coeffs·x ≤ RHS. Which form applies is determined by the
// slice the cut is stored in, so the record itself stays minimal.
type Cut struct {
	Coeffs []float64
	RHS    float64
}

// IterationRecord is one line of the diagnostics trace: the statuses both
// solves reported, the bound pair (FM from the master, FS from the
// subproblem, -Inf when the subproblem was unbounded) and the points that
// produced them. X and U are copies owned by the record.
type IterationRecord struct {
	Iteration    int
	MasterStatus solver.Status
	SubStatus    solver.Status
	FM           float64
	FS           float64
	X            []float64
	U            []float64
}

// Result is the outcome of a Decompose run.
//
// On convergence, Objective is the shared optimum of master and
// subproblem, X the optimal integer point and V the subproblem's row
// duals (the optimal second-stage variables). When ErrIterationLimit is
// returned alongside, Objective/X hold the best bound found and
// Converged is false. Records is the full iteration trace when tracing
// was enabled, nil otherwise.
type Result struct {
	Objective  float64
	X          []float64
	V          []float64
	Converged  bool
	Iterations int
	Records    []IterationRecord
}
