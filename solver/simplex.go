package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize/convex/lp"
)

// rayTol is the sharpest objective slope along a candidate recession
// direction that is still treated as "no decreasing ray". Directions with
// normalized cost above -rayTol prove nothing and are discarded.
const rayTol = 1e-9

// Simplex solves Models with gonum's dense simplex method, adding the
// bookkeeping the raw routine does not provide: bound and sense
// normalization, dual prices, unboundedness certificates, and
// branch-and-bound for integer columns.
//
// A Simplex is stateless between calls: every Solve starts from the model
// alone, so repeated calls with the same model return identical solutions.
// Instances may be shared by any number of sequential callers.
type Simplex struct {
	opts Options
}

// NewSimplex returns a Simplex configured by the given options.
// Invalid option values panic; see the individual With* constructors.
func NewSimplex(opts ...Option) *Simplex {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Simplex{opts: o}
}

// Solve optimizes m and reports the outcome through the three-status
// Solution contract.
//
// Contracts:
//   - m is not mutated, and the returned Solution shares no memory with it.
//   - StatusOptimal carries X and Objective; Dual additionally for pure
//     LP models.
//   - StatusInfeasibleOrUnbounded carries a Ray when a certificate could
//     be recovered.
//
// Errors:
//   - validation sentinels (ErrNilModel, ErrNoVariables, ErrBadBounds,
//     ErrBadCoefficient, ErrRowMismatch, ErrDuplicateName) for malformed input;
//   - ErrSimplexFailure when the LP routine fails outside the status
//     contract, or the dual cross-check disagrees with the primal;
//   - ErrNodeLimit when branch-and-bound exceeds its node budget.
//
// Complexity: LP solves are polynomial in practice; integer models are
// exponential in the worst case, bounded by MaxNodes.
func (s *Simplex) Solve(m *Model) (Solution, error) {
	if err := validateModel(m); err != nil {
		return Solution{}, err
	}
	if m.IsMIP() {
		return s.solveMIP(m)
	}

	return s.solveLP(m, nil, nil, true)
}

// solveLP runs the full LP pipeline: normalize, presolve, simplex, recover.
// lo and hi, when non-nil, override the variables' own bounds
// (branch-and-bound narrows boxes per node); wantDuals additionally prices
// the rows of m.
func (s *Simplex) solveLP(m *Model, lo, hi []float64, wantDuals bool) (Solution, error) {
	f := buildIneqForm(m, lo, hi)
	pf := f.clone()

	verdict := pf.presolve()
	if verdict.infeasible {
		return Solution{Status: StatusInfeasible}, nil
	}
	if verdict.ray != nil {
		// A cost-decreasing direction exists; the model is unbounded
		// exactly when the remaining rows admit any feasible point.
		feasible, err := s.probeFeasible(pf)
		if err != nil {
			return Solution{}, err
		}
		if !feasible {
			return Solution{Status: StatusInfeasible}, nil
		}

		return Solution{Status: StatusInfeasibleOrUnbounded, Ray: verdict.ray}, nil
	}
	if len(pf.rows) == 0 {
		// Presolve fixed every column; the optimum is the constant point.
		sol := Solution{
			Status:    StatusOptimal,
			Objective: pf.recoverObjective(0),
			X:         pf.recoverX(nil, false),
		}
		if wantDuals {
			sol.Dual = make([]float64, f.nUser)
		}

		return sol, nil
	}

	c, a, b := pf.toStandard()
	z, y, err := lp.Simplex(c, a, b, s.opts.Tol, nil)
	switch {
	case err == nil:
		sol := Solution{
			Status:    StatusOptimal,
			Objective: pf.recoverObjective(z),
			X:         pf.recoverX(y, false),
		}
		if wantDuals {
			dual, derr := s.solveDuals(f, z)
			if derr != nil {
				return Solution{}, derr
			}
			sol.Dual = dual
		}

		return sol, nil

	case errors.Is(err, lp.ErrInfeasible):
		return Solution{Status: StatusInfeasible}, nil

	case errors.Is(err, lp.ErrUnbounded):
		return Solution{Status: StatusInfeasibleOrUnbounded, Ray: s.recoverRay(pf)}, nil

	default:
		return Solution{}, fmt.Errorf("%w: %v", ErrSimplexFailure, err)
	}
}

// probeFeasible decides whether the presolved system admits any feasible
// point, by minimizing the zero objective over it.
func (s *Simplex) probeFeasible(pf *ineqForm) (bool, error) {
	if len(pf.rows) == 0 {
		return true, nil
	}

	c, a, b := pf.toStandard()
	for i := range c {
		c[i] = 0
	}
	_, _, err := lp.Simplex(c, a, b, s.opts.Tol, nil)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, lp.ErrInfeasible):
		return false, nil
	default:
		return false, fmt.Errorf("%w: feasibility probe: %v", ErrSimplexFailure, err)
	}
}
