// Package solver - dual prices for LP rows.
//
// gonum's lp.Simplex returns only the primal point, so shadow prices are
// obtained by solving the dual program explicitly. For the minimization
// inequality normal form
//
//	minimize c·y  subject to  Aᵢ·y relᵢ bᵢ (i = 1..r), y ≥ 0,
//
// the dual is
//
//	maximize b·w  subject to  Σᵢ wᵢ·Aᵢⱼ ≤ cⱼ (j = 1..n),
//	                          wᵢ ≥ 0 for ≥ rows, wᵢ ≤ 0 for ≤ rows,
//	                          wᵢ free for = rows.
//
// That dual is itself a Model, so it runs through the same pipeline
// (sense negation, mirrored and split columns included). The dual optimum
// must match the primal one; a gap beyond dualityTol means the backend
// produced an inconsistent pair and the solve is rejected rather than
// returning silently wrong prices.
package solver

import (
	"fmt"
	"math"
)

// dualityTol bounds the accepted relative gap between the primal and dual
// optima before the pair is declared inconsistent.
const dualityTol = 1e-6

// solveDuals prices the user rows of the pristine form f, whose internal
// primal optimum is zPrimal. The returned slice has one entry per model
// constraint, in declaration order, with the sign convention
// Dual[i] = ∂objective/∂rhsᵢ in the model's own sense.
func (s *Simplex) solveDuals(f *ineqForm, zPrimal float64) ([]float64, error) {
	if f.nUser == 0 {
		// Nothing to price: only bound rows constrain the model.
		return []float64{}, nil
	}

	dm := NewModel(Maximize)
	for i := range f.rows {
		lo, up := math.Inf(-1), math.Inf(1)
		switch f.rows[i].rel {
		case GreaterEq:
			lo = 0
		case LessEq:
			up = 0
		}
		dm.AddVariable("", lo, up, f.rows[i].rhs)
	}
	for j := 0; j < f.nCols; j++ {
		coeffs := make([]float64, len(f.rows))
		for i := range f.rows {
			coeffs[i] = f.rows[i].coeffs[j]
		}
		dm.AddConstraint("", coeffs, LessEq, f.c[j])
	}

	ds, err := s.solveLP(dm, nil, nil, false)
	if err != nil {
		return nil, fmt.Errorf("%w: dual solve: %v", ErrSimplexFailure, err)
	}
	if ds.Status != StatusOptimal {
		return nil, fmt.Errorf("%w: dual solve ended %v against an optimal primal", ErrSimplexFailure, ds.Status)
	}
	if gap := math.Abs(ds.Objective - zPrimal); gap > dualityTol*math.Max(1, math.Abs(zPrimal)) {
		return nil, fmt.Errorf("%w: duality gap %.3g", ErrSimplexFailure, gap)
	}

	dual := make([]float64, f.nUser)
	for i := range dual {
		w := ds.X[i]
		if f.negate {
			// Prices were computed against the negated objective.
			w = -w
		}
		dual[i] = w
	}

	return dual, nil
}
