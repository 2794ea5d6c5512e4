// Package solver - recovery of unboundedness certificates.
//
// lp.Simplex reports ErrUnbounded without saying along which direction the
// objective falls, but callers that turn unbounded subproblems into
// feasibility cuts need the direction itself. The recession cone of the
// standard-form feasible set {y : A·y = b, y ≥ 0} is {d : A·d = 0, d ≥ 0};
// intersecting it with the simplex Σd = 1 gives a compact set over which
//
//	minimize c·d  subject to  A·d = 0, Σd = 1, d ≥ 0
//
// either finds a strictly cost-decreasing ray or proves none exists at
// unit scale. Scaling does not matter to callers, so the normalized ray is
// returned as-is after mapping back to the original columns.
package solver

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// recoverRay extracts an original-space direction of unboundedness from a
// presolved form whose LP just reported unbounded. Returns nil when no
// certificate can be produced; callers treat that as "status known,
// direction unknown".
func (s *Simplex) recoverRay(pf *ineqForm) []float64 {
	c, a, _ := pf.toStandard()
	rows, cols := a.Dims()

	ah := mat.NewDense(rows+1, cols, nil)
	ah.Slice(0, rows, 0, cols).(*mat.Dense).Copy(a)
	for j := 0; j < cols; j++ {
		ah.Set(rows, j, 1)
	}
	bh := make([]float64, rows+1)
	bh[rows] = 1

	z, d, err := lp.Simplex(c, ah, bh, s.opts.Tol, nil)
	if err != nil || z > -rayTol {
		return nil
	}

	return pf.recoverX(d, true)
}
