// Package solver - normalization of a Model into the standard form expected
// by the simplex backend.
//
// The backend (gonum's lp.Simplex) solves
//
//	minimize cᵀy  subject to  A·y = b, y ≥ 0.
//
// A Model is more general: either objective sense, variables with arbitrary
// bound boxes, and ≤ / ≥ / = rows. Normalization happens in two stages:
//
//  1. buildIneqForm rewrites the model as a minimization over non-negative
//     columns: maximization is negated; a column with a finite lower bound
//     is shifted (y = x − lo), a column with only a finite upper bound is
//     mirrored (y = up − x), and a fully free column is split into a
//     positive and a negative part (x = y⁺ − y⁻). Finite upper bounds of
//     shifted columns become explicit ≤ rows. The substitution applied to
//     each original column is recorded in a colRef so primal values and
//     ray directions can be mapped back exactly.
//  2. toStandard appends one slack (≤) or surplus (≥) column per
//     inequality row, producing the equality system fed to lp.Simplex.
//
// The same technique is used by gonum's lp.Convert; it is reimplemented
// here because Convert does not expose the column bookkeeping needed to
// recover original variables, duals and rays.
package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// colRef records how one original column was rewritten.
//
// For split columns (neg ≥ 0): x = y[pos] − y[neg].
// Otherwise: x = sign·y[pos] + shift, with the convention that an
// eliminated column (pos == -1, see presolve.go) contributes y = 0.
type colRef struct {
	pos   int
	neg   int
	sign  float64
	shift float64
}

// stdRow is one normalized row: coeffs·y rel rhs, over normalized columns.
type stdRow struct {
	coeffs []float64
	rel    Relation
	rhs    float64
}

// ineqForm is the minimization inequality normal form of a model:
//
//	minimize c·y + offset  subject to  rows, y ≥ 0,
//
// where offset collects the constant terms produced by column shifts and
// mirrors, and negate records that the source model maximizes (so the
// original objective is −(c·y + offset)).
//
// rows[:nUser] correspond one-to-one, in order, to the model's own
// constraints; rows[nUser:] are bound rows.
type ineqForm struct {
	c      []float64
	rows   []stdRow
	cols   []colRef
	offset float64
	negate bool
	nVars  int
	nUser  int
	nCols  int
}

// buildIneqForm performs stage 1 of normalization. lo and hi, when
// non-nil, override the variables' own bounds column by column
// (branch-and-bound narrows boxes this way); the model itself is never
// touched. A crossed override (lo[j] > hi[j]) yields an unsatisfiable
// bound row and the LP reports infeasible.
//
// The model must already be validated.
//
// Complexity: O((r+v)·v) for r rows and v variables.
func buildIneqForm(m *Model, lo, hi []float64) *ineqForm {
	nVars := len(m.vars)
	f := &ineqForm{
		negate: m.sense == Maximize,
		cols:   make([]colRef, nVars),
		nVars:  nVars,
		nUser:  len(m.cons),
	}

	// Stage 1a: columns. Assign standard columns and record substitutions.
	type boundRow struct {
		col int
		rhs float64
	}
	var bounds []boundRow

	next := 0
	for j := 0; j < nVars; j++ {
		v := &m.vars[j]
		lower, upper := v.Lower, v.Upper
		if lo != nil {
			lower = lo[j]
		}
		if hi != nil {
			upper = hi[j]
		}
		cost := v.Cost
		if f.negate {
			cost = -cost
		}

		switch {
		case !math.IsInf(lower, -1):
			// Shift: y = x − lo ≥ 0.
			f.cols[j] = colRef{pos: next, neg: -1, sign: 1, shift: lower}
			f.c = append(f.c, cost)
			f.offset += cost * lower
			if !math.IsInf(upper, 1) {
				bounds = append(bounds, boundRow{col: next, rhs: upper - lower})
			}
			next++

		case !math.IsInf(upper, 1):
			// Mirror: y = up − x ≥ 0, so x = up − y.
			f.cols[j] = colRef{pos: next, neg: -1, sign: -1, shift: upper}
			f.c = append(f.c, -cost)
			f.offset += cost * upper
			next++

		default:
			// Free: x = y⁺ − y⁻.
			f.cols[j] = colRef{pos: next, neg: next + 1, sign: 1}
			f.c = append(f.c, cost, -cost)
			next += 2
		}
	}
	f.nCols = next

	// Stage 1b: rewrite user rows in normalized columns.
	rewrite := func(c Constraint) stdRow {
		row := stdRow{coeffs: make([]float64, f.nCols), rel: c.Rel, rhs: c.RHS}
		for j, a := range c.Coeffs {
			if a == 0 {
				continue
			}
			ref := f.cols[j]
			row.coeffs[ref.pos] += a * ref.sign
			if ref.neg >= 0 {
				row.coeffs[ref.neg] -= a
			}
			row.rhs -= a * ref.shift
		}

		return row
	}

	f.rows = make([]stdRow, 0, len(m.cons)+len(bounds))
	for i := range m.cons {
		f.rows = append(f.rows, rewrite(m.cons[i]))
	}

	// Stage 1c: bound rows for boxed columns.
	for _, br := range bounds {
		row := stdRow{coeffs: make([]float64, f.nCols), rel: LessEq, rhs: br.rhs}
		row.coeffs[br.col] = 1
		f.rows = append(f.rows, row)
	}

	return f
}

// clone deep-copies the form so presolve can rewrite it while the pristine
// version remains available for dual construction.
func (f *ineqForm) clone() *ineqForm {
	cp := &ineqForm{
		c:      append([]float64(nil), f.c...),
		rows:   make([]stdRow, len(f.rows)),
		cols:   append([]colRef(nil), f.cols...),
		offset: f.offset,
		negate: f.negate,
		nVars:  f.nVars,
		nUser:  f.nUser,
		nCols:  f.nCols,
	}
	for i := range f.rows {
		cp.rows[i] = stdRow{
			coeffs: append([]float64(nil), f.rows[i].coeffs...),
			rel:    f.rows[i].rel,
			rhs:    f.rows[i].rhs,
		}
	}

	return cp
}

// toStandard performs stage 2: slack/surplus columns per inequality row,
// producing the equality system for lp.Simplex. The returned matrix has
// one row per remaining normalized row and nCols+nIneq columns.
//
// Complexity: O(r·v).
func (f *ineqForm) toStandard() (c []float64, a *mat.Dense, b []float64) {
	nIneq := 0
	for i := range f.rows {
		if f.rows[i].rel != Equal {
			nIneq++
		}
	}

	nCols := f.nCols + nIneq
	c = make([]float64, nCols)
	copy(c, f.c)

	a = mat.NewDense(len(f.rows), nCols, nil)
	b = make([]float64, len(f.rows))

	slack := f.nCols
	for i := range f.rows {
		row := &f.rows[i]
		for j, v := range row.coeffs {
			if v != 0 {
				a.Set(i, j, v)
			}
		}
		b[i] = row.rhs

		switch row.rel {
		case LessEq:
			a.Set(i, slack, 1)
			slack++
		case GreaterEq:
			a.Set(i, slack, -1)
			slack++
		}
	}

	return c, a, b
}

// recoverX maps a standard-form point y back onto the original columns.
// Eliminated columns (pos == -1) read as zero. With direction=true, y is
// treated as a ray rather than a point and the constant shifts drop out.
func (f *ineqForm) recoverX(y []float64, direction bool) []float64 {
	at := func(i int) float64 {
		if i < 0 || i >= len(y) {
			return 0
		}

		return y[i]
	}

	x := make([]float64, f.nVars)
	for j := range f.cols {
		ref := f.cols[j]
		if ref.neg >= 0 {
			x[j] = at(ref.pos) - at(ref.neg)
			continue
		}
		x[j] = ref.sign * at(ref.pos)
		if !direction {
			x[j] += ref.shift
		}
	}

	return x
}

// recoverObjective converts the internal minimum z into the model's own
// objective scale and sense.
func (f *ineqForm) recoverObjective(z float64) float64 {
	obj := z + f.offset
	if f.negate {
		return -obj
	}

	return obj
}
