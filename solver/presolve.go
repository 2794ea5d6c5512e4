// Package solver - presolve pass over the inequality normal form.
//
// lp.Simplex rejects constraint matrices containing all-zero rows or
// columns, and both arise naturally here: a zero row from a constraint
// whose coefficients cancel under substitution (or a cut with no variable
// support), a zero column from a variable that appears in no constraint.
// The pass below removes them while preserving the optimum:
//
//   - a zero row is dropped when its relation is satisfiable at zero and
//     proves the whole system infeasible otherwise;
//   - a zero column with non-negative cost is fixed at its lower bound;
//   - a zero column with negative cost is an unbounded direction, recorded
//     as a candidate ray (the system may still be infeasible, which the
//     caller settles with a feasibility probe).
//
// Dropping a row can expose new zero columns and vice versa, so the scan
// repeats until a full pass changes nothing.
package solver

// presolveVerdict is the outcome of a presolve pass.
//
// When infeasible is set the model has no feasible point and nothing else
// is meaningful. When ray is non-nil the objective is unbounded along that
// original-space direction provided the remaining system is feasible; the
// caller must confirm feasibility before trusting it.
type presolveVerdict struct {
	infeasible bool
	ray        []float64
}

// zeroRowFeasible reports whether an all-zero row is satisfied, i.e.
// whether 0 rel rhs holds.
func zeroRowFeasible(rel Relation, rhs float64) bool {
	switch rel {
	case LessEq:
		return rhs >= 0
	case GreaterEq:
		return rhs <= 0
	default:
		return rhs == 0
	}
}

// presolve eliminates zero rows and zero columns in place, compacting the
// form afterwards. It must run on a clone: rows and columns are removed
// and colRefs are rewritten to the compacted indices.
//
// Complexity: O((r+v)·r·v) worst case; each pass removes at least one row
// or column.
func (f *ineqForm) presolve() presolveVerdict {
	aliveRow := make([]bool, len(f.rows))
	for i := range aliveRow {
		aliveRow[i] = true
	}
	aliveCol := make([]bool, f.nCols)
	for j := range aliveCol {
		aliveCol[j] = true
	}

	var verdict presolveVerdict

	for changed := true; changed; {
		changed = false

		// Zero rows.
		for i := range f.rows {
			if !aliveRow[i] {
				continue
			}
			zero := true
			for j, v := range f.rows[i].coeffs {
				if aliveCol[j] && v != 0 {
					zero = false
					break
				}
			}
			if !zero {
				continue
			}
			if !zeroRowFeasible(f.rows[i].rel, f.rows[i].rhs) {
				verdict.infeasible = true

				return verdict
			}
			aliveRow[i] = false
			changed = true
		}

		// Zero columns.
		for j := 0; j < f.nCols; j++ {
			if !aliveCol[j] {
				continue
			}
			zero := true
			for i := range f.rows {
				if aliveRow[i] && f.rows[i].coeffs[j] != 0 {
					zero = false
					break
				}
			}
			if !zero {
				continue
			}
			if f.c[j] < 0 && verdict.ray == nil {
				verdict.ray = f.unitRay(j)
			}
			aliveCol[j] = false
			changed = true
		}
	}

	f.compact(aliveRow, aliveCol)

	return verdict
}

// unitRay maps the standard-form unit direction e[col] back onto the
// original columns. Exactly one colRef owns any given standard column.
func (f *ineqForm) unitRay(col int) []float64 {
	ray := make([]float64, f.nVars)
	for j := range f.cols {
		ref := f.cols[j]
		switch {
		case ref.pos == col:
			if ref.neg >= 0 {
				ray[j] = 1
			} else {
				ray[j] = ref.sign
			}
		case ref.neg == col:
			ray[j] = -1
		}
	}

	return ray
}

// compact rewrites the form to contain only surviving rows and columns,
// remapping colRefs so recovery keeps working. Eliminated columns become
// pos/neg = -1 and read as zero.
func (f *ineqForm) compact(aliveRow, aliveCol []bool) {
	colIdx := make([]int, f.nCols)
	nCols := 0
	for j := 0; j < f.nCols; j++ {
		if aliveCol[j] {
			colIdx[j] = nCols
			nCols++
		} else {
			colIdx[j] = -1
		}
	}

	c := make([]float64, 0, nCols)
	for j, v := range f.c {
		if aliveCol[j] {
			c = append(c, v)
		}
	}

	rows := f.rows[:0]
	for i := range f.rows {
		if !aliveRow[i] {
			continue
		}
		coeffs := make([]float64, 0, nCols)
		for j, v := range f.rows[i].coeffs {
			if aliveCol[j] {
				coeffs = append(coeffs, v)
			}
		}
		rows = append(rows, stdRow{coeffs: coeffs, rel: f.rows[i].rel, rhs: f.rows[i].rhs})
	}

	for j := range f.cols {
		if f.cols[j].pos >= 0 {
			f.cols[j].pos = colIdx[f.cols[j].pos]
		}
		if f.cols[j].neg >= 0 {
			f.cols[j].neg = colIdx[f.cols[j].neg]
		}
	}

	f.c = c
	f.rows = rows
	f.nCols = nCols
}
