// Package solver - model validation shared by every backend.
//
// Validation is staged: shape first (nil model, empty column set, row
// lengths), then numeric content (NaN/Inf screening), then name
// uniqueness. Only sentinel errors from errors.go are returned; no panics
// on user input.
package solver

import "math"

// validateModel verifies a model is well formed and solvable in principle.
//
// Contract:
//   - m non-nil with at least one variable.
//   - Every bound pair satisfies Lower ≤ Upper; NaN bounds, +Inf lowers
//     and -Inf uppers are rejected (-Inf lowers and +Inf uppers are legal
//     and mean "unbounded on that side").
//   - Objective and constraint coefficients must be finite; RHS must not
//     be NaN.
//   - Every constraint row has exactly one coefficient per variable.
//   - Non-empty variable and constraint names are unique within their kind.
//
// Complexity: O(v + r·v) for v variables and r rows.
func validateModel(m *Model) error {
	if m == nil {
		return ErrNilModel
	}
	if len(m.vars) == 0 {
		return ErrNoVariables
	}

	// Stage 1: columns.
	seenVar := make(map[string]struct{}, len(m.vars))
	for i := range m.vars {
		v := &m.vars[i]
		if math.IsNaN(v.Lower) || math.IsNaN(v.Upper) || v.Lower > v.Upper {
			return ErrBadBounds
		}
		// A +Inf lower or -Inf upper sneaks past the inversion check when
		// both bounds are infinite, yet admits no finite value.
		if math.IsInf(v.Lower, 1) || math.IsInf(v.Upper, -1) {
			return ErrBadBounds
		}
		if math.IsNaN(v.Cost) || math.IsInf(v.Cost, 0) {
			return ErrBadCoefficient
		}
		if v.Name != "" {
			if _, dup := seenVar[v.Name]; dup {
				return ErrDuplicateName
			}
			seenVar[v.Name] = struct{}{}
		}
	}

	// Stage 2: rows.
	seenCon := make(map[string]struct{}, len(m.cons))
	for i := range m.cons {
		c := &m.cons[i]
		if len(c.Coeffs) != len(m.vars) {
			return ErrRowMismatch
		}
		for _, a := range c.Coeffs {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return ErrBadCoefficient
			}
		}
		if math.IsNaN(c.RHS) {
			return ErrBadCoefficient
		}
		if c.Name != "" {
			if _, dup := seenCon[c.Name]; dup {
				return ErrDuplicateName
			}
			seenCon[c.Name] = struct{}{}
		}
	}

	return nil
}
