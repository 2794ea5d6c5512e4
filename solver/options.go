package solver

import "math"

// Options configures a Simplex backend.
//
// Tol     – pivot tolerance forwarded to the underlying LP routine.
//
//	Zero selects the routine's own default. Must be ≥ 0 and finite.
//
// IntTol  – integrality tolerance for branch-and-bound: a relaxation value
//
//	v is accepted as integral when |v − round(v)| ≤ IntTol. Must be ≥ 0.
//
// MaxNodes – branch-and-bound node budget. Solving a mixed-integer model
//
//	that enumerates more nodes than this fails with ErrNodeLimit.
//	Must be > 0.
type Options struct {
	Tol      float64
	IntTol   float64
	MaxNodes int
}

// Option represents a functional option for configuring a Simplex backend.
type Option func(*Options)

// WithTol sets the pivot tolerance handed to the LP routine.
// Zero keeps the routine's default. Negative or NaN values cause ErrBadTolerance.
func WithTol(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 1) {
			panic(ErrBadTolerance.Error())
		}
		o.Tol = tol
	}
}

// WithIntTol sets the integrality tolerance used when rounding relaxation
// values. Negative or NaN values cause ErrBadTolerance.
func WithIntTol(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 1) {
			panic(ErrBadTolerance.Error())
		}
		o.IntTol = tol
	}
}

// WithMaxNodes caps the number of branch-and-bound nodes explored per Solve.
// Zero or negative budgets cause ErrBadNodeLimit.
func WithMaxNodes(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadNodeLimit.Error())
		}
		o.MaxNodes = n
	}
}

// DefaultOptions returns the Options a plain NewSimplex() starts from.
//
// Defaults:
//   - Tol:      0 (the LP routine's own default tolerance).
//   - IntTol:   1e-9.
//   - MaxNodes: 10000.
func DefaultOptions() Options {
	return Options{
		Tol:      0,
		IntTol:   1e-9,
		MaxNodes: 10000,
	}
}
