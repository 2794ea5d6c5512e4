// Package solver_test provides small helpers shared across *_test.go files
// in this package: sentinel assertions, float closeness checks and repeat
// runners for determinism tests. Helpers are stdlib-only on purpose.
package solver_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlopt/solver"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsSolve is the tolerance for comparing solver results against
	// hand-computed optima. Simplex arithmetic on the small instances used
	// here is accurate well below this threshold.
	epsSolve = 1e-9

	// detRuns is how many times determinism checks re-solve a model.
	detRuns = 3
)

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustErrIs asserts that err matches target using errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustStatus asserts a solve succeeded and landed on the wanted status.
func mustStatus(t *testing.T, sol solver.Solution, err error, want solver.Status) {
	t.Helper()
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if sol.Status != want {
		t.Fatalf("status = %v, want %v", sol.Status, want)
	}
}

// mustClose asserts |got-want| ≤ epsSolve (plus matching relative slack for
// large magnitudes).
func mustClose(t *testing.T, got, want float64) {
	t.Helper()
	if !closeTo(got, want) {
		t.Fatalf("value mismatch: got=%.17g want=%.17g", got, want)
	}
}

// mustCloseVec asserts per-component closeness of two float vectors.
func mustCloseVec(t *testing.T, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !closeTo(got[i], want[i]) {
			t.Fatalf("component %d mismatch: got=%.17g want=%.17g", i, got[i], want[i])
		}
	}
}

// closeTo reports absolute closeness within epsSolve, falling back to a
// relative bound for larger magnitudes.
func closeTo(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if diff <= epsSolve {
		return true
	}

	return diff <= epsSolve*math.Max(math.Abs(a), math.Abs(b))
}

// mustPanic asserts fn panics; used for With* option constructors.
func mustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// Repeat runs fn n times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		fn(t)
	}
}
