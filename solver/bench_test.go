package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlopt/solver"
)

// mkCoverLP builds a deterministic covering LP with nVars columns and
// nRows ≥ rows. Positive costs keep it bounded; growth keeps it feasible.
func mkCoverLP(nVars, nRows int, seed int64) *solver.Model {
	rng := rand.New(rand.NewSource(seed))

	m := solver.NewModel(solver.Minimize)
	for j := 0; j < nVars; j++ {
		m.AddVariable("", 0, math.Inf(1), 1+rng.Float64())
	}
	for i := 0; i < nRows; i++ {
		row := make([]float64, nVars)
		for j := range row {
			row[j] = rng.Float64()
		}
		m.AddConstraint("", row, solver.GreaterEq, 1+rng.Float64()*4)
	}

	return m
}

// BenchmarkSimplex_LP measures a full LP pipeline run (normalize, presolve,
// simplex, duals) on a 25×15 covering model.
func BenchmarkSimplex_LP(b *testing.B) {
	m := mkCoverLP(25, 15, 42)
	s := solver.NewSimplex()

	// Sanity solve outside the timed loop.
	if _, err := s.Solve(m); err != nil {
		b.Fatalf("setup solve failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSimplex_MIP measures branch-and-bound on a small 0/1 knapsack,
// the shape master iterations take in decomposition drivers.
func BenchmarkSimplex_MIP(b *testing.B) {
	m := solver.NewModel(solver.Maximize)
	m.AddIntegerVariable("a", 0, 1, 8)
	m.AddIntegerVariable("b", 0, 1, 11)
	m.AddIntegerVariable("c", 0, 1, 6)
	m.AddIntegerVariable("d", 0, 1, 4)
	m.AddConstraint("weight", []float64{5, 7, 4, 3}, solver.LessEq, 14)
	s := solver.NewSimplex()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(m); err != nil {
			b.Fatal(err)
		}
	}
}
