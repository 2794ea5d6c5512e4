// Package solver_test - runnable documentation examples.
package solver_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlopt/solver"
)

////////////////////////////////////////////////////////////////////////////////
// Example: plain LP
////////////////////////////////////////////////////////////////////////////////

// ExampleSimplex_Solve solves a two-product production plan.
// Scenario:
//
//   - Two products (x, y) with unit profits 3 and 5.
//   - Three plants limit throughput: x ≤ 4, 2y ≤ 12, 3x + 2y ≤ 18.
//   - Known optimum: make 2 of x and 6 of y for a profit of 36.
func ExampleSimplex_Solve() {
	m := solver.NewModel(solver.Maximize)
	m.AddVariable("x", 0, math.Inf(1), 3)
	m.AddVariable("y", 0, math.Inf(1), 5)
	m.AddConstraint("plant1", []float64{1, 0}, solver.LessEq, 4)
	m.AddConstraint("plant2", []float64{0, 2}, solver.LessEq, 12)
	m.AddConstraint("plant3", []float64{3, 2}, solver.LessEq, 18)

	sol, err := solver.NewSimplex().Solve(m)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Println("status:", sol.Status)
	fmt.Printf("x=%.0f y=%.0f profit=%.0f\n", sol.Value(0), sol.Value(1), sol.Objective)

	// Output:
	// status: optimal
	// x=2 y=6 profit=36
}

////////////////////////////////////////////////////////////////////////////////
// Example: financing allocation with shadow prices
////////////////////////////////////////////////////////////////////////////////

// ExampleSolution_DualValue allocates a budget across two instruments and
// reads the marginal value of each limit from the shadow prices.
// Scenario:
//
//   - Treasury bills return 5%, corporate bonds 8%.
//   - Total budget 100; bonds capped at 40 by policy.
//   - Optimum: 60 in bills, 40 in bonds, return 6.20.
//   - The budget's shadow price is the bill rate (an extra unit goes into
//     bills); the bond cap's price is the 3% spread.
func ExampleSolution_DualValue() {
	m := solver.NewModel(solver.Maximize)
	m.AddVariable("bills", 0, math.Inf(1), 0.05)
	m.AddVariable("bonds", 0, math.Inf(1), 0.08)
	m.AddConstraint("budget", []float64{1, 1}, solver.LessEq, 100)
	m.AddConstraint("bondCap", []float64{0, 1}, solver.LessEq, 40)

	sol, err := solver.NewSimplex().Solve(m)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	budgetRow, _ := m.ConstraintIndex("budget")
	capRow, _ := m.ConstraintIndex("bondCap")

	fmt.Printf("bills=%.0f bonds=%.0f return=%.2f\n", sol.Value(0), sol.Value(1), sol.Objective)
	fmt.Printf("budget price=%.2f cap price=%.2f\n", sol.DualValue(budgetRow), sol.DualValue(capRow))

	// Output:
	// bills=60 bonds=40 return=6.20
	// budget price=0.05 cap price=0.03
}

////////////////////////////////////////////////////////////////////////////////
// Example: integer winner determination
////////////////////////////////////////////////////////////////////////////////

// ExampleSimplex_Solve_auction picks winning bids in a tiny combinatorial
// auction. Each bid is all-or-nothing (a 0/1 column) and two bids touching
// the same item exclude each other.
// Scenario:
//
//   - Bid 1 wants items A+B for 5; bid 2 wants A for 3; bid 3 wants B for 4.
//   - Selling A and B separately (bids 2 and 3) earns 7, beating bid 1.
func ExampleSimplex_Solve_auction() {
	m := solver.NewModel(solver.Maximize)
	m.AddIntegerVariable("bid1", 0, 1, 5)
	m.AddIntegerVariable("bid2", 0, 1, 3)
	m.AddIntegerVariable("bid3", 0, 1, 4)
	m.AddConstraint("itemA", []float64{1, 1, 0}, solver.LessEq, 1)
	m.AddConstraint("itemB", []float64{1, 0, 1}, solver.LessEq, 1)

	sol, err := solver.NewSimplex().Solve(m)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}

	fmt.Printf("accept=[%.0f %.0f %.0f] revenue=%.0f\n",
		sol.Value(0), sol.Value(1), sol.Value(2), sol.Objective)

	// Output:
	// accept=[0 1 1] revenue=7
}
