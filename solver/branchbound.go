// Package solver - branch-and-bound over the LP relaxation.
//
// Integer columns are handled by LP-based branch-and-bound: solve the
// relaxation, pick the most fractional integer column, and split its value
// v into the two children x ≤ ⌊v⌋ and x ≥ ⌊v⌋+1. Children narrow the
// column's bounds instead of appending rows, so every node LP keeps the
// root's row count no matter how deep the tree grows. The search is a
// depth-first stack with the floor child explored first, the branching
// column chosen by largest fractional distance (lowest index on ties), and
// incumbents replaced only on strict improvement, so identical models
// always walk the identical tree and return the identical solution.
package solver

import (
	"fmt"
	"math"
)

// bnbNode is one open subproblem: the bound overrides accumulated on the
// path from the root, in original variable space. A nil side means the
// model's own bounds; the root carries nil on both.
type bnbNode struct {
	lo []float64
	hi []float64
}

// bnbEngine carries the search state for one mixed-integer solve.
type bnbEngine struct {
	// configuration
	backend  *Simplex
	model    *Model
	intCols  []int
	intTol   float64
	maxNodes int
	negate   bool // model maximizes; bounds are compared on the negated scale

	// incumbent
	haveBest bool
	bestX    []float64
	bestObj  float64 // objective of bestX in the model's own sense
	bestKey  float64 // same value on the minimization scale, for pruning

	nodes int
}

// solveMIP runs branch-and-bound on a validated mixed-integer model.
func (s *Simplex) solveMIP(m *Model) (Solution, error) {
	e := &bnbEngine{
		backend:  s,
		model:    m,
		intTol:   s.opts.IntTol,
		maxNodes: s.opts.MaxNodes,
		negate:   m.sense == Maximize,
	}
	for j := range m.vars {
		if m.vars[j].Integer {
			e.intCols = append(e.intCols, j)
		}
	}

	return e.run()
}

// run walks the search tree to exhaustion, the node budget, or a root
// verdict that settles the model outright.
func (e *bnbEngine) run() (Solution, error) {
	stack := []bnbNode{{}}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		e.nodes++
		if e.nodes > e.maxNodes {
			return Solution{}, fmt.Errorf("%w: after %d nodes", ErrNodeLimit, e.maxNodes)
		}

		rel, err := e.backend.solveLP(e.model, node.lo, node.hi, false)
		if err != nil {
			return Solution{}, err
		}

		switch rel.Status {
		case StatusInfeasible:
			continue

		case StatusInfeasibleOrUnbounded:
			if node.lo == nil && node.hi == nil {
				// Root relaxation already settles the integer model.
				return rel, nil
			}
			// A child region is contained in an optimal parent region and
			// cannot be unbounded.
			return Solution{}, fmt.Errorf("%w: bounded relaxation turned unbounded under branching", ErrSimplexFailure)

		case StatusOptimal:
			// bounding and branching continue below
		}

		key := rel.Objective
		if e.negate {
			key = -key
		}
		if e.haveBest && key >= e.bestKey {
			continue
		}

		branchCol := e.mostFractional(rel.X)
		if branchCol < 0 {
			e.accept(rel.X)
			continue
		}

		floor := math.Floor(rel.X[branchCol])
		stack = append(stack,
			e.child(node, branchCol, GreaterEq, floor+1),
			e.child(node, branchCol, LessEq, floor),
		)
	}

	if !e.haveBest {
		// Every leaf was pruned or fractional-infeasible: no integer point
		// exists even though the relaxation may be non-empty.
		return Solution{Status: StatusInfeasible}, nil
	}

	return Solution{Status: StatusOptimal, Objective: e.bestObj, X: e.bestX}, nil
}

// mostFractional returns the integer column whose relaxation value is
// farthest from an integer, or -1 when all integer columns are integral
// within intTol. Ties keep the lowest column index.
func (e *bnbEngine) mostFractional(x []float64) int {
	best, bestDist := -1, e.intTol
	for _, j := range e.intCols {
		if dist := math.Abs(x[j] - math.Round(x[j])); dist > bestDist {
			best, bestDist = j, dist
		}
	}

	return best
}

// accept snaps integer columns of a relaxation point and installs it as
// the incumbent when strictly better than the current one.
func (e *bnbEngine) accept(x []float64) {
	xs := append([]float64(nil), x...)
	for _, j := range e.intCols {
		xs[j] = math.Round(xs[j])
	}

	obj := 0.0
	for j := range e.model.vars {
		obj += e.model.vars[j].Cost * xs[j]
	}
	key := obj
	if e.negate {
		key = -key
	}

	if !e.haveBest || key < e.bestKey {
		e.haveBest = true
		e.bestX = xs
		e.bestObj = obj
		e.bestKey = key
	}
}

// child narrows one side of col's box: x[col] ≤ bound for LessEq,
// x[col] ≥ bound for GreaterEq. Only the touched side is copied; the
// other side stays shared with the parent.
func (e *bnbEngine) child(parent bnbNode, col int, rel Relation, bound float64) bnbNode {
	node := parent
	if rel == LessEq {
		node.hi = e.narrow(parent.hi, col, bound, false)
	} else {
		node.lo = e.narrow(parent.lo, col, bound, true)
	}

	return node
}

// narrow clones one bound side, materializing it from the model on first
// use, and installs the new bound for col.
func (e *bnbEngine) narrow(side []float64, col int, bound float64, lower bool) []float64 {
	out := make([]float64, len(e.model.vars))
	if side != nil {
		copy(out, side)
	} else {
		for j := range e.model.vars {
			if lower {
				out[j] = e.model.vars[j].Lower
			} else {
				out[j] = e.model.vars[j].Upper
			}
		}
	}
	out[col] = bound

	return out
}
