// Package solver - types.go
// The modeling vocabulary shared by all solver backends: variables,
// constraints, objective sense, solve status and the Solution record.
package solver

// Sense selects the optimization direction of a Model's objective.
type Sense int

const (
	// Minimize asks for the smallest objective value.
	Minimize Sense = iota
	// Maximize asks for the largest objective value.
	Maximize
)

// String returns a human-readable direction name.
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Relation is the comparison operator of a linear constraint.
type Relation int

const (
	// LessEq is the relation coeffs·x ≤ rhs.
	LessEq Relation = iota
	// GreaterEq is the relation coeffs·x ≥ rhs.
	GreaterEq
	// Equal is the relation coeffs·x = rhs.
	Equal
)

// String returns the operator symbol.
func (r Relation) String() string {
	switch r {
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return "<="
	}
}

// Status is the outcome classification of a solve. Backends must normalize
// their native status codes onto exactly these three values; every other
// native condition (numerical failure, node limits, malformed results) is
// reported through the error return of Solve instead.
type Status int

const (
	// StatusOptimal: a finite optimum was found; Solution.X and
	// Solution.Objective are valid.
	StatusOptimal Status = iota
	// StatusInfeasible: the feasible region is provably empty.
	StatusInfeasible
	// StatusInfeasibleOrUnbounded: the model admits arbitrarily good
	// objective values, or the backend could not separate unboundedness
	// from infeasibility. When a direction of unboundedness was recovered
	// it is published in Solution.Ray.
	StatusInfeasibleOrUnbounded
)

// String returns a human-readable status name.
func (st Status) String() string {
	switch st {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusInfeasibleOrUnbounded:
		return "infeasible-or-unbounded"
	default:
		return "unknown"
	}
}

// Variable is one column of a Model.
//
// Lower may be -Inf and Upper may be +Inf; Lower must not exceed Upper.
// Cost is the objective coefficient. Integer marks the variable as
// integral, which routes the model through branch-and-bound.
type Variable struct {
	Name    string
	Lower   float64
	Upper   float64
	Cost    float64
	Integer bool
}

// Constraint is one row of a Model: Coeffs·x Rel RHS.
// Coeffs is dense, in column order, and must have one entry per variable
// at solve time.
type Constraint struct {
	Name   string
	Coeffs []float64
	Rel    Relation
	RHS    float64
}

// Solution is the result of a successful Solve call.
//
// X holds primal values in column order and Dual holds one shadow price
// per constraint in row order: Dual[i] is the rate of change of the
// optimal objective per unit increase of row i's right-hand side. Dual is
// nil for models with integer variables (shadow prices are undefined for
// MIPs) and for non-optimal statuses.
//
// Ray is a direction of unboundedness in original variable space,
// populated when Status is StatusInfeasibleOrUnbounded and the backend
// recovered a certificate; it is nil otherwise.
type Solution struct {
	Status    Status
	Objective float64
	X         []float64
	Dual      []float64
	Ray       []float64
}

// Value returns the primal value of column i, or 0 when out of range.
func (s Solution) Value(i int) float64 {
	if i < 0 || i >= len(s.X) {
		return 0
	}

	return s.X[i]
}

// DualValue returns the shadow price of row i, or 0 when duals are absent
// or i is out of range.
func (s Solution) DualValue(i int) float64 {
	if i < 0 || i >= len(s.Dual) {
		return 0
	}

	return s.Dual[i]
}

// Solver is the abstract collaborator contract: given a validated Model it
// returns a Solution carrying one of the three Status values, or an error
// when the solve itself failed (malformed model, numerical breakdown, node
// limit). Implementations must be deterministic: the same Model yields the
// same Solution on every call.
type Solver interface {
	Solve(m *Model) (Solution, error)
}
