// Package solver provides a small, strict LP/MIP toolkit: a plain-data
// Model of variables and linear constraints, an abstract Solver contract,
// and a built-in simplex-backed implementation with dual prices, extreme
// rays and branch-and-bound.
//
// Overview:
//
//   - A Model is an ordered collection of columns (bounds, cost, optional
//     integrality) and rows (dense coefficients, ≤ / ≥ / = relation, RHS)
//     with a Minimize or Maximize objective; indices follow insertion
//     order and names are optional but unique.
//   - Solve classifies every outcome onto exactly three statuses:
//     StatusOptimal, StatusInfeasible, StatusInfeasibleOrUnbounded. Every
//     other native condition (malformed input, numerical breakdown, node
//     limits) is an error, never a fourth status.
//   - The Simplex backend normalizes arbitrary boxes and senses onto
//     gonum's dense simplex, prices rows by solving the explicit dual
//     program, recovers directions of unboundedness from the recession
//     cone, and handles integer columns by deterministic depth-first
//     branch-and-bound.
//
// When to use:
//
//   - As the optimization backend of higher-level drivers that need
//     statuses, duals and rays as first-class data rather than printed
//     reports (the benders package is one such consumer).
//   - For small-to-medium dense LPs and MIPs where determinism and a
//     strict contract matter more than raw pivot speed.
//
// Key features:
//
//   - Three-status contract: backends must map every native outcome onto
//     Optimal / Infeasible / InfeasibleOrUnbounded, so callers can switch
//     on status without vendor-specific cases.
//   - Shadow prices: Solution.Dual carries one price per row, in the
//     model's own sense, checked against the primal optimum before being
//     returned (a duality gap is reported as ErrSimplexFailure).
//   - Ray certificates: unbounded LPs come back with an original-space
//     recession direction in Solution.Ray whenever one can be recovered.
//   - Deterministic branch-and-bound: most-fractional branching with
//     fixed tie-breaks and a hard node budget (ErrNodeLimit).
//   - Functional options (WithTol, WithIntTol, WithMaxNodes) tune a
//     backend without widening the Solve signature.
//
// Performance and complexity:
//
//   - LP solves run gonum's dense simplex: polynomial in practice,
//     O(rows·cols) memory for the standard-form matrix.
//   - Dual prices cost one extra LP of transposed shape; rays cost one LP
//     over the normalized recession cone.
//   - Integer solves are exponential in the worst case, bounded by the
//     MaxNodes budget (default 10000 nodes).
//
// Error handling (sentinel errors):
//
//   - ErrNilModel, ErrNoVariables: the model is missing or empty.
//   - ErrBadBounds: a column with Lower > Upper, a NaN bound, or a bound
//     pair admitting no finite value.
//   - ErrBadCoefficient: a NaN or infinite cost/coefficient, or a NaN RHS.
//   - ErrRowMismatch: a row whose length disagrees with the column count.
//   - ErrDuplicateName: two columns or two rows share a non-empty name.
//   - ErrNameNotFound: a VariableIndex/ConstraintIndex lookup miss.
//   - ErrSimplexFailure: the LP routine failed outside the three-status
//     contract, or the dual cross-check disagreed with the primal.
//   - ErrNodeLimit: branch-and-bound exhausted its node budget.
//   - ErrBadTolerance, ErrBadNodeLimit: returned (via panic) by the
//     corresponding With* option constructors on nonsensical arguments.
//
// API reference:
//
//	func NewModel(sense Sense) *Model
//	func (m *Model) AddVariable(name string, lower, upper, cost float64) int
//	func (m *Model) AddIntegerVariable(name string, lower, upper, cost float64) int
//	func (m *Model) AddConstraint(name string, coeffs []float64, rel Relation, rhs float64) int
//	func NewSimplex(opts ...Option) *Simplex
//	func (s *Simplex) Solve(m *Model) (Solution, error)
//
//	  - opts: zero or more functional options:
//	      • WithTol(float64):      pivot tolerance (0 = the routine's default).
//	      • WithIntTol(float64):   integrality tolerance (default 1e-9).
//	      • WithMaxNodes(int):     branch-and-bound node budget (default 10000).
//	  - Solution: Status, Objective, X (primal point), Dual (row prices,
//	    pure LPs only), Ray (unboundedness certificate when recovered).
//
// Determinism:
//
//   - A Simplex is stateless between calls and the search rules carry no
//     randomness: the same Model yields the same Solution, bit for bit,
//     on every call.
//
// Thread safety:
//
//   - A Model is not safe for concurrent mutation; treat it as read-only
//     once handed to Solve. A Simplex holds no per-call state and may be
//     shared by any number of sequential or concurrent solves over
//     distinct models.
//
// See also:
//
//   - benders.Decompose: an iterative master/subproblem driver built
//     entirely on this package's Solver contract.
//
// Thanks for choosing lvlopt! We aim to provide rock-solid optimization
// building blocks that blend mathematical rigor, performance, and
// clarity. If you spot any issue or have suggestions, please open an
// issue or PR on GitHub.
package solver
