// Package benders provides an exact Benders decomposition driver for
// mixed-integer linear programs whose variables split into a "hard"
// integer block x and an "easy" continuous block y.
//
// Overview:
//
//   - The target problem is: maximize c1·x + c2·y subject to
//     A1·x + A2·y ≤ b, with x integer in the box [0, UpperBoundX]^n and
//     y ≥ 0 continuous.
//   - Instead of solving the coupled program whole, the driver alternates
//     between a master MIP over (t, x), with t an upper bound on the
//     achievable objective, and a continuous subproblem that prices a
//     fixed x by solving the dual-form LP
//     minimize (b − A1·x)·u subject to A2ᵀ·u ≥ c2, u ≥ 0.
//   - Each round the master proposes an optimistic bound fm and a point
//     x*; the subproblem answers with the true value fs reachable from
//     x*. Disagreement yields exactly one new master cut: an optimality
//     cut t + (A1ᵀu − c1)·x ≤ b·u from a dual vertex u, or a feasibility
//     cut (A1ᵀd)·x ≤ b·d from an extreme ray d. Agreement means both
//     bounds have met at the optimum.
//
// When to use:
//
//   - Facility location, network design, capacity planning: any model
//     where a few integer decisions (open/close, build/skip) gate a large
//     continuous allocation problem.
//   - Whenever the coupled MIP is too large for direct branch-and-bound
//     but the continuous block is cheap once the integers are fixed.
//
// Key features:
//
//   - Cuts are typed records (Cut), not string-keyed solver rows; the
//     master is rebuilt from them every round, so the accumulated state
//     is inspectable and the solver backend stays stateless.
//   - Functional options tune the artificial bound M, the x box, the
//     iteration cap, the convergence tolerance and the backend itself.
//   - The full iteration history is returned as Records (statuses, bound
//     pairs, iterates) for diagnostics and testing; switch it off with
//     WithTrace(false) on hot paths.
//   - Any solver.Solver implementation can be swapped in via WithSolver,
//     as long as it honors the Solution contract (status, primal point,
//     row duals, unbounded rays).
//
// Performance and complexity:
//
//   - Per iteration: one MIP solve over n+1 columns plus k cut rows
//     (k grows by one per non-terminal round) and one LP solve over m
//     columns and p rows.
//   - The cut pool only grows, so master solves get progressively more
//     constrained; finite convergence follows from the finiteness of the
//     dual polyhedron's vertex and ray sets.
//   - Space: O(k·n) for the cut pool, plus O(iterations·(n+m)) for the
//     trace when enabled.
//
// Error handling (sentinel errors):
//
//   - ErrNilProblem: Decompose received a nil *ProblemData.
//   - ErrBadDimension, ErrDimensionMismatch, ErrBadValue: NewProblem
//     rejected the instance (empty dimension, shape disagreement, NaN or
//     infinite coefficient).
//   - ErrMasterInfeasible: the accumulated cuts exclude every integer box
//     point, proving the original problem infeasible.
//   - ErrSubproblemDegenerate: a subproblem outcome provided neither a
//     usable vertex nor a usable ray, so no cut can make progress.
//   - ErrSolverFailure: the backend returned an error or a malformed
//     solution; the cause is wrapped.
//   - ErrIterationLimit: MaxIterations elapsed; the returned Result still
//     carries the best bound found, with Converged=false.
//   - ErrBadM, ErrBadUpperBound, ErrBadIterations, ErrBadEps,
//     ErrNilSolver: returned (via panic) by the corresponding With*
//     option constructors on nonsensical arguments.
//
// API reference:
//
//	func NewProblem(c1, c2 []float64, a1, a2 mat.Matrix, b []float64) (*ProblemData, error)
//	func Decompose(p *ProblemData, opts ...Option) (Result, error)
//
//	  - p:     immutable problem instance (deep-copied at construction).
//	  - opts:  zero or more functional options:
//	      • WithM(float64):            artificial bound on t (default 1e6).
//	      • WithUpperBoundX(float64):  shared box bound on x (default 1e6).
//	      • WithMaxIterations(int):    iteration cap (default 1000).
//	      • WithEps(float64):          convergence tolerance; 0 = exact (default).
//	      • WithSolver(solver.Solver): backend (default solver.NewSimplex()).
//	      • WithTrace(bool):           per-iteration Records (default true).
//	  - Result: Objective (shared optimum), X (optimal integer point),
//	    V (optimal second-stage variables, the subproblem's row duals),
//	    Converged, Iterations, Records.
//
// Determinism:
//
//   - With the default backend the driver is fully deterministic:
//     identical problems and options produce identical results,
//     iteration counts and traces. There is no randomness to seed.
//
// Thread safety:
//
//   - A ProblemData is immutable after NewProblem and safe to share
//     across goroutines; each Decompose call builds its own private
//     state, so concurrent runs on the same instance are safe as long as
//     the supplied Solver is (the default is stateless).
//
// See also:
//
//   - solver.Simplex: the bundled LP/MIP backend (dense simplex with
//     branch-and-bound, dual prices and ray certificates).
//
// Thanks for choosing lvlopt! We aim to provide rock-solid optimization
// building blocks that blend mathematical rigor, performance, and
// clarity. If you spot any issue or have suggestions, please open an
// issue or PR on GitHub.
package benders
