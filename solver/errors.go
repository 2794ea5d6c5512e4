package solver

import "errors"

var (
	// ErrNilModel indicates a nil *Model was passed to Solve.
	ErrNilModel = errors.New("solver: model is nil")
	// ErrNoVariables indicates the model declares no columns.
	ErrNoVariables = errors.New("solver: model has no variables")
	// ErrBadBounds indicates a variable with Lower > Upper, or a NaN bound.
	ErrBadBounds = errors.New("solver: variable bounds are inverted or NaN")
	// ErrBadCoefficient indicates a NaN or infinite objective/constraint coefficient.
	ErrBadCoefficient = errors.New("solver: coefficient is NaN or infinite")
	// ErrRowMismatch indicates a constraint whose coefficient row length
	// differs from the number of variables.
	ErrRowMismatch = errors.New("solver: constraint row length does not match variable count")
	// ErrDuplicateName indicates two variables or two constraints share a name.
	ErrDuplicateName = errors.New("solver: duplicate variable or constraint name")
	// ErrNameNotFound indicates a VariableIndex/ConstraintIndex lookup miss.
	ErrNameNotFound = errors.New("solver: no variable or constraint with that name")
	// ErrSimplexFailure indicates the underlying LP routine failed for a
	// reason outside the three-status contract (e.g. a singular basis).
	ErrSimplexFailure = errors.New("solver: simplex backend failure")
	// ErrNodeLimit indicates branch-and-bound exhausted its node budget
	// before proving optimality or infeasibility.
	ErrNodeLimit = errors.New("solver: branch-and-bound node limit exceeded")

	// ErrBadTolerance indicates a negative or NaN tolerance passed to an option.
	ErrBadTolerance = errors.New("solver: tolerance must be non-negative")
	// ErrBadNodeLimit indicates a non-positive node budget passed to an option.
	ErrBadNodeLimit = errors.New("solver: node limit must be positive")
)
