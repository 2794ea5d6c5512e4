package solver

// Model is an ordered collection of variables (columns) and linear
// constraints (rows) together with an objective sense. Build it with
// NewModel and the Add* methods; column and row indices are assigned in
// insertion order and never change.
//
// A Model is plain data: it carries no solver state and may be solved any
// number of times. It is not safe for concurrent mutation.
type Model struct {
	sense Sense
	vars  []Variable
	cons  []Constraint

	varIndex map[string]int
	conIndex map[string]int
}

// NewModel returns an empty model with the given objective sense.
func NewModel(sense Sense) *Model {
	return &Model{
		sense:    sense,
		varIndex: make(map[string]int),
		conIndex: make(map[string]int),
	}
}

// Sense reports the model's objective direction.
func (m *Model) Sense() Sense { return m.sense }

// NumVariables reports the number of columns.
func (m *Model) NumVariables() int { return len(m.vars) }

// NumConstraints reports the number of rows.
func (m *Model) NumConstraints() int { return len(m.cons) }

// AddVariable appends a continuous column with the given bounds and
// objective coefficient and returns its index. Names must be unique; an
// empty name is allowed and stays unindexed.
func (m *Model) AddVariable(name string, lower, upper, cost float64) int {
	return m.addColumn(Variable{Name: name, Lower: lower, Upper: upper, Cost: cost})
}

// AddIntegerVariable appends an integral column with the given bounds and
// objective coefficient and returns its index.
func (m *Model) AddIntegerVariable(name string, lower, upper, cost float64) int {
	return m.addColumn(Variable{Name: name, Lower: lower, Upper: upper, Cost: cost, Integer: true})
}

func (m *Model) addColumn(v Variable) int {
	idx := len(m.vars)
	m.vars = append(m.vars, v)
	if v.Name != "" {
		m.varIndex[v.Name] = idx
	}

	return idx
}

// AddConstraint appends the row coeffs·x rel rhs and returns its index.
// coeffs is copied and must have one entry per variable already declared;
// the length is enforced at solve time so rows may also be added first and
// padded by the caller.
func (m *Model) AddConstraint(name string, coeffs []float64, rel Relation, rhs float64) int {
	row := make([]float64, len(coeffs))
	copy(row, coeffs)

	idx := len(m.cons)
	m.cons = append(m.cons, Constraint{Name: name, Coeffs: row, Rel: rel, RHS: rhs})
	if name != "" {
		m.conIndex[name] = idx
	}

	return idx
}

// Variable returns a copy of column i.
func (m *Model) Variable(i int) Variable { return m.vars[i] }

// Constraint returns a copy of row i. The coefficient slice is shared;
// callers must not mutate it.
func (m *Model) Constraint(i int) Constraint { return m.cons[i] }

// VariableIndex resolves a column by name.
//
// Errors: ErrNameNotFound when no variable carries the name.
func (m *Model) VariableIndex(name string) (int, error) {
	idx, ok := m.varIndex[name]
	if !ok {
		return 0, ErrNameNotFound
	}

	return idx, nil
}

// ConstraintIndex resolves a row by name.
//
// Errors: ErrNameNotFound when no constraint carries the name.
func (m *Model) ConstraintIndex(name string) (int, error) {
	idx, ok := m.conIndex[name]
	if !ok {
		return 0, ErrNameNotFound
	}

	return idx, nil
}

// IsMIP reports whether any column is integral.
func (m *Model) IsMIP() bool {
	for i := range m.vars {
		if m.vars[i].Integer {
			return true
		}
	}

	return false
}
