package frame

import "strings"

// Definition is one column definition: an optional name and the literal
// text of the expression that produces the column. An empty Name derives
// the name from the trimmed expression text.
type Definition struct {
	Name string
	Expr string
}

// Evaluator resolves a single column expression against the bindings
// accumulated so far in a construction call. Implementations live outside
// this package; evaluation failures are returned to the Build caller
// unchanged.
type Evaluator interface {
	Eval(expr string, scope *Scope) (any, error)
}

// Scope is the ordered name->value environment threaded through one Build
// call. Binding a name already in the scope overwrites the value in place:
// position follows the first occurrence, the last write wins. A Scope is
// owned by a single call and discarded when it returns.
type Scope struct {
	names  []string
	values map[string]any
}

// NewScope returns an empty binding scope.
func NewScope() *Scope {
	return &Scope{values: make(map[string]any)}
}

// Bind adds or overwrites a binding.
func (s *Scope) Bind(name string, v any) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = v
}

// Lookup returns the value bound to name.
func (s *Scope) Lookup(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names returns the bound names in binding order.
func (s *Scope) Names() []string {
	return append([]string{}, s.names...)
}

// Len returns the number of bindings.
func (s *Scope) Len() int { return len(s.names) }

// Build evaluates definitions strictly left to right in one growing scope,
// so each expression sees every column bound before it, then runs the
// FromColumns pipeline on the result. Evaluation may have side effects;
// the order is part of the contract. An evaluation error aborts the call
// and is returned verbatim.
func Build(defs []Definition, ev Evaluator) (*Table, error) {
	scope := NewScope()
	for _, def := range defs {
		name := def.Name
		if name == "" {
			name = strings.TrimSpace(def.Expr)
		}
		v, err := ev.Eval(def.Expr, scope)
		if err != nil {
			return nil, err
		}
		scope.Bind(name, v)
	}

	cols := make([]Pair, 0, scope.Len())
	for _, n := range scope.names {
		cols = append(cols, Pair{Name: n, Value: scope.values[n]})
	}
	return FromColumns(cols)
}
