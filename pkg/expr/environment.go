package expr

import "github.com/dreal-go/dreal/pkg/variable"

// Environment binds variables to point values for Evaluate.
type Environment struct {
	values map[uint64]float64
}

// NewEnvironment builds an empty Environment.
func NewEnvironment() Environment {
	return Environment{values: make(map[uint64]float64)}
}

// Bind records v's value, returning the receiver for chaining.
func (e Environment) Bind(v variable.Variable, value float64) Environment {
	e.values[v.Id()] = value
	return e
}

// Lookup returns v's bound value, and whether it was bound at all.
func (e Environment) Lookup(v variable.Variable) (float64, bool) {
	val, ok := e.values[v.Id()]
	return val, ok
}
