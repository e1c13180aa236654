// Package variable provides the Variable value type shared by pkg/expr and
// pkg/formula: a stable integer identity plus a display name and a type tag.
package variable

import "sync/atomic"

// Kind identifies the domain a Variable ranges over.
type Kind uint8

const (
	// Continuous indicates a real-valued (floating point) variable.
	Continuous Kind = iota
	// Integer indicates a variable restricted to integer values.
	Integer
	// Binary indicates a variable restricted to {0,1}.
	Binary
	// Boolean indicates a propositional variable; it never appears inside an
	// Expression, only inside a Formula.
	Boolean
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "Continuous"
	case Integer:
		return "Integer"
	case Binary:
		return "Binary"
	case Boolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

// Dummy is the sentinel id reserved for the zero Variable; it never
// participates in an expression.
const Dummy uint64 = 0

// counter is the process-wide id generator.  Variable identities are never
// reused within a process lifetime.
var counter atomic.Uint64

func init() {
	// Id 0 is the dummy; the first real variable gets id 1.
	counter.Store(Dummy)
}

// Variable is a value type identified solely by its Id; two variables are
// equal exactly when their Ids match.
type Variable struct {
	id   uint64
	name string
	kind Kind
}

// New allocates a fresh Variable with a process-wide unique, never-reused id.
func New(name string, kind Kind) Variable {
	id := counter.Add(1)
	return Variable{id, name, kind}
}

// DummyVar returns the reserved sentinel variable.
func DummyVar() Variable {
	return Variable{Dummy, "<dummy>", Continuous}
}

// Id returns this variable's stable integer identity.
func (v Variable) Id() uint64 { return v.id }

// Name returns this variable's display name.
func (v Variable) Name() string { return v.name }

// Kind returns this variable's type tag.
func (v Variable) Kind() Kind { return v.kind }

// IsDummy checks whether this is the reserved sentinel variable.
func (v Variable) IsDummy() bool { return v.id == Dummy }

// Equals reports whether two variables have the same identity.
func (v Variable) Equals(o Variable) bool { return v.id == o.id }

// String implements fmt.Stringer.
func (v Variable) String() string { return v.name }
