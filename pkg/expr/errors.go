package expr

import "fmt"

// DomainError reports that a function was applied outside the domain it is
// mathematically defined on: Log or Sqrt of a negative argument, Log of
// zero, or division by zero.
type DomainError struct {
	Func string
	Arg  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("expr: %s undefined at %g", e.Func, e.Arg)
}

// NaNError reports that an evaluation produced NaN from otherwise
// well-defined finite inputs (e.g. 0/0 at a point, or Pow of a negative
// base to a non-integer exponent).
type NaNError struct {
	Op string
}

func (e *NaNError) Error() string {
	return "expr: " + e.Op + " produced NaN"
}

// NotDifferentiableError reports that Differentiate was asked to
// differentiate an expression at a point where the requested variable
// appears free inside a non-differentiable operator (Abs, Min, Max,
// IfThenElse, UninterpretedFunction).
type NotDifferentiableError struct {
	Kind Kind
}

func (e *NotDifferentiableError) Error() string {
	return "expr: not differentiable through " + e.Kind.String()
}

// UnknownVariableError reports that Evaluate was asked to evaluate an
// expression containing a free variable absent from its environment.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return "expr: unbound variable " + e.Name
}
