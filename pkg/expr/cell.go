// Package expr implements a hash-consed symbolic expression DAG: an
// immutable directed acyclic graph of "cells", each carrying a kind tag, a
// content hash, a precomputed is-polynomial flag and kind-specific payload,
// built through smart constructors that normalize associative operators and
// fold algebraic identities eagerly.
//
// Cells are interned in a process-wide hash-consing table guarded by a
// double-checked read-write lock: a read-locked lookup on the common case
// of a cell that already exists, a write-locked insert only on first sight
// of new content.
package expr

import "github.com/dreal-go/dreal/pkg/variable"

// Kind tags every possible cell.  Rather than one Go type per operator kind
// dispatched through an interface, cells here are a single tagged struct:
// simpler dispatch tables for Evaluate/Differentiate/Expand/Substitute, and
// it keeps hash-consing identity (a single *Cell pointer type)
// straightforward.
type Kind uint8

const (
	// Constant is a plain, exactly representable double.
	Constant Kind = iota
	// RealConstant is a pair of adjacent doubles bracketing a real the
	// parser could not convert exactly.
	RealConstant
	// Var wraps a non-dummy, non-Boolean Variable.
	Var
	// KindAdd is the normalized n-ary sum: a constant plus coefficient*term pairs.
	KindAdd
	// KindMul is the normalized n-ary product: a constant times base^exponent
	// factors.
	KindMul
	// KindDiv is binary division: args[0] / args[1].
	KindDiv
	// KindLog is natural log: args[0].
	KindLog
	// KindAbs is absolute value: args[0].
	KindAbs
	// KindExp is e raised to args[0].
	KindExp
	// KindSqrt is the square root of args[0].
	KindSqrt
	// KindPow is args[0] raised to the power args[1].
	KindPow
	// KindSin, KindCos, KindTan, KindAsin, KindAcos, KindAtan are the usual unary trig functions.
	KindSin
	KindCos
	KindTan
	KindAsin
	KindAcos
	KindAtan
	// KindAtan2 is the two-argument arctangent: atan2(args[0], args[1]).
	KindAtan2
	// KindSinh, KindCosh, KindTanh are the hyperbolic functions.
	KindSinh
	KindCosh
	KindTanh
	// KindMin and KindMax are binary: min/max(args[0], args[1]).
	KindMin
	KindMax
	// KindIfThenElse selects args[0] (true branch) or args[1] (false branch)
	// according to Cond.
	KindIfThenElse
	// UninterpretedFunction applies an opaque named function to args.
	UninterpretedFunction
	// NaN is the explicit overflow/failure sentinel; it must never survive
	// into a successfully constructed expression except as this marker.
	NaN
)

func (k Kind) String() string {
	names := [...]string{
		"Constant", "RealConstant", "Var", "Add", "Mul", "Div", "Log", "Abs",
		"Exp", "Sqrt", "Pow", "Sin", "Cos", "Tan", "Asin", "Acos", "Atan",
		"Atan2", "Sinh", "Cosh", "Tanh", "Min", "Max", "IfThenElse",
		"UninterpretedFunction", "NaN",
	}
	if int(k) < len(names) {
		return names[k]
	}

	return "Unknown"
}

// RelKind identifies the relational operator of an IfThenElse condition.
type RelKind uint8

const (
	RelEq RelKind = iota
	RelNeq
	RelGt
	RelGeq
	RelLt
	RelLeq
)

func (k RelKind) String() string {
	names := [...]string{"=", "!=", ">", ">=", "<", "<="}
	if int(k) < len(names) {
		return names[k]
	}

	return "?"
}

// Relation is an atomic relational predicate over two expressions, used as
// the condition of an IfThenElse cell.  It is intentionally self-contained
// in pkg/expr (rather than referencing pkg/formula) so that expressions
// never depend on formulas — pkg/formula depends on pkg/expr and reuses
// Relation as the atom underlying its Eq/Neq/Gt/Geq/Lt/Leq formula kinds.
type Relation struct {
	Kind     RelKind
	Lhs, Rhs Expr
}

// AddTerm is one coefficient*term summand of a normalized Add cell.
type AddTerm struct {
	Term  *Cell
	Coeff float64
}

// MulTerm is one base^exponent factor of a normalized Mul cell.
type MulTerm struct {
	Base *Cell
	Exp  *Cell
}

// Cell is one hash-consed node of the expression DAG.  Expr is the public
// handle type: a *Cell pointer, valid to compare with == exactly because
// cells are interned.
type Cell struct {
	kind   Kind
	hash   uint64
	isPoly bool

	// Var
	v variable.Variable

	// Constant
	c float64

	// RealConstant
	rcLo, rcHi float64
	rcRepLo    bool

	// Add
	addConst float64
	addTerms []AddTerm

	// Mul
	mulConst float64
	mulTerms []MulTerm

	// Generic children, used by Div/Log/Abs/Exp/Sqrt/Pow/trig/Min/Max/
	// IfThenElse/UninterpretedFunction.
	args []*Cell

	// IfThenElse
	cond Relation

	// UninterpretedFunction
	ufName string
}

// Expr is the public handle to a DAG cell.
type Expr = *Cell

// Kind returns this cell's tag.
func (c *Cell) Kind() Kind { return c.kind }

// IsPolynomial reports whether this cell denotes a polynomial expression:
// built only from Constant, Var, Add, Mul and Pow-by-non-negative-integer
// cells, and Div by a Constant.
func (c *Cell) IsPolynomial() bool { return c.isPoly }

// Hash returns this cell's content hash, a pure function of its kind and
// children.
func (c *Cell) Hash() uint64 { return c.hash }

// Args returns this cell's generic children slice (empty for leaf kinds and
// for Add/Mul, whose operands live in AddTerms/MulTerms instead).
func (c *Cell) Args() []*Cell { return c.args }

// Variable returns the wrapped Variable; only meaningful when Kind()==Var.
func (c *Cell) Variable() variable.Variable { return c.v }

// ConstantValue returns the wrapped double; only meaningful when
// Kind()==Constant.
func (c *Cell) ConstantValue() float64 { return c.c }

// RealConstantBounds returns (lb, ub, representativeIsLb); only meaningful
// when Kind()==RealConstant.
func (c *Cell) RealConstantBounds() (float64, float64, bool) {
	return c.rcLo, c.rcHi, c.rcRepLo
}

// AddConstant returns the constant term of a normalized Add cell.
func (c *Cell) AddConstant() float64 { return c.addConst }

// AddTerms returns the coefficient*term summands of a normalized Add cell.
func (c *Cell) AddTerms() []AddTerm { return c.addTerms }

// MulConstant returns the constant factor of a normalized Mul cell.
func (c *Cell) MulConstant() float64 { return c.mulConst }

// MulTerms returns the base^exponent factors of a normalized Mul cell.
func (c *Cell) MulTerms() []MulTerm { return c.mulTerms }

// Condition returns the IfThenElse condition; only meaningful when
// Kind()==IfThenElse.
func (c *Cell) Condition() Relation { return c.cond }

// FunctionName returns the uninterpreted function's name; only meaningful
// when Kind()==UninterpretedFunction.
func (c *Cell) FunctionName() string { return c.ufName }

// Equals reports whether two expressions are the same cell.  Because cells
// are hash-consed, this is pointer identity.
func Equals(a, b Expr) bool { return a == b }
