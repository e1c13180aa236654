// Package formula provides the Boolean constraint tree built over
// pkg/expr's arithmetic expressions: relational atoms (Eq, Neq, Gt, Geq,
// Lt, Leq), propositional connectives (And, Or, Not), the constants True
// and False, free Boolean variables, and a single bounded quantifier
// (Forall) over a box-shaped domain.
package formula

import (
	"strings"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/variable"
)

// Kind tags every possible formula node.
type Kind uint8

const (
	True Kind = iota
	False
	BoolVar
	Eq
	Neq
	Gt
	Geq
	Lt
	Leq
	And
	Or
	Not
	Forall
)

func (k Kind) String() string {
	names := [...]string{
		"True", "False", "BoolVar", "Eq", "Neq", "Gt", "Geq", "Lt", "Leq",
		"And", "Or", "Not", "Forall",
	}
	if int(k) < len(names) {
		return names[k]
	}

	return "Unknown"
}

// Formula is an immutable node of the Boolean constraint tree.  Unlike
// pkg/expr's cells, formulas are not hash-consed: the search engine holds
// at most a handful of live formulas (the conjuncts of one problem), so
// interning would add bookkeeping without a measurable benefit.
type Formula struct {
	kind Kind

	v variable.Variable

	lhs, rhs expr.Expr

	operands []*Formula

	// Forall
	boundVars []variable.Variable
	domain    box.Box
	body      *Formula
}

// TrueFormula is the always-satisfied formula.
func TrueFormula() *Formula { return &Formula{kind: True} }

// FalseFormula is the never-satisfied formula.
func FalseFormula() *Formula { return &Formula{kind: False} }

// BoolVarFormula lifts a Boolean-kinded variable into a formula leaf.
func BoolVarFormula(v variable.Variable) *Formula {
	if v.Kind() != variable.Boolean {
		panic("formula: BoolVarFormula requires a Boolean-kinded variable")
	}

	return &Formula{kind: BoolVar, v: v}
}

func relation(kind Kind, lhs, rhs expr.Expr) *Formula {
	return &Formula{kind: kind, lhs: lhs, rhs: rhs}
}

// EqFormula, NeqFormula, GtFormula, GeqFormula, LtFormula, LeqFormula build
// the atomic relational formulas lhs <op> rhs.
func EqFormula(lhs, rhs expr.Expr) *Formula  { return relation(Eq, lhs, rhs) }
func NeqFormula(lhs, rhs expr.Expr) *Formula { return relation(Neq, lhs, rhs) }
func GtFormula(lhs, rhs expr.Expr) *Formula  { return relation(Gt, lhs, rhs) }
func GeqFormula(lhs, rhs expr.Expr) *Formula { return relation(Geq, lhs, rhs) }
func LtFormula(lhs, rhs expr.Expr) *Formula  { return relation(Lt, lhs, rhs) }
func LeqFormula(lhs, rhs expr.Expr) *Formula { return relation(Leq, lhs, rhs) }

// AndFormula builds the conjunction of zero or more formulas, flattening
// nested conjunctions.
func AndFormula(operands ...*Formula) *Formula {
	return connective(And, True, operands)
}

// OrFormula builds the disjunction of zero or more formulas, flattening
// nested disjunctions.
func OrFormula(operands ...*Formula) *Formula {
	return connective(Or, False, operands)
}

func connective(kind Kind, identity Kind, operands []*Formula) *Formula {
	flat := make([]*Formula, 0, len(operands))

	for _, f := range operands {
		if f.kind == kind {
			flat = append(flat, f.operands...)
			continue
		}

		flat = append(flat, f)
	}

	if len(flat) == 0 {
		return &Formula{kind: identity}
	}

	if len(flat) == 1 {
		return flat[0]
	}

	return &Formula{kind: kind, operands: flat}
}

// NotFormula builds the negation of f, eliminating double negation.
func NotFormula(f *Formula) *Formula {
	if f.kind == Not {
		return f.operands[0]
	}

	if f.kind == True {
		return FalseFormula()
	}

	if f.kind == False {
		return TrueFormula()
	}

	return &Formula{kind: Not, operands: []*Formula{f}}
}

// ForallFormula builds a bounded universal quantifier: body must hold for
// every point of domain ranging over boundVars.
func ForallFormula(boundVars []variable.Variable, domain box.Box, body *Formula) *Formula {
	return &Formula{kind: Forall, boundVars: boundVars, domain: domain, body: body}
}

// Kind returns this formula's tag.
func (f *Formula) Kind() Kind { return f.kind }

// Variable returns the wrapped Boolean variable; only meaningful when
// Kind()==BoolVar.
func (f *Formula) Variable() variable.Variable { return f.v }

// Operands returns this formula's And/Or/Not operands.
func (f *Formula) Operands() []*Formula { return f.operands }

// Relation returns the (lhs, rhs) pair of a relational atom; only
// meaningful for Eq/Neq/Gt/Geq/Lt/Leq.
func (f *Formula) Relation() (expr.Expr, expr.Expr) { return f.lhs, f.rhs }

// BoundVariables, Domain, Body return a Forall formula's quantified
// variables, its bounding domain, and its quantified body.
func (f *Formula) BoundVariables() []variable.Variable { return f.boundVars }
func (f *Formula) Domain() box.Box                     { return f.domain }
func (f *Formula) Body() *Formula                      { return f.body }

// relKind maps a relational formula Kind to the matching expr.RelKind, used
// when building an IfThenElse condition from a formula atom.
func (f *Formula) relKind() expr.RelKind {
	switch f.kind {
	case Eq:
		return expr.RelEq
	case Neq:
		return expr.RelNeq
	case Gt:
		return expr.RelGt
	case Geq:
		return expr.RelGeq
	case Lt:
		return expr.RelLt
	case Leq:
		return expr.RelLeq
	default:
		panic("formula: relKind called on non-relational formula")
	}
}

// AsCondition converts a relational atom into the expr.Relation used as an
// IfThenElse condition.  Panics for non-relational formulas.
func (f *Formula) AsCondition() expr.Relation {
	return expr.Relation{Kind: f.relKind(), Lhs: f.lhs, Rhs: f.rhs}
}

func (f *Formula) String() string {
	switch f.kind {
	case True:
		return "true"
	case False:
		return "false"
	case BoolVar:
		return f.v.Name()
	case Eq, Neq, Gt, Geq, Lt, Leq:
		return f.lhs.String() + " " + relSymbol(f.kind) + " " + f.rhs.String()
	case Not:
		return "!(" + f.operands[0].String() + ")"
	case And:
		return joinOperands(f.operands, " & ")
	case Or:
		return joinOperands(f.operands, " | ")
	case Forall:
		return "forall(" + f.body.String() + ")"
	default:
		return "?"
	}
}

func relSymbol(k Kind) string {
	switch k {
	case Eq:
		return "="
	case Neq:
		return "!="
	case Gt:
		return ">"
	case Geq:
		return ">="
	case Lt:
		return "<"
	case Leq:
		return "<="
	default:
		return "?"
	}
}

func joinOperands(operands []*Formula, sep string) string {
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = "(" + o.String() + ")"
	}

	return strings.Join(parts, sep)
}
