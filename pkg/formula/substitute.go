package formula

import (
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/variable"
)

// Substitute returns f with every free occurrence of a variable bound in
// exprSigma (arithmetic variables) or boolSigma (Boolean variables)
// replaced by its image.
func Substitute(f *Formula, exprSigma map[uint64]expr.Expr, boolSigma map[uint64]*Formula) *Formula {
	switch f.kind {
	case True, False:
		return f
	case BoolVar:
		if repl, ok := boolSigma[f.v.Id()]; ok {
			return repl
		}

		return f
	case Eq, Neq, Gt, Geq, Lt, Leq:
		return relation(f.kind, expr.Substitute(f.lhs, exprSigma), expr.Substitute(f.rhs, exprSigma))
	case Not:
		return NotFormula(Substitute(f.operands[0], exprSigma, boolSigma))
	case And:
		return AndFormula(substituteAll(f.operands, exprSigma, boolSigma)...)
	case Or:
		return OrFormula(substituteAll(f.operands, exprSigma, boolSigma)...)
	case Forall:
		bound := make(map[uint64]bool, len(f.boundVars))
		for _, v := range f.boundVars {
			bound[v.Id()] = true
		}

		innerExpr := restrict(exprSigma, bound)
		innerBool := restrictFormula(boolSigma, bound)

		return ForallFormula(f.boundVars, f.domain, Substitute(f.body, innerExpr, innerBool))
	default:
		return f
	}
}

// SubstituteVar is a convenience wrapper for a single arithmetic
// variable->expression replacement.
func SubstituteVar(f *Formula, v variable.Variable, repl expr.Expr) *Formula {
	return Substitute(f, map[uint64]expr.Expr{v.Id(): repl}, nil)
}

func substituteAll(operands []*Formula, exprSigma map[uint64]expr.Expr, boolSigma map[uint64]*Formula) []*Formula {
	out := make([]*Formula, len(operands))
	for i, o := range operands {
		out[i] = Substitute(o, exprSigma, boolSigma)
	}

	return out
}

func restrict(sigma map[uint64]expr.Expr, bound map[uint64]bool) map[uint64]expr.Expr {
	out := make(map[uint64]expr.Expr, len(sigma))

	for id, e := range sigma {
		if !bound[id] {
			out[id] = e
		}
	}

	return out
}

func restrictFormula(sigma map[uint64]*Formula, bound map[uint64]bool) map[uint64]*Formula {
	out := make(map[uint64]*Formula, len(sigma))

	for id, f := range sigma {
		if !bound[id] {
			out[id] = f
		}
	}

	return out
}
