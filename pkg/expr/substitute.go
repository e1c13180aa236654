package expr

import "github.com/dreal-go/dreal/pkg/variable"

// Substitute returns e with every occurrence of a variable bound in sigma
// replaced by its image, rebuilding through the smart constructors so the
// result stays normalized and hash-consed.
func Substitute(e Expr, sigma map[uint64]Expr) Expr {
	if len(sigma) == 0 {
		return e
	}

	switch e.kind {
	case Constant, RealConstant, NaN:
		return e
	case Var:
		if repl, ok := sigma[e.v.Id()]; ok {
			return repl
		}

		return e
	case KindAdd:
		args := make([]Expr, 0, len(e.addTerms)+1)
		args = append(args, Const(e.addConst))

		for _, t := range e.addTerms {
			args = append(args, Mul(Const(t.Coeff), Substitute(t.Term, sigma)))
		}

		return Add(args...)
	case KindMul:
		args := make([]Expr, 0, len(e.mulTerms)+1)
		args = append(args, Const(e.mulConst))

		for _, t := range e.mulTerms {
			args = append(args, Pow(Substitute(t.Base, sigma), Substitute(t.Exp, sigma)))
		}

		return Mul(args...)
	case KindIfThenElse:
		cond := Relation{
			Kind: e.cond.Kind,
			Lhs:  Substitute(e.cond.Lhs, sigma),
			Rhs:  Substitute(e.cond.Rhs, sigma),
		}

		return IfThenElse(cond, Substitute(e.args[0], sigma), Substitute(e.args[1], sigma))
	case UninterpretedFunction:
		args := make([]Expr, len(e.args))
		for i, a := range e.args {
			args[i] = Substitute(a, sigma)
		}

		return UninterpretedFunctionExpr(e.ufName, args...)
	default:
		args := make([]Expr, len(e.args))
		for i, a := range e.args {
			args[i] = Substitute(a, sigma)
		}

		return rebuild(e.kind, args)
	}
}

// SubstituteVar is a convenience wrapper for a single variable->expression
// replacement.
func SubstituteVar(e Expr, v variable.Variable, repl Expr) Expr {
	return Substitute(e, map[uint64]Expr{v.Id(): repl})
}

// rebuild reapplies the smart constructor for kind to a freshly-substituted
// argument list, used for every operator that carries a plain []args.
func rebuild(kind Kind, args []Expr) Expr {
	switch kind {
	case KindDiv:
		return Div(args[0], args[1])
	case KindPow:
		return Pow(args[0], args[1])
	case KindLog:
		return Log(args[0])
	case KindAbs:
		return Abs(args[0])
	case KindExp:
		return Exp(args[0])
	case KindSqrt:
		return Sqrt(args[0])
	case KindSin:
		return Sin(args[0])
	case KindCos:
		return Cos(args[0])
	case KindTan:
		return Tan(args[0])
	case KindAsin:
		return Asin(args[0])
	case KindAcos:
		return Acos(args[0])
	case KindAtan:
		return Atan(args[0])
	case KindAtan2:
		return Atan2(args[0], args[1])
	case KindSinh:
		return Sinh(args[0])
	case KindCosh:
		return Cosh(args[0])
	case KindTanh:
		return Tanh(args[0])
	case KindMin:
		return Min(args[0], args[1])
	case KindMax:
		return Max(args[0], args[1])
	default:
		panic("expr: rebuild: unhandled kind " + kind.String())
	}
}
