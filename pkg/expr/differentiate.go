package expr

import "github.com/dreal-go/dreal/pkg/variable"

// Differentiate computes the partial derivative of e with respect to v
// using analytic rules, rebuilding through the smart constructors.  It
// returns NotDifferentiableError when v occurs free inside an operator that
// has no derivative everywhere on its domain — Abs, Min, Max, IfThenElse,
// UninterpretedFunction — since those are exactly the places branch
// selection falls back to MaxDiam instead of a gradient heuristic.
func Differentiate(e Expr, v variable.Variable) (Expr, error) {
	switch e.kind {
	case Constant, RealConstant, NaN:
		return Const(0), nil
	case Var:
		if e.v.Equals(v) {
			return Const(1), nil
		}

		return Const(0), nil
	case KindAdd:
		terms := make([]Expr, 0, len(e.addTerms))

		for _, t := range e.addTerms {
			d, err := Differentiate(t.Term, v)
			if err != nil {
				return nil, err
			}

			terms = append(terms, Mul(Const(t.Coeff), d))
		}

		return Add(terms...), nil
	case KindMul:
		return differentiateMul(e, v)
	case KindDiv:
		a, b := e.args[0], e.args[1]

		da, err := Differentiate(a, v)
		if err != nil {
			return nil, err
		}

		db, err := Differentiate(b, v)
		if err != nil {
			return nil, err
		}

		return Div(Sub(Mul(da, b), Mul(a, db)), Pow(b, Const(2))), nil
	case KindPow:
		return differentiatePowFactor(e.args[0], e.args[1], v)
	case KindLog:
		d, err := Differentiate(e.args[0], v)
		if err != nil {
			return nil, err
		}

		return Div(d, e.args[0]), nil
	case KindAbs:
		return differentiateGuarded(e, []Expr{e.args[0]}, v)
	case KindExp:
		d, err := Differentiate(e.args[0], v)
		if err != nil {
			return nil, err
		}

		return Mul(e, d), nil
	case KindSqrt:
		d, err := Differentiate(e.args[0], v)
		if err != nil {
			return nil, err
		}

		return Div(d, Mul(Const(2), e)), nil
	case KindSin:
		return chainRule(e.args[0], v, func(a, d Expr) Expr { return Mul(Cos(a), d) })
	case KindCos:
		return chainRule(e.args[0], v, func(a, d Expr) Expr { return Neg(Mul(Sin(a), d)) })
	case KindTan:
		return chainRule(e.args[0], v, func(a, d Expr) Expr { return Div(d, Pow(Cos(a), Const(2))) })
	case KindAsin:
		return chainRule(e.args[0], v, func(a, d Expr) Expr {
			return Div(d, Sqrt(Sub(Const(1), Pow(a, Const(2)))))
		})
	case KindAcos:
		return chainRule(e.args[0], v, func(a, d Expr) Expr {
			return Neg(Div(d, Sqrt(Sub(Const(1), Pow(a, Const(2))))))
		})
	case KindAtan:
		return chainRule(e.args[0], v, func(a, d Expr) Expr {
			return Div(d, Add(Const(1), Pow(a, Const(2))))
		})
	case KindAtan2:
		y, x := e.args[0], e.args[1]

		dy, err := Differentiate(y, v)
		if err != nil {
			return nil, err
		}

		dx, err := Differentiate(x, v)
		if err != nil {
			return nil, err
		}

		denom := Add(Pow(x, Const(2)), Pow(y, Const(2)))

		return Div(Sub(Mul(x, dy), Mul(y, dx)), denom), nil
	case KindSinh:
		return chainRule(e.args[0], v, func(a, d Expr) Expr { return Mul(Cosh(a), d) })
	case KindCosh:
		return chainRule(e.args[0], v, func(a, d Expr) Expr { return Mul(Sinh(a), d) })
	case KindTanh:
		return chainRule(e.args[0], v, func(a, d Expr) Expr {
			return Mul(d, Sub(Const(1), Pow(Tanh(a), Const(2))))
		})
	case KindMin, KindMax:
		return differentiateGuarded(e, []Expr{e.args[0], e.args[1]}, v)
	case KindIfThenElse:
		return differentiateGuarded(e, []Expr{e.cond.Lhs, e.cond.Rhs, e.args[0], e.args[1]}, v)
	case UninterpretedFunction:
		return differentiateGuarded(e, e.args, v)
	default:
		return nil, &NotDifferentiableError{Kind: e.kind}
	}
}

// differentiateGuarded returns 0 when v occurs free in none of deps, and a
// NotDifferentiableError for e's kind otherwise: a constant sub-expression
// has a well-defined (zero) derivative through any operator, differentiable
// or not.
func differentiateGuarded(e Expr, deps []Expr, v variable.Variable) (Expr, error) {
	for _, d := range deps {
		if Contains(d, v) {
			return nil, &NotDifferentiableError{Kind: e.kind}
		}
	}

	return Const(0), nil
}

func chainRule(inner Expr, v variable.Variable, combine func(a, d Expr) Expr) (Expr, error) {
	d, err := Differentiate(inner, v)
	if err != nil {
		return nil, err
	}

	return combine(inner, d), nil
}

// differentiateMul applies the product rule across a normalized Mul cell's
// factors, each of which is itself differentiated via the generalized power
// rule.
func differentiateMul(e Expr, v variable.Variable) (Expr, error) {
	n := len(e.mulTerms)
	summands := make([]Expr, 0, n)

	for i := 0; i < n; i++ {
		dFactor, err := differentiatePowFactor(e.mulTerms[i].Base, e.mulTerms[i].Exp, v)
		if err != nil {
			return nil, err
		}

		others := make([]Expr, 0, n)
		others = append(others, Const(e.mulConst))

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}

			others = append(others, Pow(e.mulTerms[j].Base, e.mulTerms[j].Exp))
		}

		summands = append(summands, Mul(append(others, dFactor)...))
	}

	return Add(summands...), nil
}

// differentiatePowFactor differentiates base^exp with respect to v.  When
// exp is a literal constant it uses the elementary power rule; otherwise it
// uses logarithmic differentiation, which is only valid where base > 0 —
// exactly the domain restriction the general real-exponent Pow kind itself
// carries.
func differentiatePowFactor(base, exp Expr, v variable.Variable) (Expr, error) {
	dBase, err := Differentiate(base, v)
	if err != nil {
		return nil, err
	}

	if exp.kind == Constant {
		if exp.c == 0 {
			return Const(0), nil
		}

		return Mul(Const(exp.c), Pow(base, Const(exp.c-1)), dBase), nil
	}

	dExp, err := Differentiate(exp, v)
	if err != nil {
		return nil, err
	}

	return Mul(Pow(base, exp), Add(Mul(dExp, Log(base)), Div(Mul(exp, dBase), base))), nil
}
