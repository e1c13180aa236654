package expr

// Expand rewrites e into an expanded sum-of-products form: products are
// distributed over sums, integer powers of sums are multiplied out, and
// division by a nonzero constant is pushed down into each summand of its
// numerator.  Everything else (elementary functions, Div by a
// non-constant, IfThenElse, UninterpretedFunction) is left with its
// arguments expanded but its own shape unchanged.
func Expand(e Expr) Expr {
	switch e.kind {
	case Constant, RealConstant, Var, NaN:
		return e
	case KindAdd:
		terms := make([]Expr, 0, len(e.addTerms)+1)
		terms = append(terms, Const(e.addConst))

		for _, t := range e.addTerms {
			terms = append(terms, Mul(Const(t.Coeff), Expand(t.Term)))
		}

		return Add(terms...)
	case KindMul:
		acc := Const(e.mulConst)

		for _, t := range e.mulTerms {
			acc = distribute(acc, expandPowFactor(t.Base, t.Exp))
		}

		return acc
	case KindDiv:
		num, den := Expand(e.args[0]), Expand(e.args[1])

		if den.kind == Constant && den.c != 0 {
			return distribute(num, Const(1/den.c))
		}

		return Div(num, den)
	case KindPow:
		return expandPowFactor(e.args[0], e.args[1])
	default:
		args := make([]Expr, len(e.args))
		for i, a := range e.args {
			args[i] = Expand(a)
		}

		if e.kind == KindIfThenElse {
			cond := Relation{Kind: e.cond.Kind, Lhs: Expand(e.cond.Lhs), Rhs: Expand(e.cond.Rhs)}
			return IfThenElse(cond, args[0], args[1])
		}

		if e.kind == UninterpretedFunction {
			return UninterpretedFunctionExpr(e.ufName, args...)
		}

		return rebuild(e.kind, args)
	}
}

// expandPowFactor expands base^exp.  A non-negative integer constant
// exponent is multiplied out via repeated distribution so that sums under
// it get fully polynomial-expanded; anything else is left as Pow of the
// recursively expanded base and exponent.
func expandPowFactor(base, exp Expr) Expr {
	base = Expand(base)

	if exp.kind != Constant || exp.c < 0 || exp.c != float64(int64(exp.c)) {
		return Pow(base, Expand(exp))
	}

	n := int64(exp.c)
	if n == 0 {
		return Const(1)
	}

	acc := base

	for i := int64(1); i < n; i++ {
		acc = distribute(acc, base)
	}

	return acc
}

// distribute returns the expanded product a*b, distributing over whichever
// operand (or both) is a sum.
func distribute(a, b Expr) Expr {
	if a.kind == KindAdd {
		terms := make([]Expr, 0, len(a.addTerms)+1)
		terms = append(terms, Mul(Const(a.addConst), b))

		for _, t := range a.addTerms {
			terms = append(terms, Mul(Const(t.Coeff), distribute(t.Term, b)))
		}

		return Add(terms...)
	}

	if b.kind == KindAdd {
		return distribute(b, a)
	}

	return Mul(a, b)
}
