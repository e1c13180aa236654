package expr

import "math"

// Evaluate computes the point value of e under env.  It returns
// UnknownVariableError for a free variable absent from env, and NaNError if
// the arithmetic itself produces NaN from finite inputs (rather than
// silently propagating it), so callers can distinguish "formula is
// ill-defined here" from "I forgot to bind a variable."
func Evaluate(e Expr, env Environment) (float64, error) {
	switch e.kind {
	case Constant:
		return e.c, nil
	case RealConstant:
		if e.rcRepLo {
			return e.rcLo, nil
		}

		return e.rcHi, nil
	case Var:
		v, ok := env.Lookup(e.v)
		if !ok {
			return 0, &UnknownVariableError{Name: e.v.Name()}
		}

		return v, nil
	case KindAdd:
		sum := e.addConst

		for _, t := range e.addTerms {
			v, err := Evaluate(t.Term, env)
			if err != nil {
				return 0, err
			}

			sum += t.Coeff * v
		}

		return checkFinite("Add", sum)
	case KindMul:
		prod := e.mulConst

		for _, t := range e.mulTerms {
			base, err := Evaluate(t.Base, env)
			if err != nil {
				return 0, err
			}

			exp, err := Evaluate(t.Exp, env)
			if err != nil {
				return 0, err
			}

			prod *= math.Pow(base, exp)
		}

		return checkFinite("Mul", prod)
	case KindDiv:
		return evalDiv(e, env)
	case KindPow:
		return evalBinary(e, env, math.Pow)
	case KindAtan2:
		return evalBinary(e, env, math.Atan2)
	case KindMin:
		return evalBinary(e, env, math.Min)
	case KindMax:
		return evalBinary(e, env, math.Max)
	case KindLog:
		return evalLog(e, env)
	case KindAbs:
		return evalUnary(e, env, math.Abs)
	case KindExp:
		return evalUnary(e, env, math.Exp)
	case KindSqrt:
		return evalSqrt(e, env)
	case KindSin:
		return evalUnary(e, env, math.Sin)
	case KindCos:
		return evalUnary(e, env, math.Cos)
	case KindTan:
		return evalUnary(e, env, math.Tan)
	case KindAsin:
		return evalUnary(e, env, math.Asin)
	case KindAcos:
		return evalUnary(e, env, math.Acos)
	case KindAtan:
		return evalUnary(e, env, math.Atan)
	case KindSinh:
		return evalUnary(e, env, math.Sinh)
	case KindCosh:
		return evalUnary(e, env, math.Cosh)
	case KindTanh:
		return evalUnary(e, env, math.Tanh)
	case KindIfThenElse:
		taken, err := evaluateRelation(e.cond, env)
		if err != nil {
			return 0, err
		}

		if taken {
			return Evaluate(e.args[0], env)
		}

		return Evaluate(e.args[1], env)
	case UninterpretedFunction:
		return 0, &NaNError{Op: "uninterpreted function " + e.ufName}
	case NaN:
		return 0, &NaNError{Op: "NaN sentinel"}
	default:
		return 0, &NaNError{Op: e.kind.String()}
	}
}

func evalUnary(e Expr, env Environment, f func(float64) float64) (float64, error) {
	a, err := Evaluate(e.args[0], env)
	if err != nil {
		return 0, err
	}

	return checkFinite(e.kind.String(), f(a))
}

func evalBinary(e Expr, env Environment, f func(float64, float64) float64) (float64, error) {
	a, err := Evaluate(e.args[0], env)
	if err != nil {
		return 0, err
	}

	b, err := Evaluate(e.args[1], env)
	if err != nil {
		return 0, err
	}

	return checkFinite(e.kind.String(), f(a, b))
}

// evalDiv evaluates a/b, raising DomainError rather than letting a zero
// divisor silently propagate +Inf, -Inf or NaN out of the arithmetic.
func evalDiv(e Expr, env Environment) (float64, error) {
	a, err := Evaluate(e.args[0], env)
	if err != nil {
		return 0, err
	}

	b, err := Evaluate(e.args[1], env)
	if err != nil {
		return 0, err
	}

	if b == 0 {
		return 0, &DomainError{Func: "/", Arg: b}
	}

	return checkFinite("Div", a/b)
}

// evalLog evaluates log(a), raising DomainError for a<=0 rather than
// letting math.Log's NaN (a<0) or -Inf (a==0) propagate.
func evalLog(e Expr, env Environment) (float64, error) {
	a, err := Evaluate(e.args[0], env)
	if err != nil {
		return 0, err
	}

	if a <= 0 {
		return 0, &DomainError{Func: "log", Arg: a}
	}

	return checkFinite("Log", math.Log(a))
}

// evalSqrt evaluates sqrt(a), raising DomainError for a<0 rather than
// letting math.Sqrt's NaN propagate.
func evalSqrt(e Expr, env Environment) (float64, error) {
	a, err := Evaluate(e.args[0], env)
	if err != nil {
		return 0, err
	}

	if a < 0 {
		return 0, &DomainError{Func: "sqrt", Arg: a}
	}

	return checkFinite("Sqrt", math.Sqrt(a))
}

// checkFinite rejects both NaN and infinite results: NaN indicates the
// arithmetic itself broke down on finite inputs, and an infinity indicates a
// result too large to represent (e.g. Exp of a large argument), neither of
// which is a value a caller can use as a residual.
func checkFinite(op string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &NaNError{Op: op}
	}

	return v, nil
}

func evaluateRelation(r Relation, env Environment) (bool, error) {
	lhs, err := Evaluate(r.Lhs, env)
	if err != nil {
		return false, err
	}

	rhs, err := Evaluate(r.Rhs, env)
	if err != nil {
		return false, err
	}

	switch r.Kind {
	case RelEq:
		return lhs == rhs, nil
	case RelNeq:
		return lhs != rhs, nil
	case RelGt:
		return lhs > rhs, nil
	case RelGeq:
		return lhs >= rhs, nil
	case RelLt:
		return lhs < rhs, nil
	case RelLeq:
		return lhs <= rhs, nil
	default:
		return false, &NaNError{Op: "relation " + r.Kind.String()}
	}
}
