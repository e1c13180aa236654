// Package ivaleval evaluates an expr.Expr over a box.Box, producing a
// conservative interval enclosure of every value the expression can take
// as its free variables range over their current dimensions.  This is the
// forward-evaluation half of the HC4 (Hull-Consistency) contractor: the
// backward pass narrows each leaf's interval from the root's target range.
package ivaleval

import (
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/interval"
)

// UnsupportedError reports that an expression contains an operator interval
// evaluation has no enclosure rule for (only UninterpretedFunction today).
type UnsupportedError struct {
	Kind expr.Kind
}

func (e *UnsupportedError) Error() string {
	return "ivaleval: unsupported operator " + e.Kind.String()
}

// UnboundVariableError reports that e contains a variable absent from the
// box being evaluated over.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "ivaleval: variable not bound in box: " + e.Name
}

// Evaluate computes a conservative interval enclosure of e over b.
func Evaluate(e expr.Expr, b box.Box) (interval.Interval, error) {
	switch e.Kind() {
	case expr.Constant:
		return interval.Point(e.ConstantValue()), nil
	case expr.RealConstant:
		lo, hi, _ := e.RealConstantBounds()
		return interval.New(lo, hi), nil
	case expr.Var:
		iv, ok := b.IndexOf(e.Variable())
		if !ok {
			return interval.Empty, &UnboundVariableError{Name: e.Variable().Name()}
		}

		return b.At(iv), nil
	case expr.NaN:
		return interval.Empty, nil
	case expr.KindAdd:
		return evalAdd(e, b)
	case expr.KindMul:
		return evalMul(e, b)
	case expr.KindDiv:
		lhs, rhs, err := evalBinaryArgs(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return lhs.Div(rhs), nil
	case expr.KindPow:
		return evalPow(e, b)
	case expr.KindLog:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Log(), nil
	case expr.KindAbs:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Abs(), nil
	case expr.KindExp:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Exp(), nil
	case expr.KindSqrt:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Sqrt(), nil
	case expr.KindSin:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Sin(), nil
	case expr.KindCos:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Cos(), nil
	case expr.KindTan:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Tan(), nil
	case expr.KindAsin:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Asin(), nil
	case expr.KindAcos:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Acos(), nil
	case expr.KindAtan:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Atan(), nil
	case expr.KindAtan2:
		y, x, err := evalBinaryArgs(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return y.Atan2(x), nil
	case expr.KindSinh:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Sinh(), nil
	case expr.KindCosh:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Cosh(), nil
	case expr.KindTanh:
		a, err := evalUnaryArg(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return a.Tanh(), nil
	case expr.KindMin:
		lhs, rhs, err := evalBinaryArgs(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return lhs.Min(rhs), nil
	case expr.KindMax:
		lhs, rhs, err := evalBinaryArgs(e, b)
		if err != nil {
			return interval.Empty, err
		}

		return lhs.Max(rhs), nil
	case expr.KindIfThenElse:
		return evalIfThenElse(e, b)
	default:
		return interval.Empty, &UnsupportedError{Kind: e.Kind()}
	}
}

func evalUnaryArg(e expr.Expr, b box.Box) (interval.Interval, error) {
	return Evaluate(e.Args()[0], b)
}

func evalBinaryArgs(e expr.Expr, b box.Box) (interval.Interval, interval.Interval, error) {
	lhs, err := Evaluate(e.Args()[0], b)
	if err != nil {
		return interval.Empty, interval.Empty, err
	}

	rhs, err := Evaluate(e.Args()[1], b)
	if err != nil {
		return interval.Empty, interval.Empty, err
	}

	return lhs, rhs, nil
}

func evalAdd(e expr.Expr, b box.Box) (interval.Interval, error) {
	acc := interval.Point(e.AddConstant())

	for _, t := range e.AddTerms() {
		iv, err := Evaluate(t.Term, b)
		if err != nil {
			return interval.Empty, err
		}

		scaled := iv.Mul(interval.Point(t.Coeff))
		acc = acc.Add(scaled)
	}

	return acc, nil
}

func evalMul(e expr.Expr, b box.Box) (interval.Interval, error) {
	acc := interval.Point(e.MulConstant())

	for _, t := range e.MulTerms() {
		base, err := Evaluate(t.Base, b)
		if err != nil {
			return interval.Empty, err
		}

		factor, err := PowFactor(base, t.Exp, b)
		if err != nil {
			return interval.Empty, err
		}

		acc = acc.Mul(factor)
	}

	return acc, nil
}

func evalPow(e expr.Expr, b box.Box) (interval.Interval, error) {
	base, err := Evaluate(e.Args()[0], b)
	if err != nil {
		return interval.Empty, err
	}

	return PowFactor(base, e.Args()[1], b)
}

// PowFactor special-cases a literal non-negative integer exponent to
// the tighter interval.Pow/Sqr repeated-squaring path; any other exponent
// (negative, fractional, or itself a sub-expression) goes through the
// general real-exponent extension.
func PowFactor(base interval.Interval, exp expr.Expr, b box.Box) (interval.Interval, error) {
	if exp.Kind() == expr.Constant {
		c := exp.ConstantValue()
		if c >= 0 && c == float64(int64(c)) {
			return base.Pow(uint64(c)), nil
		}
	}

	expIv, err := Evaluate(exp, b)
	if err != nil {
		return interval.Empty, err
	}

	return base.PowReal(expIv), nil
}

// evalIfThenElse decides the condition's truth across the whole box: if it
// is determinately true (or false) everywhere in b, only the matching
// branch is evaluated; otherwise the conservative enclosure is the hull of
// both branches, since either could be taken at different points of b.
func evalIfThenElse(e expr.Expr, b box.Box) (interval.Interval, error) {
	cond := e.Condition()

	lhs, err := Evaluate(cond.Lhs, b)
	if err != nil {
		return interval.Empty, err
	}

	rhs, err := Evaluate(cond.Rhs, b)
	if err != nil {
		return interval.Empty, err
	}

	switch certainty(cond.Kind, lhs, rhs) {
	case definitelyTrue:
		return Evaluate(e.Args()[0], b)
	case definitelyFalse:
		return Evaluate(e.Args()[1], b)
	default:
		t, err := Evaluate(e.Args()[0], b)
		if err != nil {
			return interval.Empty, err
		}

		f, err := Evaluate(e.Args()[1], b)
		if err != nil {
			return interval.Empty, err
		}

		return t.Hull(f), nil
	}
}

type verdict uint8

const (
	definitelyTrue verdict = iota
	definitelyFalse
	undetermined
)

func certainty(kind expr.RelKind, lhs, rhs interval.Interval) verdict {
	diff := lhs.Sub(rhs)

	switch kind {
	case expr.RelGt:
		if diff.Lo > 0 {
			return definitelyTrue
		}

		if diff.Hi <= 0 {
			return definitelyFalse
		}
	case expr.RelGeq:
		if diff.Lo >= 0 {
			return definitelyTrue
		}

		if diff.Hi < 0 {
			return definitelyFalse
		}
	case expr.RelLt:
		if diff.Hi < 0 {
			return definitelyTrue
		}

		if diff.Lo >= 0 {
			return definitelyFalse
		}
	case expr.RelLeq:
		if diff.Hi <= 0 {
			return definitelyTrue
		}

		if diff.Lo > 0 {
			return definitelyFalse
		}
	case expr.RelEq:
		if diff.Lo == 0 && diff.Hi == 0 {
			return definitelyTrue
		}

		if diff.Lo > 0 || diff.Hi < 0 {
			return definitelyFalse
		}
	case expr.RelNeq:
		if diff.Lo > 0 || diff.Hi < 0 {
			return definitelyTrue
		}

		if diff.Lo == 0 && diff.Hi == 0 {
			return definitelyFalse
		}
	}

	return undetermined
}
