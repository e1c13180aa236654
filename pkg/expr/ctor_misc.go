package expr

import "math"

// unary builds a one-child cell of the given kind, or folds it to a
// Constant when the child is itself a Constant, fold is non-nil and the
// folded value is finite.  A non-finite fold (log of zero, sqrt of a
// negative, exp overflow) keeps the cell unfolded so Evaluate reports it.
func unary(kind Kind, a Expr, fold func(float64) float64) Expr {
	if fold != nil && a.kind == Constant {
		if v := fold(a.c); !math.IsNaN(v) && !math.IsInf(v, 0) {
			return Const(v)
		}
	}

	args := []*Cell{a}

	return table.intern(&Cell{
		kind: kind,
		args: args,
		hash: hashArgs(kind, args...),
	})
}

// binary builds a two-child cell of the given kind, or folds it to a
// Constant when both children are Constants and fold is non-nil.
func binary(kind Kind, a, b Expr, fold func(float64, float64) float64) Expr {
	if fold != nil && a.kind == Constant && b.kind == Constant {
		return Const(fold(a.c, b.c))
	}

	args := []*Cell{a, b}

	return table.intern(&Cell{
		kind: kind,
		args: args,
		hash: hashArgs(kind, args...),
	})
}

// Div builds a / b.  Division by the exact constant 1 folds to a; a
// constant divided by a nonzero constant folds to their quotient, while a
// constant divided by zero stays a Div cell so Evaluate reports it.  The
// result is polynomial iff a is polynomial and b is a constant.
func Div(a, b Expr) Expr {
	if b.kind == Constant && b.c == 1 {
		return a
	}

	if a.kind == Constant && b.kind == Constant && b.c != 0 {
		return Const(a.c / b.c)
	}

	args := []*Cell{a, b}

	return table.intern(&Cell{
		kind:   KindDiv,
		args:   args,
		hash:   hashArgs(KindDiv, args...),
		isPoly: a.isPoly && b.kind == Constant,
	})
}

// Pow builds a raised to the power b.  Constant-exponent cases that the Mul
// normal form already understands (including a^1 == a and a^0 == 1) are
// routed through Mul so that e.g. Pow(x, 2) and Mul(x, x) intern to the
// same cell.
func Pow(a, b Expr) Expr {
	if b.kind == Constant {
		switch b.c {
		case 0:
			return Const(1)
		case 1:
			return a
		}

		if a.kind == Constant {
			return Const(powFold(a.c, b.c))
		}

		return Mul(powCell(a, b))
	}

	return binary(KindPow, a, b, func(x, y float64) float64 { return powFold(x, y) })
}

// powCell builds the raw Pow cell (bypassing Mul's own Pow-folding) used as
// a single factor inside Mul's accumulator.
func powCell(a, b Expr) Expr {
	args := []*Cell{a, b}
	return table.intern(&Cell{kind: KindPow, args: args, hash: hashArgs(KindPow, args...)})
}

func powFold(x, y float64) float64 {
	return pow(x, y)
}

// Log builds the natural logarithm of a.
func Log(a Expr) Expr { return unary(KindLog, a, logFold) }

// Abs builds the absolute value of a.
func Abs(a Expr) Expr { return unary(KindAbs, a, absFold) }

// Exp builds e raised to a.
func Exp(a Expr) Expr { return unary(KindExp, a, expFold) }

// Sqrt builds the square root of a.
func Sqrt(a Expr) Expr { return unary(KindSqrt, a, sqrtFold) }

// Sin, Cos, Tan, Asin, Acos, Atan build the usual unary trig functions.
func Sin(a Expr) Expr  { return unary(KindSin, a, sinFold) }
func Cos(a Expr) Expr  { return unary(KindCos, a, cosFold) }
func Tan(a Expr) Expr  { return unary(KindTan, a, tanFold) }
func Asin(a Expr) Expr { return unary(KindAsin, a, asinFold) }
func Acos(a Expr) Expr { return unary(KindAcos, a, acosFold) }
func Atan(a Expr) Expr { return unary(KindAtan, a, atanFold) }

// Atan2 builds the two-argument arctangent atan2(y, x).
func Atan2(y, x Expr) Expr { return binary(KindAtan2, y, x, atan2Fold) }

// Sinh, Cosh, Tanh build the hyperbolic functions.
func Sinh(a Expr) Expr { return unary(KindSinh, a, sinhFold) }
func Cosh(a Expr) Expr { return unary(KindCosh, a, coshFold) }
func Tanh(a Expr) Expr { return unary(KindTanh, a, tanhFold) }

// Min and Max build the binary minimum/maximum of their arguments.
func Min(a, b Expr) Expr { return binary(KindMin, a, b, minFold) }
func Max(a, b Expr) Expr { return binary(KindMax, a, b, maxFold) }

// IfThenElse builds ite(cond, trueBranch, falseBranch).
func IfThenElse(cond Relation, trueBranch, falseBranch Expr) Expr {
	args := []*Cell{trueBranch, falseBranch}

	return table.intern(&Cell{
		kind: KindIfThenElse,
		cond: cond,
		args: args,
		hash: hashIfThenElse(cond, trueBranch, falseBranch),
	})
}

// UninterpretedFunctionExpr builds an opaque named function application.
func UninterpretedFunctionExpr(name string, args ...Expr) Expr {
	cp := append([]*Cell(nil), args...)

	return table.intern(&Cell{
		kind:   UninterpretedFunction,
		ufName: name,
		args:   cp,
		hash:   hashUninterpretedFunction(name, cp),
	})
}
