package expr

import (
	"math"

	"github.com/dreal-go/dreal/pkg/variable"
)

// Const builds (or reuses) the cell for an exact constant value.
func Const(v float64) Expr {
	if math.IsNaN(v) {
		return NaNExpr()
	}

	return table.intern(&Cell{
		kind:   Constant,
		c:      v,
		hash:   hashConstant(v),
		isPoly: true,
	})
}

// RealConst builds the cell for a real bracketed between two adjacent
// doubles lo <= hi, with the lower bound as its display representative.
// Use RealConstWithRepresentative to pick the upper bound instead.
func RealConst(lo, hi float64) Expr {
	return RealConstWithRepresentative(lo, hi, true)
}

// RealConstWithRepresentative builds the cell for a real bracketed between
// lo and hi, flagging which bound is used for display purposes.
func RealConstWithRepresentative(lo, hi float64, representativeIsLo bool) Expr {
	if lo > hi {
		panic("expr: RealConst requires lo <= hi")
	}

	if lo == hi {
		return Const(lo)
	}

	return table.intern(&Cell{
		kind:    RealConstant,
		rcLo:    lo,
		rcHi:    hi,
		rcRepLo: representativeIsLo,
		hash:    hashRealConstant(lo, hi, representativeIsLo),
		isPoly:  false,
	})
}

// VarExpr lifts a real-valued, non-dummy variable into an expression leaf.
// It panics for dummy or Boolean-kinded variables: those never appear
// inside an arithmetic expression.
func VarExpr(v variable.Variable) Expr {
	if v.IsDummy() {
		panic("expr: cannot lift the dummy variable into an expression")
	}

	if v.Kind() == variable.Boolean {
		panic("expr: cannot lift a Boolean variable into an arithmetic expression")
	}

	return table.intern(&Cell{
		kind:   Var,
		v:      v,
		hash:   hashVar(v.Id()),
		isPoly: true,
	})
}

// NaNExpr returns the canonical NaN sentinel cell.
func NaNExpr() Expr {
	return table.intern(&Cell{kind: NaN, hash: hashNaN()})
}

// IsNaN reports whether e is the NaN sentinel.
func IsNaN(e Expr) bool { return e.kind == NaN }
