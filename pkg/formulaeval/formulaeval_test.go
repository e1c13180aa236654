package formulaeval

import (
	"testing"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/util/assert"
	"github.com/dreal-go/dreal/pkg/variable"
)

func TestValidWhenEntireBoxSatisfies(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(1, 2)})

	f := formula.GtFormula(expr.VarExpr(x), expr.Const(0))

	r, err := Evaluate(f, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, Valid, r.Status)
}

func TestUnsatWhenEntireBoxViolates(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-2, -1)})

	f := formula.GtFormula(expr.VarExpr(x), expr.Const(0))

	r, err := Evaluate(f, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, Unsat, r.Status)
}

func TestUnknownWhenBoxStraddles(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-1, 1)})

	f := formula.GtFormula(expr.VarExpr(x), expr.Const(0))

	r, err := Evaluate(f, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, Unknown, r.Status)
	assert.Equal(t, 1, len(r.AmbiguousAtoms))
}

func TestAndUnsatIfAnyConjunctUnsat(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(1, 2)})

	f := formula.AndFormula(
		formula.GtFormula(expr.VarExpr(x), expr.Const(0)),
		formula.LtFormula(expr.VarExpr(x), expr.Const(0)),
	)

	r, err := Evaluate(f, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, Unsat, r.Status)
}
