package contractor

import (
	"testing"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/util/assert"
	"github.com/dreal-go/dreal/pkg/variable"
)

func TestIbexPolytopeNarrowsLinearSystem(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	b := box.New([]variable.Variable{x, y}, []interval.Interval{
		interval.New(-10, 10), interval.New(-10, 10),
	})

	atoms := []*formula.Formula{
		formula.EqFormula(xe, expr.Const(4)),
		formula.EqFormula(ye, expr.Add(xe, expr.Const(1))),
	}

	_, err := IbexPolytope(atoms).Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.Point(4.0), b.Get(x))
	assert.Equal(t, interval.Point(5.0), b.Get(y))
}

func TestIbexPolytopeSkipsNonlinearAtomsAndNeq(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-10, 10)})

	atoms := []*formula.Formula{
		formula.EqFormula(expr.Pow(xe, expr.Const(3)), expr.Const(8)),
		formula.NeqFormula(xe, expr.Const(0)),
	}

	_, err := IbexPolytope(atoms).Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(-10, 10), b.Get(x))
}

func TestIbexPolytopeEmptyConstraintSetIsNoOp(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-10, 10)})

	_, err := IbexPolytope(nil).Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(-10, 10), b.Get(x))
}
