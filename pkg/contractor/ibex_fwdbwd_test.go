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

func TestIbexFwdbwdNarrowsLinearEquality(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-10, 10)})

	// x + 3 = 0  =>  x = -3
	atom := formula.EqFormula(expr.Add(xe, expr.Const(3)), expr.Const(0))

	c, err := IbexFwdbwd(atom)
	assert.Equal(t, nil, err)

	_, err = c.Prune(&b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.Point(-3), b.Get(x))
}

func TestIbexFwdbwdNarrowsSquare(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(0, 10)})

	// x^2 = 9 over x in [0,10]: the sign-symmetric square-root inverse
	// narrows x to [-3,3] then intersects with the box's own nonnegative
	// domain, landing on [0,3] -- sound (3 is still inside) but not tight
	// to the single root, since a one-pass HC4 revise doesn't exploit
	// x^2's monotonicity the way a real root solver would.
	atom := formula.EqFormula(expr.Pow(xe, expr.Const(2)), expr.Const(9))

	c, err := IbexFwdbwd(atom)
	assert.Equal(t, nil, err)

	_, err = c.Prune(&b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(0, 3), b.Get(x))
}

func TestIbexFwdbwdEmptiesInfeasibleBox(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(5, 10)})

	atom := formula.EqFormula(xe, expr.Const(0))

	c, err := IbexFwdbwd(atom)
	assert.Equal(t, nil, err)

	_, err = c.Prune(&b)
	assert.Equal(t, nil, err)
	assert.True(t, b.IsEmpty())
}

func TestIbexFwdbwdRejectsNeq(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	_, err := IbexFwdbwd(formula.NeqFormula(xe, expr.Const(0)))

	assert.True(t, err != nil)
}

func TestIbexFwdbwdNarrowsInequality(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-10, 10)})

	// x <= 2
	atom := formula.LeqFormula(xe, expr.Const(2))

	c, err := IbexFwdbwd(atom)
	assert.Equal(t, nil, err)

	_, err = c.Prune(&b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(-10, 2), b.Get(x))
}

func TestIbexFwdbwdDivNarrowsDenominator(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	vars := []variable.Variable{x, y}
	dims := []interval.Interval{interval.New(6, 6), interval.New(0.1, 10)}
	b := box.New(vars, dims)

	// x / y = 2, x fixed at 6 => y narrows to 3.
	atom := formula.EqFormula(expr.Div(xe, ye), expr.Const(2))

	c, err := IbexFwdbwd(atom)
	assert.Equal(t, nil, err)

	_, err = c.Prune(&b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.Point(3), b.Get(y))
}
