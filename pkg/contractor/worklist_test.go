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

func TestWorklistConvergesLikeFixpointSeq(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	vars := []variable.Variable{x, y}
	b := box.New(vars, []interval.Interval{interval.New(-10, 10), interval.New(-10, 10)})

	// x = 2, y = x + 1 => y = 3. Worklist must re-enqueue the second
	// constraint once the first one narrows x, since it reads x.
	c1, err := IbexFwdbwd(formula.EqFormula(xe, expr.Const(2)))
	assert.Equal(t, nil, err)

	c2, err := IbexFwdbwd(formula.EqFormula(ye, expr.Add(xe, expr.Const(1))))
	assert.Equal(t, nil, err)

	_, err = Worklist(b, c1, c2).Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.Point(2.0), b.Get(x))
	assert.Equal(t, interval.Point(3.0), b.Get(y))
}

func TestWorklistStopsPropagatingOnEmptyBox(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(5, 10)})

	c1, err := IbexFwdbwd(formula.EqFormula(xe, expr.Const(0)))
	assert.Equal(t, nil, err)

	_, err = Worklist(b, c1).Prune(&b)

	assert.Equal(t, nil, err)
	assert.True(t, b.IsEmpty())
}
