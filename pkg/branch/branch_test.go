package branch

import (
	"testing"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/util/assert"
	"github.com/dreal-go/dreal/pkg/variable"
)

func bitsetOf(indices ...uint) *bitset.Set {
	return bitset.Of(indices...)
}

func TestEvaluateBoxMarksUnsatBoxEmptyAndReturnsNone(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(5, 10)})

	constraints := []*formula.Formula{formula.EqFormula(xe, expr.Const(0))}

	candidates, err := EvaluateBox(constraints, &b, 0.01)

	assert.Equal(t, nil, err)
	assert.True(t, candidates == nil)
	assert.True(t, b.IsEmpty())
}

func TestEvaluateBoxSkipsValidConstraints(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	// x in [0,1] => x <= 2 is Valid everywhere: no candidate, box untouched.
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(0, 1)})

	constraints := []*formula.Formula{formula.LeqFormula(xe, expr.Const(2))}

	candidates, err := EvaluateBox(constraints, &b, 0.01)

	assert.Equal(t, nil, err)
	assert.False(t, candidates == nil)
	assert.True(t, candidates.IsEmpty())
	assert.False(t, b.IsEmpty())
}

func TestEvaluateBoxSkipsUnknownWithinPrecision(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	// x in [2.999, 3.001], x = 3: diff interval is [-0.001,0.001], diam
	// 0.002 <= precision 0.01, so this constraint is already delta-sat
	// here and contributes no candidate even though its verdict is
	// Unknown (the interval straddles zero).
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(2.999, 3.001)})

	constraints := []*formula.Formula{formula.EqFormula(xe, expr.Const(3))}

	candidates, err := EvaluateBox(constraints, &b, 0.01)

	assert.Equal(t, nil, err)
	assert.False(t, candidates == nil)
	assert.True(t, candidates.IsEmpty())
}

func TestEvaluateBoxCollectsCandidatesBeyondPrecision(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	b := box.New([]variable.Variable{x, y}, []interval.Interval{
		interval.New(-10, 10), interval.New(0, 0),
	})

	// x = y: diff interval over this box is [-10,10], diam 20 > precision.
	// x is bisectable (wide); y is a point, not bisectable, so only x's
	// dimension index should show up as a candidate.
	constraints := []*formula.Formula{formula.EqFormula(xe, ye)}

	candidates, err := EvaluateBox(constraints, &b, 0.01)

	assert.Equal(t, nil, err)
	assert.False(t, candidates == nil)

	xi, _ := b.IndexOf(x)
	yi, _ := b.IndexOf(y)
	assert.True(t, candidates.Contains(xi))
	assert.False(t, candidates.Contains(yi))
}

func TestMaxDiamPicksWidestCandidateBreakingTiesBySmallestIndex(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	z := variable.New("z", variable.Continuous)

	b := box.New([]variable.Variable{x, y, z}, []interval.Interval{
		interval.New(0, 1), interval.New(0, 5), interval.New(0, 5),
	})

	xi, _ := b.IndexOf(x)
	yi, _ := b.IndexOf(y)
	zi, _ := b.IndexOf(z)

	idx, ok := MaxDiam(b, bitsetOf(xi, yi, zi))

	assert.True(t, ok)
	assert.Equal(t, yi, idx)
}

func TestGradientDescentPicksSteepestCandidate(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	b := box.New([]variable.Variable{x, y}, []interval.Interval{
		interval.New(0, 1), interval.New(0, 1),
	})

	// residual = 3*x + y: d/dx = 3 everywhere, d/dy = 1 everywhere, so x's
	// gradient magnitude (3) dominates y's (1) regardless of either
	// dimension's width.
	residual := expr.Add(expr.Mul(expr.Const(3), xe), ye)

	xi, _ := b.IndexOf(x)
	yi, _ := b.IndexOf(y)

	idx, ok, err := GradientDescent(b, residual, bitsetOf(xi, yi))

	assert.Equal(t, nil, err)
	assert.True(t, ok)
	assert.Equal(t, xi, idx)
}

func TestGradientDescentPropagatesNotDifferentiableError(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-1, 1)})

	residual := expr.Abs(xe)

	xi, _ := b.IndexOf(x)

	_, _, err := GradientDescent(b, residual, bitsetOf(xi))

	assert.True(t, err != nil)

	_, ok := err.(*expr.NotDifferentiableError)
	assert.True(t, ok)
}
