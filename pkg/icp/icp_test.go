package icp

import (
	"context"
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

func TestConfigValidateRejectsNonPositivePrecision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Precision = 0

	assert.True(t, cfg.Validate() != nil)
}

func TestConfigValidateRejectsZeroJobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumberOfJobs = 0

	assert.True(t, cfg.Validate() != nil)
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	assert.Equal(t, nil, DefaultConfig().Validate())
}

func TestCheckSatSequentialFindsContradictionUnsat(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	domain := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-10, 10)})

	constraints := formula.AndFormula(
		formula.EqFormula(xe, expr.Const(0)),
		formula.EqFormula(xe, expr.Const(1)),
	)

	p := Problem{Variables: []variable.Variable{x}, Domain: domain, Constraints: constraints}
	cfg := DefaultConfig()
	cfg.NumberOfJobs = 1

	result, stats, err := CheckSat(context.Background(), p, cfg)

	assert.Equal(t, nil, err)
	assert.Equal(t, Unsat, result.Verdict)
	assert.True(t, stats.NumPrune > 0)
}

func TestCheckSatSequentialFindsExactPointSat(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	domain := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-100, 100)})
	constraints := formula.EqFormula(xe, expr.Const(5))

	p := Problem{Variables: []variable.Variable{x}, Domain: domain, Constraints: constraints}
	cfg := DefaultConfig()
	cfg.NumberOfJobs = 1

	result, _, err := CheckSat(context.Background(), p, cfg)

	assert.Equal(t, nil, err)
	assert.Equal(t, Sat, result.Verdict)
	assert.Equal(t, interval.Point(5.0), result.Witness.Unwrap().Get(x))
}

func TestCheckSatSequentialIntegerDimensionWithNoIntegerInRangeIsUnsat(t *testing.T) {
	x := variable.New("x", variable.Integer)

	domain := box.New([]variable.Variable{x}, []interval.Interval{interval.New(0.1, 0.9)})
	constraints := formula.TrueFormula()

	p := Problem{Variables: []variable.Variable{x}, Domain: domain, Constraints: constraints}
	cfg := DefaultConfig()
	cfg.NumberOfJobs = 1

	result, _, err := CheckSat(context.Background(), p, cfg)

	assert.Equal(t, nil, err)
	assert.Equal(t, Unsat, result.Verdict)
}

func TestCheckSatParallelAgreesWithSequentialOnExactPoint(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	constraints := formula.EqFormula(xe, expr.Const(5))

	for _, jobs := range []int{1, 2, 4, 8} {
		domain := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-10, 10)})
		p := Problem{Variables: []variable.Variable{x}, Domain: domain, Constraints: constraints}

		cfg := DefaultConfig()
		cfg.NumberOfJobs = jobs

		result, _, err := CheckSat(context.Background(), p, cfg)

		assert.Equal(t, nil, err)
		assert.Equal(t, Sat, result.Verdict)
		assert.Equal(t, interval.Point(5.0), result.Witness.Unwrap().Get(x))
	}
}

func TestCheckSatSequentialCircleIsDeltaSat(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	domain := box.New([]variable.Variable{x, y}, []interval.Interval{
		interval.New(0.99, 1.01), interval.New(-0.01, 0.01),
	})

	// x^2 + y^2 = 1, with (x,y)=(1,0) at the box's center: the residual's
	// interval width here (diam of x^2+y^2-1 over the box, at most
	// 0.02*2 + 0.01*0.02 =~ 0.0402 before any contraction, only smaller
	// after) is already under precision 0.1, so this is delta-sat on the
	// very first EvaluateBox call with no bisection needed.
	constraints := formula.EqFormula(expr.Add(expr.Pow(xe, expr.Const(2)), expr.Pow(ye, expr.Const(2))), expr.Const(1))

	p := Problem{Variables: []variable.Variable{x, y}, Domain: domain, Constraints: constraints}
	cfg := DefaultConfig()
	cfg.NumberOfJobs = 1
	cfg.Precision = 0.1

	result, _, err := CheckSat(context.Background(), p, cfg)

	assert.Equal(t, nil, err)
	assert.Equal(t, Sat, result.Verdict)
}

func TestCheckSatSequentialNonDifferentiableConstraintResolvesByContractionAlone(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	domain := box.New([]variable.Variable{x}, []interval.Interval{interval.New(0, 10)})

	// |x - 3| <= 0.01: the narrowing rule for Abs's backward inverse
	// intersects x down to [2.99,3.01] in a single contraction pass, at
	// which point the atom's own forward evaluation (diff.Hi == 0) is
	// already Valid, so this resolves without ever calling a branching
	// heuristic at all, let alone differentiating the non-differentiable
	// Abs residual.
	constraints := formula.LeqFormula(expr.Abs(expr.Sub(xe, expr.Const(3))), expr.Const(0.01))

	p := Problem{Variables: []variable.Variable{x}, Domain: domain, Constraints: constraints}
	cfg := DefaultConfig()
	cfg.NumberOfJobs = 1
	cfg.BranchingStrategy = GradientDescent
	cfg.Precision = 0.01

	result, stats, err := CheckSat(context.Background(), p, cfg)

	assert.Equal(t, nil, err)
	assert.Equal(t, Sat, result.Verdict)
	assert.Equal(t, 0, stats.NumBisect)
	assert.Equal(t, interval.New(2.99, 3.01), result.Witness.Unwrap().Get(x))
}

func TestSelectBranchIndexFallsBackToMaxDiamOnNotDifferentiableResidual(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe := expr.VarExpr(x)

	b := box.New([]variable.Variable{x, y}, []interval.Interval{
		interval.New(-1, 1), interval.New(-5, 5),
	})

	xi, _ := b.IndexOf(x)
	yi, _ := b.IndexOf(y)
	candidates := bitsetOf(xi, yi)

	// |x| <= 0 is non-differentiable at the residual the candidate atom
	// contributes; GradientDescent must propagate that, and
	// selectBranchIndex must recover by picking MaxDiam's answer (y, the
	// wider candidate) instead of erroring.
	constraints := []*formula.Formula{formula.LeqFormula(expr.Abs(xe), expr.Const(0))}

	idx, ok, err := selectBranchIndex(constraints, b, candidates, GradientDescent)

	assert.Equal(t, nil, err)
	assert.True(t, ok)
	assert.Equal(t, yi, idx)
}
