package ivaleval

import (
	"testing"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/util/assert"
	"github.com/dreal-go/dreal/pkg/variable"
)

func TestEvaluateLinearExpression(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(1, 2)})

	e := expr.Add(expr.Mul(expr.Const(2), expr.VarExpr(x)), expr.Const(1))

	got, err := Evaluate(e, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(3, 5), got)
}

func TestEvaluateSquareIsNonNegative(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-2, 3)})

	e := expr.Pow(expr.VarExpr(x), expr.Const(2))

	got, err := Evaluate(e, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(0, 9), got)
}

func TestEvaluateUnboundVariableErrors(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(0, 1)})

	_, err := Evaluate(expr.VarExpr(y), b)

	var unbound *UnboundVariableError
	if err == nil {
		t.Fatal("expected an error")
	}

	if _, ok := err.(*UnboundVariableError); !ok {
		t.Fatalf("expected *UnboundVariableError, got %T", err)
	}

	_ = unbound
}

func TestEvaluateIfThenElseDeterminateBranch(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(1, 2)})
	xe := expr.VarExpr(x)

	ite := expr.IfThenElse(expr.Relation{Kind: expr.RelGt, Lhs: xe, Rhs: expr.Const(0)}, expr.Const(10), expr.Const(-10))

	got, err := Evaluate(ite, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(10, 10), got)
}

func TestEvaluateIfThenElseUndeterminedHullsBothBranches(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-1, 1)})
	xe := expr.VarExpr(x)

	ite := expr.IfThenElse(expr.Relation{Kind: expr.RelGt, Lhs: xe, Rhs: expr.Const(0)}, expr.Const(10), expr.Const(-10))

	got, err := Evaluate(ite, b)
	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(-10, 10), got)
}
