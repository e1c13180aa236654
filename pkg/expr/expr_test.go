package expr

import (
	"errors"
	"testing"

	"github.com/dreal-go/dreal/pkg/util/assert"
	"github.com/dreal-go/dreal/pkg/variable"
)

func TestConstantInterning(t *testing.T) {
	assert.Equal(t, true, Equals(Const(3), Const(3)))
	assert.Equal(t, false, Equals(Const(3), Const(4)))
}

func TestAddCommutesToOneCell(t *testing.T) {
	x := VarExpr(variable.New("x", variable.Continuous))
	y := VarExpr(variable.New("y", variable.Continuous))

	a := Add(x, y)
	b := Add(y, x)

	assert.Equal(t, true, Equals(a, b))
}

func TestAddMergesLikeTerms(t *testing.T) {
	x := VarExpr(variable.New("x", variable.Continuous))

	sum := Add(x, x)

	assert.Equal(t, true, Equals(sum, Mul(Const(2), x)))
}

func TestMulMergesRepeatedBaseIntoPow(t *testing.T) {
	x := VarExpr(variable.New("x", variable.Continuous))

	assert.Equal(t, true, Equals(Mul(x, x), Pow(x, Const(2))))
}

func TestPowConstantFolds(t *testing.T) {
	assert.Equal(t, true, Equals(Pow(Const(2), Const(10)), Const(1024)))
}

func TestPowIdentities(t *testing.T) {
	x := VarExpr(variable.New("x", variable.Continuous))

	assert.Equal(t, true, Equals(Pow(x, Const(1)), x))
	assert.Equal(t, true, Equals(Pow(x, Const(0)), Const(1)))
}

func TestEvaluateSimpleExpression(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	e := Add(Mul(Const(2), VarExpr(x)), Const(1))

	v, err := Evaluate(e, NewEnvironment().Bind(x, 3))
	assert.Equal(t, nil, err)
	assert.Equal(t, 7.0, v)
}

func TestEvaluateUnboundVariable(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	e := VarExpr(x)

	_, err := Evaluate(e, NewEnvironment())

	var unbound *UnknownVariableError
	assert.Equal(t, true, errors.As(err, &unbound))
}

func TestDifferentiatePowerRule(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := VarExpr(x)
	e := Pow(xe, Const(3))

	d, err := Differentiate(e, x)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, Equals(d, Mul(Const(3), Pow(xe, Const(2)))))
}

func TestDifferentiateWithRespectToOtherVariableIsZero(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)

	d, err := Differentiate(VarExpr(y), x)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, Equals(d, Const(0)))
}

func TestDifferentiateAbsIsNotDifferentiableWhenVariableIsFree(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	e := Abs(VarExpr(x))

	_, err := Differentiate(e, x)

	var nd *NotDifferentiableError
	assert.Equal(t, true, errors.As(err, &nd))
}

func TestDifferentiateAbsOfConstantIsZero(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	e := Abs(Const(-5))

	d, err := Differentiate(e, x)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, Equals(d, Const(0)))
}

func TestSubstituteReplacesVariable(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	xe := VarExpr(x)

	e := Add(xe, Const(1))
	got := SubstituteVar(e, x, Const(4))

	assert.Equal(t, true, Equals(got, Const(5)))
}

func TestExpandDistributesSquareOfSum(t *testing.T) {
	x := VarExpr(variable.New("x", variable.Continuous))
	y := VarExpr(variable.New("y", variable.Continuous))

	expanded := Expand(Pow(Add(x, y), Const(2)))
	want := Add(Pow(x, Const(2)), Mul(Const(2), x, y), Pow(y, Const(2)))

	assert.Equal(t, true, Equals(expanded, want))
}

func TestFreeVariables(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	e := Add(VarExpr(x), Mul(Const(2), VarExpr(y)))

	free := FreeVariables(e)
	assert.Equal(t, 2, len(free))
}

func TestIsPolynomialFlagsDivAsNonPolynomial(t *testing.T) {
	x := VarExpr(variable.New("x", variable.Continuous))

	assert.Equal(t, true, x.IsPolynomial())
	assert.Equal(t, false, Div(Const(1), x).IsPolynomial())
}

func TestIsPolynomialAcceptsDivByConstant(t *testing.T) {
	x := VarExpr(variable.New("x", variable.Continuous))

	assert.Equal(t, true, Div(x, Const(2)).IsPolynomial())
}

func TestEvaluateDivisionByZeroIsDomainError(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	e := Div(Const(1), VarExpr(x))

	_, err := Evaluate(e, NewEnvironment().Bind(x, 0))

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestEvaluateLogOfNonPositiveIsDomainError(t *testing.T) {
	_, err := Evaluate(Log(Const(0)), NewEnvironment())

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestEvaluateSqrtOfNegativeIsDomainError(t *testing.T) {
	_, err := Evaluate(Sqrt(Const(-4)), NewEnvironment())

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func TestEvaluateExpOverflowIsError(t *testing.T) {
	_, err := Evaluate(Exp(Const(1000)), NewEnvironment())

	assert.True(t, err != nil)
}
