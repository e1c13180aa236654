// Package demo is a small fixed catalogue of problems for exercising
// pkg/icp from the command line, without needing an input-file parser.
package demo

import (
	"fmt"
	"sort"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/icp"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/variable"
)

// Problem names one entry of the catalogue plus a short description for
// --list output.
type Problem struct {
	Name        string
	Description string
	Build       func() icp.Problem
}

var catalogue = map[string]Problem{
	"circle": {
		Name:        "circle",
		Description: "x^2 + y^2 = 1 on a tight box around (1,0): delta-sat without search",
		Build:       buildCircle,
	},
	"infeasible": {
		Name:        "infeasible",
		Description: "x = 0 and x = 1 simultaneously: unsat by direct contradiction",
		Build:       buildInfeasible,
	},
	"ite-branch": {
		Name:        "ite-branch",
		Description: "y = if x >= 0 then x else -x, constrained to y = 3: delta-sat, needs branching on x's sign",
		Build:       buildIteBranch,
	},
	"abs-nondiff": {
		Name:        "abs-nondiff",
		Description: "|x - 3| <= 0.01 over a wide box: exercises the non-differentiable Abs residual",
		Build:       buildAbsNondiff,
	},
}

// Names returns every catalogue entry's name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the named catalogue entry, or false if it doesn't exist.
func Lookup(name string) (Problem, bool) {
	p, ok := catalogue[name]
	return p, ok
}

func buildCircle() icp.Problem {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	domain := box.New([]variable.Variable{x, y}, []interval.Interval{
		interval.New(0.99, 1.01), interval.New(-0.01, 0.01),
	})

	constraints := formula.EqFormula(
		expr.Add(expr.Pow(xe, expr.Const(2)), expr.Pow(ye, expr.Const(2))),
		expr.Const(1),
	)

	return icp.Problem{Variables: []variable.Variable{x, y}, Domain: domain, Constraints: constraints}
}

func buildInfeasible() icp.Problem {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	domain := box.New([]variable.Variable{x}, []interval.Interval{interval.New(-10, 10)})

	constraints := formula.AndFormula(
		formula.EqFormula(xe, expr.Const(0)),
		formula.EqFormula(xe, expr.Const(1)),
	)

	return icp.Problem{Variables: []variable.Variable{x}, Domain: domain, Constraints: constraints}
}

func buildIteBranch() icp.Problem {
	x := variable.New("x", variable.Continuous)
	y := variable.New("y", variable.Continuous)
	xe, ye := expr.VarExpr(x), expr.VarExpr(y)

	domain := box.New([]variable.Variable{x, y}, []interval.Interval{
		interval.New(-10, 10), interval.New(-10, 10),
	})

	cond := formula.GeqFormula(xe, expr.Const(0)).AsCondition()
	ite := expr.IfThenElse(cond, xe, expr.Sub(expr.Const(0), xe))

	constraints := formula.EqFormula(ye, ite)
	constraints = formula.AndFormula(constraints, formula.EqFormula(ye, expr.Const(3)))

	return icp.Problem{Variables: []variable.Variable{x, y}, Domain: domain, Constraints: constraints}
}

func buildAbsNondiff() icp.Problem {
	x := variable.New("x", variable.Continuous)
	xe := expr.VarExpr(x)

	domain := box.New([]variable.Variable{x}, []interval.Interval{interval.New(0, 10)})
	constraints := formula.LeqFormula(expr.Abs(expr.Sub(xe, expr.Const(3))), expr.Const(0.01))

	return icp.Problem{Variables: []variable.Variable{x}, Domain: domain, Constraints: constraints}
}

// Describe formats every catalogue entry's name and description for
// --list output.
func Describe() string {
	var out string

	for _, name := range Names() {
		out += fmt.Sprintf("%-12s %s\n", name, catalogue[name].Description)
	}

	return out
}
