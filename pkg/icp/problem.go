// Package icp implements the interval-constraint-propagation decision
// procedure: repeatedly contracting a box against a conjunction of real
// constraints and bisecting it until every constraint is delta-satisfied
// (SAT) or the search space is exhausted (UNSAT).
package icp

import (
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/variable"
)

// Problem is a conjunction of constraints to decide over a starting box.
type Problem struct {
	// Variables is the box's dimension ordering.
	Variables []variable.Variable
	// Domain is the initial box, Box0.
	Domain box.Box
	// Constraints is the formula to satisfy; an And formula is treated as
	// the list of its conjuncts for branching-candidate selection, any
	// other formula as a single conjunct.
	Constraints *formula.Formula
}

// conjuncts returns p's top-level constraints as an independently
// evaluable list, flattening a top-level conjunction but leaving any other
// formula shape (including a single atom, or a Forall) as one conjunct.
func conjuncts(f *formula.Formula) []*formula.Formula {
	if f.Kind() == formula.And {
		return f.Operands()
	}

	return []*formula.Formula{f}
}
