package icp

import (
	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/branch"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
)

// selectBranchIndex picks which candidate dimension to bisect next. For
// GradientDescent it needs a concrete residual expression to differentiate:
// it uses the first relational atom among constraints whose free variables
// overlap candidates. If differentiating that residual raises
// expr.NotDifferentiableError, or no such atom exists, it falls back to
// MaxDiam — the same local recovery spec.md's error-propagation policy
// describes for this heuristic; any other error is returned unchanged.
func selectBranchIndex(constraints []*formula.Formula, b box.Box, candidates *bitset.Set, strategy BranchingStrategy) (uint, bool, error) {
	if strategy != GradientDescent {
		idx, ok := branch.MaxDiam(b, candidates)
		return idx, ok, nil
	}

	residual := residualOver(constraints, b, candidates)
	if residual == nil {
		idx, ok := branch.MaxDiam(b, candidates)
		return idx, ok, nil
	}

	idx, ok, err := branch.GradientDescent(b, residual, candidates)
	if err == nil {
		return idx, ok, nil
	}

	if _, notDiff := err.(*expr.NotDifferentiableError); notDiff {
		idx, ok := branch.MaxDiam(b, candidates)
		return idx, ok, nil
	}

	return 0, false, err
}

// residualOver finds the first relational atom among constraints that
// touches a candidate dimension and returns lhs - rhs, the expression
// GradientDescent measures steepness of.
func residualOver(constraints []*formula.Formula, b box.Box, candidates *bitset.Set) expr.Expr {
	for _, f := range constraints {
		switch f.Kind() {
		case formula.Eq, formula.Neq, formula.Gt, formula.Geq, formula.Lt, formula.Leq:
			if !touchesCandidate(f, b, candidates) {
				continue
			}

			lhs, rhs := f.Relation()

			return expr.Sub(lhs, rhs)
		}
	}

	return nil
}

func touchesCandidate(atom *formula.Formula, b box.Box, candidates *bitset.Set) bool {
	for _, v := range formula.FreeVariables(atom) {
		idx, ok := b.IndexOf(v)
		if ok && candidates.Contains(idx) {
			return true
		}
	}

	return false
}
