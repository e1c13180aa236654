// Package branch selects where an ICP search bisects next: which box
// dimensions are even live candidates (EvaluateBox, driven by the
// three-valued formula evaluator) and, among those candidates, which one
// dimension to split (MaxDiam, GradientDescent).
package branch

import (
	"math"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/formulaeval"
	"github.com/dreal-go/dreal/pkg/ivaleval"
)

// EvaluateBox classifies b against every constraint and collects the
// branching candidates: dimensions that participate in some constraint
// whose verdict is still Unknown with a width exceeding precision.
//
// A nil *bitset.Set return (with a nil error) means "None": some
// constraint is definitely Unsat on b, b has been marked empty, and the
// search should abandon this box without bisecting it. A non-nil, empty
// set means every constraint is already delta-satisfied on b: report SAT.
func EvaluateBox(constraints []*formula.Formula, b *box.Box, precision float64) (*bitset.Set, error) {
	candidates := bitset.New()

	for _, f := range constraints {
		result, err := formulaeval.Evaluate(f, *b)
		if err != nil {
			return nil, err
		}

		if result.Status == formulaeval.Unsat {
			b.SetEmpty()
			return nil, nil
		}

		if result.Status == formulaeval.Valid {
			continue
		}

		for _, atom := range result.AmbiguousAtoms {
			if err := addCandidates(atom, *b, precision, candidates); err != nil {
				return nil, err
			}
		}
	}

	return candidates, nil
}

func addCandidates(atom *formula.Formula, b box.Box, precision float64, candidates *bitset.Set) error {
	lhs, rhs := atom.Relation()

	lhsIv, err := ivaleval.Evaluate(lhs, b)
	if err != nil {
		return err
	}

	rhsIv, err := ivaleval.Evaluate(rhs, b)
	if err != nil {
		return err
	}

	if lhsIv.Sub(rhsIv).Diam() <= precision {
		return nil
	}

	for _, v := range formula.FreeVariables(atom) {
		idx, ok := b.IndexOf(v)
		if !ok {
			continue
		}

		if b.At(idx).IsBisectable() {
			candidates.Insert(idx)
		}
	}

	return nil
}

// MaxDiam picks the candidate dimension with the largest diameter,
// breaking ties by the smallest index.
func MaxDiam(b box.Box, candidates *bitset.Set) (uint, bool) {
	return b.MaxDiamIndex(candidates.Elements())
}

// GradientDescent picks the candidate dimension whose partial derivative of
// residual has the largest magnitude over b: the dimension a descent step
// on residual would move the most. It returns *expr.NotDifferentiableError
// unchanged when residual isn't differentiable with respect to some
// candidate variable — callers are expected to catch that and fall back to
// MaxDiam, as pkg/icp's branch selection does for Abs/Min/Max/IfThenElse
// residuals.
func GradientDescent(b box.Box, residual expr.Expr, candidates *bitset.Set) (uint, bool, error) {
	var (
		best    uint
		bestMag = -1.0
		found   bool
	)

	for _, idx := range candidates.Elements() {
		v := b.Variable(idx)

		deriv, err := expr.Differentiate(residual, v)
		if err != nil {
			return 0, false, err
		}

		derivIv, err := ivaleval.Evaluate(deriv, b)
		if err != nil {
			return 0, false, err
		}

		mag := math.Max(math.Abs(derivIv.Lo), math.Abs(derivIv.Hi))
		if mag > bestMag {
			bestMag, best, found = mag, idx, true
		}
	}

	if !found {
		return 0, false, nil
	}

	return best, true, nil
}
