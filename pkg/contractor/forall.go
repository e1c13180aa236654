package contractor

import (
	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/formulaeval"
)

// forallContractor gives a bounded universal quantifier a coarse, sound
// approximation rather than real quantifier elimination: it evaluates the
// quantified body over the quantifier's own domain (not the outer box) and
// only acts when that evaluation is fully determinate. A Valid body leaves
// the outer box untouched (the constraint is satisfied everywhere it could
// be); an Unsat body empties it (no point of the outer box can satisfy a
// universally-quantified constraint whose body fails somewhere in its own
// domain, independent of the outer box's state). An Unknown verdict passes
// the box through unpruned — this under-approximates what a real solver
// would narrow, but it is sound: it never discards a true solution.
type forallContractor struct {
	atom *formula.Formula
}

// Forall builds the approximation contractor for a Forall formula.
func Forall(atom *formula.Formula) Contractor {
	return &forallContractor{atom: atom}
}

func (f *forallContractor) Prune(b *box.Box) (Status, error) {
	result, err := formulaeval.Evaluate(f.atom.Body(), f.atom.Domain())
	if err != nil {
		return EmptyStatus(), err
	}

	if result.Status == formulaeval.Unsat {
		b.SetEmpty()
	}

	return EmptyStatus(), nil
}

func (f *forallContractor) Input(b box.Box) *bitset.Set {
	set := bitset.New()

	for _, v := range formula.FreeVariables(f.atom) {
		if idx, ok := b.IndexOf(v); ok {
			set.Insert(idx)
		}
	}

	return set
}

func (f *forallContractor) String() string {
	return "Forall(" + f.atom.String() + ")"
}
