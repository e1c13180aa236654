package icp

import (
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/contractor"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/variable"
)

// buildContractor composes one narrowing pass over every constraint in
// constraints, plus rounding for Integer/Binary dimensions of domain. Atoms
// IbexFwdbwd rejects (Neq) contribute no per-atom narrowing contractor and
// are left entirely to EvaluateBox's UNSAT/bisect handling. When
// cfg.UsePolytope is set, every relational atom is also handed to
// IbexPolytope, which filters to the affine subset itself and runs a
// dedicated linear-system fixpoint over it — redundant narrowing work for
// atoms IbexFwdbwd already covers individually, but sound, since both are
// narrowing operators over the same constraint.
func buildContractor(constraints []*formula.Formula, domain box.Box, cfg Config) contractor.Contractor {
	children := make([]contractor.Contractor, 0, len(constraints)+2)
	atoms := make([]*formula.Formula, 0, len(constraints))

	for _, f := range constraints {
		switch f.Kind() {
		case formula.Eq, formula.Neq, formula.Gt, formula.Geq, formula.Lt, formula.Leq:
			atoms = append(atoms, f)

			c, err := contractor.IbexFwdbwd(f)
			if err == nil {
				children = append(children, c)
			}
		case formula.Forall:
			children = append(children, contractor.Forall(f))
		}
	}

	if cfg.UsePolytope && len(atoms) > 0 {
		children = append(children, contractor.IbexPolytope(atoms))
	}

	if dims := integerDims(domain); len(dims) > 0 {
		children = append(children, contractor.Integer(dims))
	}

	return contractor.Fixpoint(contractor.Worklist(domain, children...))
}

func integerDims(domain box.Box) []uint {
	dims := make([]uint, 0)

	for i := uint(0); i < domain.Size(); i++ {
		switch domain.Variable(i).Kind() {
		case variable.Integer, variable.Binary:
			dims = append(dims, i)
		}
	}

	return dims
}
