package contractor

import (
	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
)

// polytopeContractor narrows a box against the intersection of a set of
// purely linear relational atoms using the same per-constraint
// forward-backward revise IbexFwdbwd already performs on Add cells, run to
// a fixpoint. A constraint set containing zero linear atoms (every atom in
// the conjunction was nonlinear, or the conjunction was empty) is a
// well-formed no-op: there's nothing linear to intersect against, so Prune
// leaves the box untouched rather than erroring.
type polytopeContractor struct {
	inner Contractor
}

// IbexPolytope builds the linear-constraint narrowing contractor over the
// relational atoms of conjuncts, skipping any atom IbexFwdbwd rejects
// (Neq) or that isn't linear (Mul/Pow/trig present in the atom's
// expression) — those are left for other contractors to handle.
func IbexPolytope(atoms []*formula.Formula) Contractor {
	children := make([]Contractor, 0, len(atoms))

	for _, atom := range atoms {
		lhs, rhs := atom.Relation()
		if !isAffine(expr.Sub(lhs, rhs)) {
			continue
		}

		c, err := IbexFwdbwd(atom)
		if err != nil {
			continue
		}

		children = append(children, c)
	}

	if len(children) == 0 {
		return Id()
	}

	return &polytopeContractor{inner: Fixpoint(Seq(children...))}
}

func (p *polytopeContractor) Prune(b *box.Box) (Status, error) {
	return p.inner.Prune(b)
}

func (p *polytopeContractor) Input(b box.Box) *bitset.Set {
	return p.inner.Input(b)
}

func (p *polytopeContractor) String() string {
	return "IbexPolytope(" + p.inner.String() + ")"
}

// isAffine reports whether e is a constant, a bare variable, or a
// normalized sum whose every term is a bare variable — i.e. contains no
// product, power, or transcendental subexpression. This is a narrower test
// than expr.Expr.IsPolynomial, which also accepts higher-degree
// polynomials (x^2, x*y): atoms of that kind are left out of this
// contractor and are narrowed only by a separately built IbexFwdbwd.
func isAffine(e expr.Expr) bool {
	switch e.Kind() {
	case expr.Constant, expr.RealConstant, expr.Var:
		return true
	case expr.KindAdd:
		for _, t := range e.AddTerms() {
			if !isAffine(t.Term) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
