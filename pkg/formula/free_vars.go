package formula

import (
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/variable"
)

// FreeVariables returns every variable — arithmetic or Boolean — that
// occurs free in f, in no particular order.  A Forall formula's
// BoundVariables are excluded from its body's contribution.
func FreeVariables(f *Formula) []variable.Variable {
	seen := make(map[uint64]variable.Variable)
	collect(f, seen)

	out := make([]variable.Variable, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}

	return out
}

func collect(f *Formula, seen map[uint64]variable.Variable) {
	switch f.kind {
	case True, False:
		return
	case BoolVar:
		seen[f.v.Id()] = f.v
	case Eq, Neq, Gt, Geq, Lt, Leq:
		for _, v := range expr.FreeVariables(f.lhs) {
			seen[v.Id()] = v
		}

		for _, v := range expr.FreeVariables(f.rhs) {
			seen[v.Id()] = v
		}
	case And, Or, Not:
		for _, o := range f.operands {
			collect(o, seen)
		}
	case Forall:
		bound := make(map[uint64]bool, len(f.boundVars))
		for _, v := range f.boundVars {
			bound[v.Id()] = true
		}

		inner := make(map[uint64]variable.Variable)
		collect(f.body, inner)

		for id, v := range inner {
			if !bound[id] {
				seen[id] = v
			}
		}
	}
}
