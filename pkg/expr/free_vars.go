package expr

import "github.com/dreal-go/dreal/pkg/variable"

// FreeVariables returns the set of variables appearing anywhere in e, in no
// particular order.
func FreeVariables(e Expr) []variable.Variable {
	seen := make(map[uint64]variable.Variable)
	collectFreeVariables(e, seen)

	out := make([]variable.Variable, 0, len(seen))
	for _, v := range seen {
		out = append(out, v)
	}

	return out
}

func collectFreeVariables(e Expr, seen map[uint64]variable.Variable) {
	switch e.kind {
	case Var:
		seen[e.v.Id()] = e.v
	case KindAdd:
		for _, t := range e.addTerms {
			collectFreeVariables(t.Term, seen)
		}
	case KindMul:
		for _, t := range e.mulTerms {
			collectFreeVariables(t.Base, seen)
			collectFreeVariables(t.Exp, seen)
		}
	case KindIfThenElse:
		collectFreeVariables(e.cond.Lhs, seen)
		collectFreeVariables(e.cond.Rhs, seen)

		for _, a := range e.args {
			collectFreeVariables(a, seen)
		}
	default:
		for _, a := range e.args {
			collectFreeVariables(a, seen)
		}
	}
}

// Contains reports whether v occurs free anywhere in e.
func Contains(e Expr, v variable.Variable) bool {
	switch e.kind {
	case Var:
		return e.v.Equals(v)
	case KindAdd:
		for _, t := range e.addTerms {
			if Contains(t.Term, v) {
				return true
			}
		}

		return false
	case KindMul:
		for _, t := range e.mulTerms {
			if Contains(t.Base, v) || Contains(t.Exp, v) {
				return true
			}
		}

		return false
	case KindIfThenElse:
		if Contains(e.cond.Lhs, v) || Contains(e.cond.Rhs, v) {
			return true
		}

		for _, a := range e.args {
			if Contains(a, v) {
				return true
			}
		}

		return false
	default:
		for _, a := range e.args {
			if Contains(a, v) {
				return true
			}
		}

		return false
	}
}
