package formula

import "github.com/dreal-go/dreal/pkg/expr"

// BoolEnvironment extends expr.Environment with bindings for Boolean
// variables, letting Evaluate resolve BoolVar leaves.
type BoolEnvironment struct {
	expr.Environment
	bools map[uint64]bool
}

// NewBoolEnvironment builds an empty BoolEnvironment over env's arithmetic
// bindings.
func NewBoolEnvironment(env expr.Environment) BoolEnvironment {
	return BoolEnvironment{Environment: env, bools: make(map[uint64]bool)}
}

// BindBool records a Boolean variable's truth value, returning the
// receiver for chaining.
func (e BoolEnvironment) BindBool(id uint64, value bool) BoolEnvironment {
	e.bools[id] = value
	return e
}

// Evaluate computes f's truth value at a fully-bound point.  It propagates
// any arithmetic evaluation error (unbound variable, NaN) from its
// relational atoms.
func Evaluate(f *Formula, env BoolEnvironment) (bool, error) {
	switch f.kind {
	case True:
		return true, nil
	case False:
		return false, nil
	case BoolVar:
		v, ok := env.bools[f.v.Id()]
		if !ok {
			return false, &expr.UnknownVariableError{Name: f.v.Name()}
		}

		return v, nil
	case Eq, Neq, Gt, Geq, Lt, Leq:
		lhs, err := expr.Evaluate(f.lhs, env.Environment)
		if err != nil {
			return false, err
		}

		rhs, err := expr.Evaluate(f.rhs, env.Environment)
		if err != nil {
			return false, err
		}

		return compareRelation(f.kind, lhs, rhs), nil
	case Not:
		v, err := Evaluate(f.operands[0], env)
		if err != nil {
			return false, err
		}

		return !v, nil
	case And:
		for _, o := range f.operands {
			v, err := Evaluate(o, env)
			if err != nil {
				return false, err
			}

			if !v {
				return false, nil
			}
		}

		return true, nil
	case Or:
		for _, o := range f.operands {
			v, err := Evaluate(o, env)
			if err != nil {
				return false, err
			}

			if v {
				return true, nil
			}
		}

		return false, nil
	default:
		return false, &expr.NaNError{Op: "evaluate " + f.kind.String()}
	}
}

func compareRelation(kind Kind, lhs, rhs float64) bool {
	switch kind {
	case Eq:
		return lhs == rhs
	case Neq:
		return lhs != rhs
	case Gt:
		return lhs > rhs
	case Geq:
		return lhs >= rhs
	case Lt:
		return lhs < rhs
	case Leq:
		return lhs <= rhs
	default:
		return false
	}
}
