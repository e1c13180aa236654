// Package formulaeval evaluates a formula.Formula over a box.Box using
// interval arithmetic, producing a three-valued verdict: the formula
// definitely holds everywhere in the box (Valid), definitely fails
// everywhere in the box (Unsat), or neither can be established from the
// box's current interval widths alone (Unknown).  This backs both
// termination checking (a box whose formula is Valid or Unsat needs no
// further contraction) and branching-candidate selection (an Unknown
// relational atom is a live candidate to bisect on).
package formulaeval

import (
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/ivaleval"
)

// Status is a three-valued verdict.
type Status uint8

const (
	Unknown Status = iota
	Valid
	Unsat
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "Valid"
	case Unsat:
		return "Unsat"
	default:
		return "Unknown"
	}
}

// Result is the outcome of evaluating a formula over a box.
type Result struct {
	Status Status
	// AmbiguousAtoms lists the relational atoms whose own verdict was
	// Unknown, the live candidates for the branching heuristics to bisect
	// on next.
	AmbiguousAtoms []*formula.Formula
}

// Evaluate computes f's three-valued verdict over b.
func Evaluate(f *formula.Formula, b box.Box) (Result, error) {
	var r Result

	status, err := evaluate(f, b, &r)
	if err != nil {
		return Result{}, err
	}

	r.Status = status

	return r, nil
}

func evaluate(f *formula.Formula, b box.Box, r *Result) (Status, error) {
	switch f.Kind() {
	case formula.True:
		return Valid, nil
	case formula.False:
		return Unsat, nil
	case formula.BoolVar:
		return Unknown, nil
	case formula.Eq, formula.Neq, formula.Gt, formula.Geq, formula.Lt, formula.Leq:
		status, err := evaluateAtom(f, b)
		if err != nil {
			return Unknown, err
		}

		if status == Unknown {
			r.AmbiguousAtoms = append(r.AmbiguousAtoms, f)
		}

		return status, nil
	case formula.Not:
		inner, err := evaluate(f.Operands()[0], b, r)
		if err != nil {
			return Unknown, err
		}

		return negate(inner), nil
	case formula.And:
		return evaluateAnd(f.Operands(), b, r)
	case formula.Or:
		return evaluateOr(f.Operands(), b, r)
	case formula.Forall:
		if f.Domain().IsEmpty() {
			return Valid, nil
		}

		return Unknown, nil
	default:
		return Unknown, nil
	}
}

func evaluateAtom(f *formula.Formula, b box.Box) (Status, error) {
	lhs, rhs := f.Relation()

	lhsIv, err := ivaleval.Evaluate(lhs, b)
	if err != nil {
		return Unknown, err
	}

	rhsIv, err := ivaleval.Evaluate(rhs, b)
	if err != nil {
		return Unknown, err
	}

	diff := lhsIv.Sub(rhsIv)

	switch f.Kind() {
	case formula.Gt:
		if diff.Lo > 0 {
			return Valid, nil
		}

		if diff.Hi <= 0 {
			return Unsat, nil
		}
	case formula.Geq:
		if diff.Lo >= 0 {
			return Valid, nil
		}

		if diff.Hi < 0 {
			return Unsat, nil
		}
	case formula.Lt:
		if diff.Hi < 0 {
			return Valid, nil
		}

		if diff.Lo >= 0 {
			return Unsat, nil
		}
	case formula.Leq:
		if diff.Hi <= 0 {
			return Valid, nil
		}

		if diff.Lo > 0 {
			return Unsat, nil
		}
	case formula.Eq:
		if diff.Lo == 0 && diff.Hi == 0 {
			return Valid, nil
		}

		if diff.Lo > 0 || diff.Hi < 0 {
			return Unsat, nil
		}
	case formula.Neq:
		if diff.Lo > 0 || diff.Hi < 0 {
			return Valid, nil
		}

		if diff.Lo == 0 && diff.Hi == 0 {
			return Unsat, nil
		}
	}

	return Unknown, nil
}

func evaluateAnd(operands []*formula.Formula, b box.Box, r *Result) (Status, error) {
	sawUnknown := false

	for _, o := range operands {
		status, err := evaluate(o, b, r)
		if err != nil {
			return Unknown, err
		}

		switch status {
		case Unsat:
			return Unsat, nil
		case Unknown:
			sawUnknown = true
		}
	}

	if sawUnknown {
		return Unknown, nil
	}

	return Valid, nil
}

func evaluateOr(operands []*formula.Formula, b box.Box, r *Result) (Status, error) {
	sawUnknown := false

	for _, o := range operands {
		status, err := evaluate(o, b, r)
		if err != nil {
			return Unknown, err
		}

		switch status {
		case Valid:
			return Valid, nil
		case Unknown:
			sawUnknown = true
		}
	}

	if sawUnknown {
		return Unknown, nil
	}

	return Unsat, nil
}

func negate(s Status) Status {
	switch s {
	case Valid:
		return Unsat
	case Unsat:
		return Valid
	default:
		return Unknown
	}
}
