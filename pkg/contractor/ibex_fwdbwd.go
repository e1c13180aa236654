package contractor

import (
	"math"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/expr"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/ivaleval"
)

// atomContractor is the HC4 (Hull-Consistency) forward-backward revise
// contractor for a single relational atom.  It evaluates lhs-rhs forward to
// an interval enclosure at every subexpression, then propagates a narrowed
// target interval backward down to each variable leaf through each
// operator's inverse, intersecting the result into the box.
//
// Backward narrowing is complete for Add (arbitrary arity) and for Div,
// Log, Exp, Sqrt, Abs, and a determinate IfThenElse branch.  Mul only
// narrows factors raised to a literal exponent of 1 or 2 (2 via
// sign-symmetric square-root inversion); general Pow, the trig and
// hyperbolic functions, Min, Max, Atan2, an undetermined IfThenElse branch,
// and UninterpretedFunction are forward-only.  A forward-only operator still
// contributes its enclosure to the forward pass, it simply passes no
// narrowing down to its own children — which is sound (it only ever
// under-contracts, never excludes a true solution) even though it misses
// prunings a full inverse rule would find.
type atomContractor struct {
	atom   *formula.Formula
	diff   expr.Expr
	target interval.Interval
}

// IbexFwdbwd builds the forward-backward revise contractor for a relational
// atom (Eq, Gt, Geq, Lt, Leq).  Neq has no sound interval target (no single
// interval excludes exactly one point) and is rejected.
func IbexFwdbwd(atom *formula.Formula) (Contractor, error) {
	switch atom.Kind() {
	case formula.Eq, formula.Neq, formula.Gt, formula.Geq, formula.Lt, formula.Leq:
	default:
		return nil, &UnsupportedFormulaError{Detail: "IbexFwdbwd requires a relational atom, got " + atom.Kind().String()}
	}

	if atom.Kind() == formula.Neq {
		return nil, &UnsupportedFormulaError{Detail: "Neq has no sound interval target: no single interval excludes exactly one point"}
	}

	lhs, rhs := atom.Relation()
	diff := expr.Sub(lhs, rhs)

	var target interval.Interval

	switch atom.Kind() {
	case formula.Eq:
		target = interval.Point(0)
	case formula.Leq, formula.Lt:
		target = interval.Interval{Lo: math.Inf(-1), Hi: 0}
	case formula.Geq, formula.Gt:
		target = interval.Interval{Lo: 0, Hi: math.Inf(1)}
	}

	return &atomContractor{atom: atom, diff: diff, target: target}, nil
}

func (a *atomContractor) Prune(b *box.Box) (Status, error) {
	if b.IsEmpty() {
		return EmptyStatus(), nil
	}

	forward := make(map[expr.Expr]interval.Interval)
	buildForward(a.diff, *b, forward)

	touched := bitset.New()
	backward(a.diff, a.target, b, forward, touched)

	return Status{Output: touched}, nil
}

func (a *atomContractor) Input(b box.Box) *bitset.Set {
	set := bitset.New()

	for _, v := range expr.FreeVariables(a.diff) {
		if idx, ok := b.IndexOf(v); ok {
			set.Insert(idx)
		}
	}

	return set
}

func (a *atomContractor) String() string {
	return "IbexFwdbwd(" + a.atom.String() + ")"
}

// buildForward computes a conservative interval enclosure of e over b,
// caching every subexpression's enclosure in forward so the backward pass
// can read a sibling's forward value without recomputing it.
func buildForward(e expr.Expr, b box.Box, forward map[expr.Expr]interval.Interval) interval.Interval {
	if iv, ok := forward[e]; ok {
		return iv
	}

	var iv interval.Interval

	switch e.Kind() {
	case expr.Constant:
		iv = interval.Point(e.ConstantValue())
	case expr.RealConstant:
		lo, hi, _ := e.RealConstantBounds()
		iv = interval.New(lo, hi)
	case expr.Var:
		if idx, ok := b.IndexOf(e.Variable()); ok {
			iv = b.At(idx)
		} else {
			iv = interval.Empty
		}
	case expr.NaN:
		iv = interval.Empty
	case expr.KindAdd:
		iv = interval.Point(e.AddConstant())
		for _, t := range e.AddTerms() {
			termIv := buildForward(t.Term, b, forward)
			iv = iv.Add(termIv.Mul(interval.Point(t.Coeff)))
		}
	case expr.KindMul:
		iv = interval.Point(e.MulConstant())
		for _, t := range e.MulTerms() {
			baseIv := buildForward(t.Base, b, forward)

			factor, err := ivaleval.PowFactor(baseIv, t.Exp, b)
			if err != nil {
				factor = interval.Empty
			}

			iv = iv.Mul(factor)
		}
	case expr.KindDiv:
		num := buildForward(e.Args()[0], b, forward)
		den := buildForward(e.Args()[1], b, forward)
		iv = num.Div(den)
	case expr.KindLog:
		iv = buildForward(e.Args()[0], b, forward).Log()
	case expr.KindAbs:
		iv = buildForward(e.Args()[0], b, forward).Abs()
	case expr.KindExp:
		iv = buildForward(e.Args()[0], b, forward).Exp()
	case expr.KindSqrt:
		iv = buildForward(e.Args()[0], b, forward).Sqrt()
	case expr.KindPow:
		base := buildForward(e.Args()[0], b, forward)

		factor, err := ivaleval.PowFactor(base, e.Args()[1], b)
		if err != nil {
			factor = interval.Empty
		}

		iv = factor
	case expr.KindIfThenElse:
		cond := e.Condition()
		lhs := buildForward(cond.Lhs, b, forward)
		rhs := buildForward(cond.Rhs, b, forward)

		switch certainty(cond.Kind, lhs, rhs) {
		case definitelyTrue:
			iv = buildForward(e.Args()[0], b, forward)
		case definitelyFalse:
			iv = buildForward(e.Args()[1], b, forward)
		default:
			t := buildForward(e.Args()[0], b, forward)
			f := buildForward(e.Args()[1], b, forward)
			iv = t.Hull(f)
		}
	default:
		// Trig, hyperbolic, Min/Max, Atan2, UninterpretedFunction: no
		// backward rule exists for these, so their forward value is all
		// buildForward needs to produce; ivaleval already knows how.
		computed, err := ivaleval.Evaluate(e, b)
		if err != nil {
			iv = interval.Empty
		} else {
			iv = computed
		}
	}

	forward[e] = iv

	return iv
}

// backward narrows e to target, intersected with its cached forward value,
// and propagates the consequence down to e's children per its operator's
// inverse rule.  It sets b empty and returns as soon as any intersection is
// empty.
func backward(e expr.Expr, target interval.Interval, b *box.Box, forward map[expr.Expr]interval.Interval, touched *bitset.Set) {
	if b.IsEmpty() {
		return
	}

	cur := forward[e]
	narrowed := cur.Intersect(target)

	if narrowed.IsEmpty() {
		b.SetEmpty()
		return
	}

	switch e.Kind() {
	case expr.Var:
		idx, ok := b.IndexOf(e.Variable())
		if !ok {
			return
		}

		next := b.At(idx).Intersect(narrowed)
		if next.IsEmpty() {
			b.SetEmpty()
			return
		}

		b.SetAt(idx, next)
		touched.Insert(idx)
	case expr.KindAdd:
		backwardAdd(e, narrowed, b, forward, touched)
	case expr.KindMul:
		backwardMul(e, narrowed, b, forward, touched)
	case expr.KindDiv:
		num, den := e.Args()[0], e.Args()[1]
		numFwd, denFwd := forward[num], forward[den]

		backward(num, narrowed.Mul(denFwd), b, forward, touched)
		if b.IsEmpty() {
			return
		}

		backward(den, numFwd.Div(narrowed), b, forward, touched)
	case expr.KindLog:
		backward(e.Args()[0], narrowed.Exp(), b, forward, touched)
	case expr.KindExp:
		backward(e.Args()[0], narrowed.Log(), b, forward, touched)
	case expr.KindSqrt:
		backward(e.Args()[0], narrowed.Sqr(), b, forward, touched)
	case expr.KindAbs:
		backward(e.Args()[0], narrowed.Hull(narrowed.Neg()), b, forward, touched)
	case expr.KindIfThenElse:
		cond := e.Condition()
		lhsFwd, rhsFwd := forward[cond.Lhs], forward[cond.Rhs]

		switch certainty(cond.Kind, lhsFwd, rhsFwd) {
		case definitelyTrue:
			backward(e.Args()[0], narrowed, b, forward, touched)
		case definitelyFalse:
			backward(e.Args()[1], narrowed, b, forward, touched)
		default:
			// Either branch may be the one actually taken at different
			// points of the box; narrowing from the root's target would
			// be unsound, so this falls back to forward-only.
		}
	default:
		// General Pow, trig, hyperbolic, Min/Max, Atan2,
		// UninterpretedFunction: forward-only, no inverse rule.
	}
}

func backwardAdd(e expr.Expr, narrowed interval.Interval, b *box.Box, forward map[expr.Expr]interval.Interval, touched *bitset.Set) {
	terms := e.AddTerms()

	for i, t := range terms {
		if t.Coeff == 0 {
			continue
		}

		rest := narrowed.Sub(interval.Point(e.AddConstant()))

		for j, o := range terms {
			if j == i {
				continue
			}

			rest = rest.Sub(forward[o.Term].Mul(interval.Point(o.Coeff)))
		}

		backward(t.Term, rest.Div(interval.Point(t.Coeff)), b, forward, touched)
		if b.IsEmpty() {
			return
		}
	}
}

func backwardMul(e expr.Expr, narrowed interval.Interval, b *box.Box, forward map[expr.Expr]interval.Interval, touched *bitset.Set) {
	terms := e.MulTerms()

	for i, t := range terms {
		exp := literalExponent(t.Exp)
		if exp != 1 && exp != 2 {
			continue
		}

		rest := narrowed.Div(interval.Point(e.MulConstant()))

		for j, o := range terms {
			if j == i {
				continue
			}

			factor, err := ivaleval.PowFactor(forward[o.Base], o.Exp, *b)
			if err != nil {
				return
			}

			rest = rest.Div(factor)
		}

		switch exp {
		case 1:
			backward(t.Base, rest, b, forward, touched)
		case 2:
			nonneg := rest.Intersect(interval.Interval{Lo: 0, Hi: math.Inf(1)})
			if nonneg.IsEmpty() {
				b.SetEmpty()
				return
			}

			pos := interval.Interval{Lo: math.Sqrt(nonneg.Lo), Hi: math.Sqrt(nonneg.Hi)}
			backward(t.Base, pos.Hull(pos.Neg()), b, forward, touched)
		}

		if b.IsEmpty() {
			return
		}
	}
}

// literalExponent returns the exponent as an int when exp is a Constant
// cell holding exactly 1 or 2, and 0 (meaning "not a recognized literal
// exponent") otherwise.
func literalExponent(exp expr.Expr) int {
	if exp.Kind() != expr.Constant {
		return 0
	}

	switch exp.ConstantValue() {
	case 1:
		return 1
	case 2:
		return 2
	default:
		return 0
	}
}

type verdict uint8

const (
	definitelyTrue verdict = iota
	definitelyFalse
	undetermined
)

// certainty duplicates ivaleval's unexported classification of a
// relation's truth across two interval operands; kept local rather than
// exported from ivaleval so this package doesn't need a dependency edge
// back into evaluation internals for one small comparison helper.
func certainty(kind expr.RelKind, lhs, rhs interval.Interval) verdict {
	diff := lhs.Sub(rhs)

	switch kind {
	case expr.RelGt:
		if diff.Lo > 0 {
			return definitelyTrue
		}

		if diff.Hi <= 0 {
			return definitelyFalse
		}
	case expr.RelGeq:
		if diff.Lo >= 0 {
			return definitelyTrue
		}

		if diff.Hi < 0 {
			return definitelyFalse
		}
	case expr.RelLt:
		if diff.Hi < 0 {
			return definitelyTrue
		}

		if diff.Lo >= 0 {
			return definitelyFalse
		}
	case expr.RelLeq:
		if diff.Hi <= 0 {
			return definitelyTrue
		}

		if diff.Lo > 0 {
			return definitelyFalse
		}
	case expr.RelEq:
		if diff.Lo == 0 && diff.Hi == 0 {
			return definitelyTrue
		}

		if diff.Lo > 0 || diff.Hi < 0 {
			return definitelyFalse
		}
	case expr.RelNeq:
		if diff.Lo > 0 || diff.Hi < 0 {
			return definitelyTrue
		}

		if diff.Lo == 0 && diff.Hi == 0 {
			return definitelyFalse
		}
	}

	return undetermined
}
