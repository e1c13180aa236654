package expr

import "sort"

// Add builds the normalized n-ary sum of its arguments: nested Add cells
// are flattened, constant-times-term factors are absorbed into a single
// coefficient per distinct term, constants fold together, and terms are
// sorted into a canonical order so that commutative/associative
// rearrangements of the same sum intern to one cell.
func Add(args ...Expr) Expr {
	acc := newAddAccumulator()

	for _, a := range args {
		acc.absorb(a, 1)
	}

	return acc.build()
}

// Sub builds a - b using Add and Mul: there is no dedicated subtraction
// cell kind, matching the rest of the DAG's n-ary-sum-of-signed-terms
// normal form.
func Sub(a, b Expr) Expr {
	return Add(a, Mul(Const(-1), b))
}

// Neg builds -a.
func Neg(a Expr) Expr {
	return Mul(Const(-1), a)
}

type addAccumulator struct {
	constant float64
	coeffs   map[*Cell]float64
	order    []*Cell
}

func newAddAccumulator() *addAccumulator {
	return &addAccumulator{coeffs: make(map[*Cell]float64)}
}

// absorb folds e (scaled by scale) into the accumulator.  It recurses into
// nested Add cells and recognizes literal constant*term and term*constant
// Mul cells as a single coefficient*term summand, matching how the Mul
// constructor itself represents "3*x".
func (acc *addAccumulator) absorb(e Expr, scale float64) {
	switch e.kind {
	case Constant:
		acc.constant += scale * e.c
	case KindAdd:
		acc.constant += scale * e.addConst
		for _, t := range e.addTerms {
			acc.add(t.Term, scale*t.Coeff)
		}
	case KindMul:
		if unit, coeff, ok := unitAndCoefficient(e); ok {
			acc.add(unit, scale*coeff)
			return
		}

		acc.add(e, scale)
	default:
		acc.add(e, scale)
	}
}

func (acc *addAccumulator) add(term *Cell, coeff float64) {
	if _, seen := acc.coeffs[term]; !seen {
		acc.order = append(acc.order, term)
	}

	acc.coeffs[term] += coeff
}

func (acc *addAccumulator) build() Expr {
	terms := make([]AddTerm, 0, len(acc.order))

	for _, t := range acc.order {
		c := acc.coeffs[t]
		if c == 0 {
			continue
		}

		terms = append(terms, AddTerm{Term: t, Coeff: c})
	}

	sort.Slice(terms, func(i, j int) bool { return compare(terms[i].Term, terms[j].Term) < 0 })

	if len(terms) == 0 {
		return Const(acc.constant)
	}

	if len(terms) == 1 && acc.constant == 0 {
		if terms[0].Coeff == 1 {
			return terms[0].Term
		}

		// A lone scaled term is the product coeff*term, so x+x and 2*x
		// intern to the same Mul cell.
		return Mul(Const(terms[0].Coeff), terms[0].Term)
	}

	isPoly := true
	for _, t := range terms {
		if !t.Term.isPoly {
			isPoly = false
			break
		}
	}

	return table.intern(&Cell{
		kind:     KindAdd,
		addConst: acc.constant,
		addTerms: terms,
		hash:     hashAdd(acc.constant, terms),
		isPoly:   isPoly,
	})
}

// unitAndCoefficient splits any Mul cell into its constant factor and the
// "unit" product of its base^exponent factors alone (that same product
// with its constant factor forced to 1), so that Add can always fold a
// product's leading constant into its own per-term coefficient regardless
// of how many factors the product has.  This keeps e.g. "2*x*y" and
// "2*(x*y)" from interning to different Add summands.
func unitAndCoefficient(m *Cell) (*Cell, float64, bool) {
	if len(m.mulTerms) == 1 && m.mulTerms[0].Exp.kind == Constant && m.mulTerms[0].Exp.c == 1 {
		return m.mulTerms[0].Base, m.mulConst, true
	}

	factors := make([]Expr, len(m.mulTerms))
	for i, t := range m.mulTerms {
		factors[i] = Pow(t.Base, t.Exp)
	}

	return Mul(factors...), m.mulConst, true
}
