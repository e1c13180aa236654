package expr

import "sort"

// Mul builds the normalized n-ary product of its arguments: nested Mul
// cells are flattened, repeated bases that both carry a constant exponent
// merge those exponents into one (so x*x becomes x^2), and factors are
// sorted into a canonical order so that commutative/associative
// rearrangements of the same product intern to one cell.  A base appearing
// more than once with at least one non-constant exponent is kept as
// separate factors rather than symbolically summed.
func Mul(args ...Expr) Expr {
	acc := newMulAccumulator()

	for _, a := range args {
		acc.absorb(a)
	}

	return acc.build()
}

type mulPair struct {
	base, exp *Cell
}

type mulAccumulator struct {
	constant float64
	pairs    []mulPair
}

func newMulAccumulator() *mulAccumulator {
	return &mulAccumulator{constant: 1}
}

func (acc *mulAccumulator) absorb(e Expr) {
	switch e.kind {
	case Constant:
		acc.constant *= e.c
	case KindMul:
		acc.constant *= e.mulConst
		for _, f := range e.mulTerms {
			acc.addFactor(f.Base, f.Exp)
		}
	case KindPow:
		acc.addFactor(e.args[0], e.args[1])
	default:
		acc.addFactor(e, Const(1))
	}
}

// addFactor merges base^exp with an existing pair sharing the same base
// pointer when both exponents are literal constants; otherwise it appends
// a new, independent factor.
func (acc *mulAccumulator) addFactor(base, exp *Cell) {
	for i, p := range acc.pairs {
		if p.base == base && p.exp.kind == Constant && exp.kind == Constant {
			acc.pairs[i].exp = Const(p.exp.c + exp.c)
			return
		}
	}

	acc.pairs = append(acc.pairs, mulPair{base: base, exp: exp})
}

func (acc *mulAccumulator) build() Expr {
	filtered := acc.pairs[:0]

	for _, p := range acc.pairs {
		if p.exp.kind == Constant && p.exp.c == 0 {
			continue
		}

		filtered = append(filtered, p)
	}

	acc.pairs = filtered

	sort.SliceStable(acc.pairs, func(i, j int) bool {
		return compare(acc.pairs[i].base, acc.pairs[j].base) < 0
	})

	if acc.constant == 0 {
		return Const(0)
	}

	if len(acc.pairs) == 0 {
		return Const(acc.constant)
	}

	if len(acc.pairs) == 1 && acc.constant == 1 && acc.pairs[0].exp.kind == Constant && acc.pairs[0].exp.c == 1 {
		return acc.pairs[0].base
	}

	terms := make([]MulTerm, len(acc.pairs))
	isPoly := true

	for i, p := range acc.pairs {
		terms[i] = MulTerm{Base: p.base, Exp: p.exp}

		if !p.base.isPoly || !isNonNegativeIntegerConstant(p.exp) {
			isPoly = false
		}
	}

	return table.intern(&Cell{
		kind:     KindMul,
		mulConst: acc.constant,
		mulTerms: terms,
		hash:     hashMul(acc.constant, terms),
		isPoly:   isPoly,
	})
}

func isNonNegativeIntegerConstant(e *Cell) bool {
	return e.kind == Constant && e.c >= 0 && e.c == float64(int64(e.c))
}
