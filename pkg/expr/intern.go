package expr

import "sync"

// internTable is a process-wide hash-consing pool: cells with identical
// structural content always resolve to the same *Cell pointer, so Equals
// and map/set membership on Expr can use plain == and Go map keys.
type internTable struct {
	mu      sync.RWMutex
	buckets map[uint64][]*Cell
}

var table = &internTable{buckets: make(map[uint64][]*Cell)}

// intern returns the canonical *Cell for proto, reusing an existing cell
// with identical content if one has already been built.  proto's hash must
// already be set.
func (t *internTable) intern(proto *Cell) *Cell {
	t.mu.RLock()
	for _, c := range t.buckets[proto.hash] {
		if structurallyEqual(c, proto) {
			t.mu.RUnlock()
			return c
		}
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range t.buckets[proto.hash] {
		if structurallyEqual(c, proto) {
			return c
		}
	}

	t.buckets[proto.hash] = append(t.buckets[proto.hash], proto)

	return proto
}

// structurallyEqual compares two cells field-by-field for the payload
// relevant to their shared kind.  Children are already-interned *Cell
// pointers, so child comparison is pointer equality.
func structurallyEqual(a, b *Cell) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case Constant:
		return a.c == b.c || (isNaN(a.c) && isNaN(b.c))
	case RealConstant:
		return a.rcLo == b.rcLo && a.rcHi == b.rcHi && a.rcRepLo == b.rcRepLo
	case Var:
		return a.v.Equals(b.v)
	case KindAdd:
		if a.addConst != b.addConst || len(a.addTerms) != len(b.addTerms) {
			return false
		}

		for i := range a.addTerms {
			if a.addTerms[i].Term != b.addTerms[i].Term || a.addTerms[i].Coeff != b.addTerms[i].Coeff {
				return false
			}
		}

		return true
	case KindMul:
		if a.mulConst != b.mulConst || len(a.mulTerms) != len(b.mulTerms) {
			return false
		}

		for i := range a.mulTerms {
			if a.mulTerms[i].Base != b.mulTerms[i].Base || a.mulTerms[i].Exp != b.mulTerms[i].Exp {
				return false
			}
		}

		return true
	case KindIfThenElse:
		if a.cond.Kind != b.cond.Kind || a.cond.Lhs != b.cond.Lhs || a.cond.Rhs != b.cond.Rhs {
			return false
		}

		return sameArgs(a.args, b.args)
	case UninterpretedFunction:
		if a.ufName != b.ufName {
			return false
		}

		return sameArgs(a.args, b.args)
	case NaN:
		return true
	default:
		return sameArgs(a.args, b.args)
	}
}

func sameArgs(a, b []*Cell) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func isNaN(v float64) bool { return v != v }
