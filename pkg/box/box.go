// Package box provides Box, the vector-of-intervals search state the ICP
// engine contracts and bisects.
package box

import (
	"strings"

	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/util"
	"github.com/dreal-go/dreal/pkg/variable"
)

// Box is an ordered vector of interval-valued dimensions, indexed 0..n-1,
// with a fixed bijection to a list of Variables established at construction.
type Box struct {
	vars []variable.Variable
	dims []interval.Interval
	// index caches the position of each variable id for O(1) lookup by
	// Variable rather than scanning on every access.
	index map[uint64]int
}

// New constructs a Box over the given variables, one dimension per variable,
// in the order given.
func New(vars []variable.Variable, dims []interval.Interval) Box {
	if len(vars) != len(dims) {
		panic("box: vars and dims must have the same length")
	}

	idx := make(map[uint64]int, len(vars))
	for i, v := range vars {
		idx[v.Id()] = i
	}

	return Box{vars: vars, dims: dims, index: idx}
}

// Size returns the number of dimensions in this box.
func (b Box) Size() uint {
	return uint(len(b.dims))
}

// Variables returns the variables this box is indexed over, in dimension
// order.
func (b Box) Variables() []variable.Variable {
	return b.vars
}

// Variable returns the variable at dimension i.
func (b Box) Variable(i uint) variable.Variable {
	return b.vars[i]
}

// IndexOf returns the dimension index of v, and whether v is present in this
// box at all.
func (b Box) IndexOf(v variable.Variable) (uint, bool) {
	i, ok := b.index[v.Id()]
	return uint(i), ok
}

// At returns the interval at dimension i.
func (b Box) At(i uint) interval.Interval {
	return b.dims[i]
}

// Get returns the interval bound to v.  Panics if v is not a dimension of
// this box.
func (b Box) Get(v variable.Variable) interval.Interval {
	i, ok := b.IndexOf(v)
	if !ok {
		panic("box: variable not present: " + v.Name())
	}

	return b.dims[i]
}

// SetAt mutates the interval at dimension i.
func (b *Box) SetAt(i uint, iv interval.Interval) {
	b.dims[i] = iv
}

// Set mutates the interval bound to v.
func (b *Box) Set(v variable.Variable, iv interval.Interval) {
	i, ok := b.IndexOf(v)
	if !ok {
		panic("box: variable not present: " + v.Name())
	}

	b.dims[i] = iv
}

// IsEmpty reports whether any dimension of this box is empty; an empty
// dimension makes the whole box represent the empty set.
func (b Box) IsEmpty() bool {
	for _, d := range b.dims {
		if d.IsEmpty() {
			return true
		}
	}

	return false
}

// SetEmpty collapses this box to the empty set by emptying its first
// dimension (sufficient per IsEmpty's definition, and cheaper than emptying
// every dimension).
func (b *Box) SetEmpty() {
	if len(b.dims) == 0 {
		return
	}

	b.dims[0].SetEmpty()
}

// Clone returns an independent deep copy of this box; the variable list and
// index map are shared (immutable), only the interval vector is copied.
func (b Box) Clone() Box {
	dims := make([]interval.Interval, len(b.dims))
	copy(dims, b.dims)

	return Box{vars: b.vars, dims: dims, index: b.index}
}

// Bisect splits dimension i at its midpoint, returning the two child boxes
// (Left, Right) whose union is this box and which are otherwise identical to
// it. Panics if dimension i is not bisectable.
func (b Box) Bisect(i uint) util.Pair[Box, Box] {
	lo, hi := b.dims[i].Bisect()

	left, right := b.Clone(), b.Clone()
	left.dims[i] = lo
	right.dims[i] = hi

	return util.NewPair(left, right)
}

// MaxDiamIndex returns the dimension index with the largest diameter among
// the given candidate indices, breaking ties by the smallest index. ok is
// false if candidates is empty.
func (b Box) MaxDiamIndex(candidates []uint) (idx uint, ok bool) {
	best := -1.0

	for _, i := range candidates {
		d := b.dims[i].Diam()
		if d > best {
			best = d
			idx = i
			ok = true
		}
	}

	return idx, ok
}

// Equals reports whether two boxes over the same variable ordering have
// identical bounds dimension-wise.
func (b Box) Equals(o Box) bool {
	if len(b.dims) != len(o.dims) {
		return false
	}

	for i := range b.dims {
		if b.dims[i] != o.dims[i] {
			return false
		}
	}

	return true
}

// Hull returns the component-wise hull of two boxes over the same variable
// ordering, used to join parallel contractor branches.
func (b Box) Hull(o Box) Box {
	if b.IsEmpty() {
		return o.Clone()
	}

	if o.IsEmpty() {
		return b.Clone()
	}

	dims := make([]interval.Interval, len(b.dims))
	for i := range b.dims {
		dims[i] = b.dims[i].Hull(o.dims[i])
	}

	return Box{vars: b.vars, dims: dims, index: b.index}
}

func (b Box) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, v := range b.vars {
		if i != 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(v.Name())
		sb.WriteString(": ")
		sb.WriteString(b.dims[i].String())
	}

	sb.WriteByte('}')

	return sb.String()
}
