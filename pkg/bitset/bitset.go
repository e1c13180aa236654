// Package bitset provides the dimension-index sets used throughout the ICP
// engine: a Contractor's published Input() set, the dimensions a Prune call
// actually touched (ContractorStatus.Output), and the branching-candidate set
// produced by EvaluateBox.
//
// It wraps github.com/bits-and-blooms/bitset rather than hand-rolling a
// word-array bitset, preferring an established third-party library over a
// duplicate in-house one.
package bitset

import "github.com/bits-and-blooms/bitset"

// Set is a mutable set of dimension indices.
type Set struct {
	bits *bitset.BitSet
}

// New constructs an empty Set.
func New() *Set {
	return &Set{bits: bitset.New(0)}
}

// Of constructs a Set containing exactly the given indices.
func Of(indices ...uint) *Set {
	s := New()
	s.InsertAll(indices...)

	return s
}

// Clone returns an independent copy of this set.
func (s *Set) Clone() *Set {
	return &Set{bits: s.bits.Clone()}
}

// Insert adds a single index to the set.
func (s *Set) Insert(i uint) {
	s.bits.Set(i)
}

// InsertAll adds zero or more indices to the set.
func (s *Set) InsertAll(indices ...uint) {
	for _, i := range indices {
		s.bits.Set(i)
	}
}

// Remove deletes an index from the set, if present.
func (s *Set) Remove(i uint) {
	s.bits.Clear(i)
}

// Contains reports whether i is a member of this set.
func (s *Set) Contains(i uint) bool {
	return s.bits.Test(i)
}

// IsEmpty reports whether this set has no members.
func (s *Set) IsEmpty() bool {
	return s.bits.None()
}

// Count returns the number of members in this set.
func (s *Set) Count() uint {
	return uint(s.bits.Count())
}

// Union mutates this set to include every member of o, returning true if
// that changed this set.
func (s *Set) Union(o *Set) bool {
	before := s.bits.Count()
	s.bits.InPlaceUnion(o.bits)

	return s.bits.Count() != before
}

// Intersects reports whether this set and o share any member; used by the
// Worklist contractor combinator to decide whether to run its inner
// contractor.
func (s *Set) Intersects(o *Set) bool {
	return s.bits.IntersectionCardinality(o.bits) > 0
}

// Elements returns the sorted list of member indices.
func (s *Set) Elements() []uint {
	elems := make([]uint, 0, s.bits.Count())

	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		elems = append(elems, i)
	}

	return elems
}

// String implements fmt.Stringer.
func (s *Set) String() string {
	return s.bits.String()
}
