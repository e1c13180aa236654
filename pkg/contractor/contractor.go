// Package contractor implements the narrowing operators the search engine
// composes into a propagation schedule: each Contractor maps a box to a
// (weakly) smaller box that still contains every point satisfying whatever
// constraint it encodes, never discarding a true solution.
package contractor

import (
	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
)

// Status reports which dimensions a Prune call actually narrowed (or
// detected empty), letting a Worklist schedule only the contractors whose
// Input overlaps a prior contractor's Output.
type Status struct {
	Output *bitset.Set
}

// EmptyStatus is the zero-touched-dimensions status, returned by
// contractors that found nothing to narrow.
func EmptyStatus() Status { return Status{Output: bitset.New()} }

// Contractor narrows a box in place without ever excluding a point that
// actually satisfies the constraint it represents.
type Contractor interface {
	// Prune narrows b in place, returning which dimensions it touched.
	Prune(b *box.Box) (Status, error)
	// Input returns the dimension indices this contractor reads from (and
	// could narrow) in b — its dependency set for worklist scheduling.
	Input(b box.Box) *bitset.Set
	String() string
}
