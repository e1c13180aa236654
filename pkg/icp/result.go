package icp

import (
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/util"
)

// Verdict is the search's final answer.
type Verdict uint8

const (
	// Unsat means no box in the domain delta-satisfies every constraint.
	Unsat Verdict = iota
	// Sat means Witness delta-satisfies every constraint.
	Sat
)

func (v Verdict) String() string {
	if v == Sat {
		return "delta-sat"
	}

	return "unsat"
}

// Result is CheckSat's answer: a Verdict, and for Sat a witness box every
// constraint is delta-satisfied on. Witness is only present when Verdict is
// Sat.
type Result struct {
	Verdict Verdict
	Witness util.Option[box.Box]
}

// SearchStats tracks how much work a CheckSat run did, for diagnostics and
// the parallel-vs-sequential comparison spec.md's test scenarios exercise.
type SearchStats struct {
	NumPrune  int
	NumBisect int
	MaxDepth  int
}
