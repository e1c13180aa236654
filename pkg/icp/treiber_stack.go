package icp

import (
	"sync/atomic"

	"github.com/dreal-go/dreal/pkg/box"
)

// treiberStack is a lock-free MPMC LIFO stack of boxes shared by every
// worker in the parallel search: push and pop both retry a single
// compare-and-swap on the head pointer instead of taking a lock, so a
// worker never blocks another worker out of the stack.
//
// Built on stdlib sync/atomic.Pointer rather than go.uber.org/atomic: the
// pinned go.uber.org/atomic v1.9.0 predates that package's generic
// atomic.Pointer[T] (added in v1.10.0), and there's no non-generic
// substitute that keeps this type-safe without an unsafe.Pointer cast.
type treiberStack struct {
	head atomic.Pointer[treiberNode]
}

// treiberItem is the payload a worker pushes and pops: the box itself, plus
// the bisection depth it was produced at, so the parallel engine can track
// SearchStats.MaxDepth the same way the sequential engine does.
type treiberItem struct {
	box   box.Box
	depth int
}

type treiberNode struct {
	item treiberItem
	next *treiberNode
}

func newTreiberStack() *treiberStack {
	return &treiberStack{}
}

func (s *treiberStack) push(item treiberItem) {
	n := &treiberNode{item: item}

	for {
		old := s.head.Load()
		n.next = old

		if s.head.CompareAndSwap(old, n) {
			return
		}
	}
}

func (s *treiberStack) pop() (treiberItem, bool) {
	for {
		old := s.head.Load()
		if old == nil {
			return treiberItem{}, false
		}

		if s.head.CompareAndSwap(old, old.next) {
			return old.item, true
		}
	}
}
