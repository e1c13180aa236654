package icp

import (
	"context"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/branch"
	"github.com/dreal-go/dreal/pkg/util"
	"github.com/dreal-go/dreal/pkg/util/collection/stack"
)

type stackEntry struct {
	box   box.Box
	depth int
}

// checkSatSequential runs the single-threaded LIFO search spec.md's
// sequential engine describes: pop a box, contract it, classify it against
// every constraint, and either drop it (empty, or some constraint UNSAT on
// it), stop with SAT when no constraint has an outstanding candidate, or
// bisect and push both children. leftFirst flips after every branch, alternating which
// child the next pop favors — a cheap DFS-bias breaker, not a correctness
// requirement.
func checkSatSequential(ctx context.Context, p Problem, cfg Config, stats *SearchStats) (Result, error) {
	constraints := conjuncts(p.Constraints)
	contract := buildContractor(constraints, p.Domain, cfg)

	frontier := stack.NewStack[stackEntry]()
	frontier.Push(stackEntry{box: p.Domain.Clone(), depth: 0})

	leftFirst := cfg.StackLeftBoxFirst

	for !frontier.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return Result{}, &CancelledError{}
		}

		entry := frontier.Pop()
		b := entry.box

		if _, err := contract.Prune(&b); err != nil {
			return Result{}, err
		}

		stats.NumPrune++

		if b.IsEmpty() {
			continue
		}

		candidates, err := branch.EvaluateBox(constraints, &b, cfg.Precision)
		if err != nil {
			return Result{}, err
		}

		if candidates == nil {
			continue
		}

		if candidates.IsEmpty() {
			return Result{Verdict: Sat, Witness: util.Some(b)}, nil
		}

		idx, ok, err := selectBranchIndex(constraints, b, candidates, cfg.BranchingStrategy)
		if err != nil {
			return Result{}, err
		}

		if !ok {
			// Degenerate delta-sat: every remaining candidate is too
			// narrow to bisect, yet no constraint has settled to Valid.
			return Result{Verdict: Sat, Witness: util.Some(b)}, nil
		}

		split := b.Bisect(idx)
		stats.NumBisect++

		if entry.depth+1 > stats.MaxDepth {
			stats.MaxDepth = entry.depth + 1
		}

		pushChildren(frontier, split.Left, split.Right, entry.depth+1, leftFirst)
		leftFirst = !leftFirst
	}

	return Result{Verdict: Unsat}, nil
}

func pushChildren(frontier *stack.Stack[stackEntry], left, right box.Box, depth int, leftFirst bool) {
	first, second := left, right
	if !leftFirst {
		first, second = right, left
	}
	// Push the box explored second first, so the box explored first ends
	// up on top of the LIFO stack.
	frontier.Push(stackEntry{box: second, depth: depth})
	frontier.Push(stackEntry{box: first, depth: depth})
}
