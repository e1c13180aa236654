package icp

import (
	"context"
	"runtime"
	"sync"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/branch"
	"github.com/dreal-go/dreal/pkg/contractor"
	"github.com/dreal-go/dreal/pkg/formula"
	"github.com/dreal-go/dreal/pkg/util"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// sharedWitness publishes the single SAT box found by whichever worker
// wins the found-delta-sat race. The write happens exactly once, guarded
// by that race's compare-and-swap, but the mutex still protects the read
// in checkSatParallel against a write that's still in flight on another
// core.
type sharedWitness struct {
	mu  sync.Mutex
	box box.Box
}

func (w *sharedWitness) set(b box.Box) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.box = b
}

func (w *sharedWitness) get() box.Box {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.box
}

// checkSatParallel runs spec.md's shared-stack parallel engine: a fixed
// pool of workers pop boxes off one lock-free Treiber stack, contract and
// classify each, and either retire it (empty after contraction, or some
// constraint UNSAT on it — i.e. EvaluateBox's "None") or bisect it,
// pushing one child back onto the shared stack and continuing locally with
// the other. The first worker to see an EvaluateBox verdict of "every
// constraint already delta-satisfied here" claims found_delta_sat and every
// other worker exits on its next iteration.
func checkSatParallel(ctx context.Context, p Problem, cfg Config, stats *SearchStats) (Result, error) {
	constraints := conjuncts(p.Constraints)
	domain := p.Domain.Clone()

	seed := buildContractor(constraints, domain, cfg)
	if _, err := seed.Prune(&domain); err != nil {
		return Result{}, err
	}

	stats.NumPrune++

	if domain.IsEmpty() {
		return Result{Verdict: Unsat}, nil
	}

	workers := cfg.NumberOfJobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	seeds := fillUp(domain, workers)

	stack := newTreiberStack()
	for _, b := range seeds {
		stack.push(treiberItem{box: b, depth: 0})
	}

	numberOfBoxes := atomic.NewInt64(int64(len(seeds)))
	foundDeltaSat := atomic.NewInt64(-1)

	cache := contractor.NewPerWorkerCache(workers, func(int) contractor.Contractor {
		return buildContractor(constraints, domain, cfg)
	})

	var witness sharedWitness

	var statsMu sync.Mutex

	var errsMu sync.Mutex

	var errs error

	group, gctx := errgroup.WithContext(ctx)

	for id := 0; id < workers; id++ {
		id := id

		group.Go(func() error {
			err := runWorker(workerArgs{
				ctx:           gctx,
				id:            id,
				contract:      cache.Get(id),
				constraints:   constraints,
				cfg:           cfg,
				stack:         stack,
				numberOfBoxes: numberOfBoxes,
				foundDeltaSat: foundDeltaSat,
				witness:       &witness,
				stats:         stats,
				statsMu:       &statsMu,
			})
			if err != nil {
				errsMu.Lock()
				errs = multierr.Append(errs, err)
				errsMu.Unlock()
			}

			return err
		})
	}

	// group.Wait's own return value is only the first error errgroup saw,
	// used here purely to drive gctx's cancellation of the remaining
	// workers; errs, combined below, is every worker's terminal error.
	_ = group.Wait()

	if errs != nil {
		return Result{}, errs
	}

	if foundDeltaSat.Load() != -1 {
		return Result{Verdict: Sat, Witness: util.Some(witness.get())}, nil
	}

	return Result{Verdict: Unsat}, nil
}

type workerArgs struct {
	ctx           context.Context
	id            int
	contract      contractor.Contractor
	constraints   []*formula.Formula
	cfg           Config
	stack         *treiberStack
	numberOfBoxes *atomic.Int64
	foundDeltaSat *atomic.Int64
	witness       *sharedWitness
	stats         *SearchStats
	statsMu       *sync.Mutex
}

func runWorker(a workerArgs) error {
	var (
		current  box.Box
		depth    int
		holding  bool
		pushLeft = a.id%2 == 0
	)

	for {
		if a.foundDeltaSat.Load() != -1 {
			return nil
		}

		if err := a.ctx.Err(); err != nil {
			return &CancelledError{}
		}

		if !holding {
			item, ok := a.stack.pop()
			if !ok {
				if a.numberOfBoxes.Load() == 0 {
					return nil
				}

				runtime.Gosched()

				continue
			}

			current = item.box
			depth = item.depth
			holding = true
		}

		if _, err := a.contract.Prune(&current); err != nil {
			return err
		}

		a.recordPrune()

		if current.IsEmpty() {
			a.numberOfBoxes.Dec()
			holding = false

			continue
		}

		candidates, err := branch.EvaluateBox(a.constraints, &current, a.cfg.Precision)
		if err != nil {
			return err
		}

		if candidates == nil {
			a.numberOfBoxes.Dec()
			holding = false

			continue
		}

		if candidates.IsEmpty() {
			if a.foundDeltaSat.CAS(-1, int64(a.id)) {
				a.witness.set(current)
			}

			return nil
		}

		idx, ok, err := selectBranchIndex(a.constraints, current, candidates, a.cfg.BranchingStrategy)
		if err != nil {
			return err
		}

		if !ok {
			if a.foundDeltaSat.CAS(-1, int64(a.id)) {
				a.witness.set(current)
			}

			return nil
		}

		split := current.Bisect(idx)
		depth++
		a.numberOfBoxes.Inc()
		a.recordBisect(depth)

		if pushLeft {
			a.stack.push(treiberItem{box: split.Left, depth: depth})
			current = split.Right
		} else {
			a.stack.push(treiberItem{box: split.Right, depth: depth})
			current = split.Left
		}

		pushLeft = !pushLeft
	}
}

func (a workerArgs) recordPrune() {
	a.statsMu.Lock()
	a.stats.NumPrune++
	a.statsMu.Unlock()
}

func (a workerArgs) recordBisect(depth int) {
	a.statsMu.Lock()
	a.stats.NumBisect++

	if depth > a.stats.MaxDepth {
		a.stats.MaxDepth = depth
	}

	a.statsMu.Unlock()
}
