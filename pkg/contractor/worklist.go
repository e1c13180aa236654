package contractor

import (
	"strings"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"go.uber.org/multierr"
)

// worklistContractor schedules a fixed set of contractors by data
// dependency rather than running every one of them every round: after a
// contractor prunes and reports which dimensions it touched (Output), only
// the other contractors whose Input overlaps those dimensions are
// re-enqueued. This converges to the same fixpoint as repeatedly running
// Fixpoint(Seq(children...)) but does far less redundant work once most
// constraints have stopped interacting.
type worklistContractor struct {
	children  []Contractor
	inputs    []*bitset.Set
	maxPasses int
}

// Worklist builds the dependency-scheduled propagation queue over children.
// Each child's declared Input (evaluated once against the starting box) is
// cached up front; children are assumed not to change which dimensions
// they read as the box narrows, only how wide those dimensions are.
func Worklist(b box.Box, children ...Contractor) Contractor {
	inputs := make([]*bitset.Set, len(children))
	for i, c := range children {
		inputs[i] = c.Input(b)
	}

	return &worklistContractor{children: children, inputs: inputs, maxPasses: DefaultMaxIterations * len(children)}
}

func (w *worklistContractor) Prune(b *box.Box) (Status, error) {
	if len(w.children) == 0 {
		return EmptyStatus(), nil
	}

	queue := make([]int, len(w.children))
	queued := make([]bool, len(w.children))

	for i := range w.children {
		queue[i] = i
		queued[i] = true
	}

	touched := bitset.New()
	var errs error
	passes := 0

	for len(queue) > 0 && passes < w.maxPasses {
		passes++

		i := queue[0]
		queue = queue[1:]
		queued[i] = false

		status, err := w.children[i].Prune(b)
		errs = multierr.Append(errs, err)
		touched.Union(status.Output)

		if b.IsEmpty() {
			break
		}

		if status.Output.IsEmpty() {
			continue
		}

		for j := range w.children {
			if j == i || queued[j] {
				continue
			}

			if w.inputs[j].Intersects(status.Output) {
				queue = append(queue, j)
				queued[j] = true
			}
		}
	}

	return Status{Output: touched}, errs
}

func (w *worklistContractor) Input(box.Box) *bitset.Set {
	set := bitset.New()
	for _, in := range w.inputs {
		set.Union(in)
	}

	return set
}

func (w *worklistContractor) String() string {
	parts := make([]string, len(w.children))
	for i, c := range w.children {
		parts[i] = c.String()
	}

	return "Worklist(" + strings.Join(parts, ", ") + ")"
}
