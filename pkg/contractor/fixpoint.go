package contractor

import (
	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
)

// DefaultMaxIterations bounds Fixpoint's loop so a contractor that keeps
// making vanishingly small progress (floating point noise rather than true
// narrowing) cannot spin forever.
const DefaultMaxIterations = 64

// fixpointContractor reapplies its inner contractor until the box's total
// diameter stops shrinking meaningfully, or MaxIterations is reached.
type fixpointContractor struct {
	inner         Contractor
	maxIterations int
	minProgress   float64
}

// Fixpoint repeatedly applies inner until it stops making progress.
func Fixpoint(inner Contractor) Contractor {
	return &fixpointContractor{inner: inner, maxIterations: DefaultMaxIterations, minProgress: 1e-10}
}

// FixpointWithBudget is Fixpoint with an explicit iteration cap and minimum
// per-iteration progress threshold.
func FixpointWithBudget(inner Contractor, maxIterations int, minProgress float64) Contractor {
	return &fixpointContractor{inner: inner, maxIterations: maxIterations, minProgress: minProgress}
}

func (f *fixpointContractor) Prune(b *box.Box) (Status, error) {
	touched := bitset.New()

	for i := 0; i < f.maxIterations; i++ {
		before := totalDiameter(*b)

		status, err := f.inner.Prune(b)
		if err != nil {
			return Status{Output: touched}, err
		}

		touched.Union(status.Output)

		if b.IsEmpty() {
			break
		}

		if before-totalDiameter(*b) < f.minProgress {
			break
		}
	}

	return Status{Output: touched}, nil
}

func totalDiameter(b box.Box) float64 {
	sum := 0.0
	for i := uint(0); i < b.Size(); i++ {
		sum += b.At(i).Diam()
	}

	return sum
}

func (f *fixpointContractor) Input(b box.Box) *bitset.Set { return f.inner.Input(b) }
func (f *fixpointContractor) String() string              { return "Fixpoint(" + f.inner.String() + ")" }
