package contractor

import (
	"errors"
	"strings"
	"testing"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/util/assert"
	"github.com/dreal-go/dreal/pkg/variable"
)

func newTestBox(lo, hi float64) (box.Box, variable.Variable) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(lo, hi)})

	return b, x
}

// fakeContractor intersects dimension 0 with a fixed interval and reports
// it as touched, for exercising the combinators without depending on a real
// narrowing rule.
type fakeContractor struct {
	set interval.Interval
	err error
}

func (f fakeContractor) Prune(b *box.Box) (Status, error) {
	b.SetAt(0, b.At(0).Intersect(f.set))

	out := bitset.Of(0)
	if b.IsEmpty() {
		return Status{Output: out}, f.err
	}

	return Status{Output: out}, f.err
}

func (f fakeContractor) Input(box.Box) *bitset.Set { return bitset.Of(0) }
func (f fakeContractor) String() string            { return "fake" }

func TestIdLeavesBoxUnchanged(t *testing.T) {
	b, _ := newTestBox(-1, 1)

	status, err := Id().Prune(&b)

	assert.Equal(t, nil, err)
	assert.True(t, status.Output.IsEmpty())
	assert.Equal(t, interval.New(-1, 1), b.At(0))
}

func TestSeqRunsChildrenInOrder(t *testing.T) {
	b, _ := newTestBox(-10, 10)

	c := Seq(
		fakeContractor{set: interval.New(-5, 5)},
		fakeContractor{set: interval.New(0, 2)},
	)

	status, err := c.Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(0, 2), b.At(0))
	assert.True(t, status.Output.Contains(0))
}

func TestSeqShortCircuitsOnEmptyBox(t *testing.T) {
	b, _ := newTestBox(-10, 10)

	c := Seq(
		fakeContractor{set: interval.New(5, 10)},
		fakeContractor{set: interval.New(-10, -5)},
	)

	_, err := c.Prune(&b)

	assert.Equal(t, nil, err)
	assert.True(t, b.IsEmpty())
}

func TestSeqAggregatesErrors(t *testing.T) {
	b, _ := newTestBox(-10, 10)
	boom := errors.New("boom")

	c := Seq(
		fakeContractor{set: interval.New(-10, 10), err: boom},
		fakeContractor{set: interval.New(-10, 10)},
	)

	_, err := c.Prune(&b)

	assert.True(t, err != nil)
	assert.True(t, strings.Contains(err.Error(), boom.Error()))
}

// shrinkingContractor halves dimension 0's upper bound every call, to give
// Fixpoint something that keeps making progress until it converges.
type shrinkingContractor struct{}

func (shrinkingContractor) Prune(b *box.Box) (Status, error) {
	iv := b.At(0)
	mid := iv.Lo + iv.Diam()/2
	b.SetAt(0, interval.New(iv.Lo, mid))

	return Status{Output: bitset.Of(0)}, nil
}

func (shrinkingContractor) Input(box.Box) *bitset.Set { return bitset.Of(0) }
func (shrinkingContractor) String() string            { return "shrink" }

func TestFixpointStopsWhenProgressFallsBelowThreshold(t *testing.T) {
	b, _ := newTestBox(0, 1)

	_, err := FixpointWithBudget(shrinkingContractor{}, 1000, 1e-6).Prune(&b)

	assert.Equal(t, nil, err)
	assert.True(t, b.At(0).Diam() < 1e-5)
}

func TestFixpointRespectsIterationCap(t *testing.T) {
	b, _ := newTestBox(0, 1)

	_, err := FixpointWithBudget(shrinkingContractor{}, 3, 0).Prune(&b)

	assert.Equal(t, nil, err)
	// Three halvings of [0,1]: 0.5, 0.25, 0.125.
	assert.Equal(t, interval.New(0, 0.125), b.At(0))
}

func TestJoinHullsChildResults(t *testing.T) {
	b, _ := newTestBox(-10, 10)

	c := Join(
		fakeContractor{set: interval.New(-5, -1)},
		fakeContractor{set: interval.New(1, 5)},
	)

	_, err := c.Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(-5, 5), b.At(0))
}
