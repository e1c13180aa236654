package contractor

import (
	"math"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/variable"
)

// integerContractor rounds every Integer- and Binary-kinded dimension of
// the box inward to the tightest interval with integer endpoints, emptying
// the box if no integer lies in a dimension's current range.
type integerContractor struct {
	dims []uint
}

// Integer builds the contractor that restricts the given dimensions
// (expected to be Integer or Binary kinded) to integer-valued bounds.
// Continuous dimensions passed in are left untouched.
func Integer(dims []uint) Contractor {
	return &integerContractor{dims: dims}
}

func (c *integerContractor) Prune(b *box.Box) (Status, error) {
	touched := bitset.New()

	for _, i := range c.dims {
		if b.Variable(i).Kind() != variable.Integer && b.Variable(i).Kind() != variable.Binary {
			continue
		}

		iv := b.At(i)
		if iv.IsEmpty() {
			continue
		}

		rounded := roundToIntegers(iv, b.Variable(i).Kind())
		if rounded.IsEmpty() {
			b.SetEmpty()
			return Status{Output: touched}, nil
		}

		if rounded != iv {
			b.SetAt(i, rounded)
			touched.Insert(i)
		}
	}

	return Status{Output: touched}, nil
}

func roundToIntegers(iv interval.Interval, kind variable.Kind) interval.Interval {
	lo, hi := math.Ceil(iv.Lo), math.Floor(iv.Hi)

	if kind == variable.Binary {
		lo = math.Max(lo, 0)
		hi = math.Min(hi, 1)
	}

	if lo > hi {
		return interval.Empty
	}

	return interval.Interval{Lo: lo, Hi: hi}
}

func (c *integerContractor) Input(box.Box) *bitset.Set {
	return bitset.Of(c.dims...)
}

func (c *integerContractor) String() string {
	return "Integer"
}
