package contractor

import (
	"testing"

	"github.com/dreal-go/dreal/pkg/box"
	"github.com/dreal-go/dreal/pkg/interval"
	"github.com/dreal-go/dreal/pkg/util/assert"
	"github.com/dreal-go/dreal/pkg/variable"
)

func TestIntegerRoundsToIntegerBounds(t *testing.T) {
	n := variable.New("n", variable.Integer)
	b := box.New([]variable.Variable{n}, []interval.Interval{interval.New(0.2, 4.7)})

	_, err := Integer([]uint{0}).Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(1, 4), b.Get(n))
}

func TestIntegerClampsBinaryToZeroOne(t *testing.T) {
	d := variable.New("d", variable.Binary)
	b := box.New([]variable.Variable{d}, []interval.Interval{interval.New(-3, 5)})

	_, err := Integer([]uint{0}).Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(0, 1), b.Get(d))
}

func TestIntegerEmptiesWhenNoIntegerInRange(t *testing.T) {
	n := variable.New("n", variable.Integer)
	b := box.New([]variable.Variable{n}, []interval.Interval{interval.New(0.1, 0.9)})

	_, err := Integer([]uint{0}).Prune(&b)

	assert.Equal(t, nil, err)
	assert.True(t, b.IsEmpty())
}

func TestIntegerLeavesContinuousDimensionsUntouched(t *testing.T) {
	x := variable.New("x", variable.Continuous)
	b := box.New([]variable.Variable{x}, []interval.Interval{interval.New(0.2, 4.7)})

	_, err := Integer([]uint{0}).Prune(&b)

	assert.Equal(t, nil, err)
	assert.Equal(t, interval.New(0.2, 4.7), b.Get(x))
}
