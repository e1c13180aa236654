package bitset

import (
	"testing"

	"github.com/dreal-go/dreal/pkg/util/assert"
)

func TestInsertContains(t *testing.T) {
	s := New()
	s.Insert(3)
	s.Insert(7)

	assert.Equal(t, true, s.Contains(3))
	assert.Equal(t, true, s.Contains(7))
	assert.Equal(t, false, s.Contains(4))
}

func TestUnion(t *testing.T) {
	a := Of(1, 2)
	b := Of(2, 3)

	changed := a.Union(b)

	assert.Equal(t, true, changed)
	assert.Equal(t, []uint{1, 2, 3}, a.Elements())

	changed = a.Union(b)
	assert.Equal(t, false, changed)
}

func TestIntersectsAndWorklist(t *testing.T) {
	a := Of(1, 2)
	b := Of(5, 6)
	c := Of(2, 9)

	assert.Equal(t, false, a.Intersects(b))
	assert.Equal(t, true, a.Intersects(c))
}

func TestIsEmpty(t *testing.T) {
	s := New()
	assert.Equal(t, true, s.IsEmpty())

	s.Insert(0)
	assert.Equal(t, false, s.IsEmpty())
}

func TestCloneIsIndependent(t *testing.T) {
	a := Of(1)
	b := a.Clone()
	b.Insert(2)

	assert.Equal(t, false, a.Contains(2))
	assert.Equal(t, true, b.Contains(2))
}
