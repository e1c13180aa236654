package variable

import (
	"testing"

	"github.com/dreal-go/dreal/pkg/util/assert"
)

func TestNewAssignsDistinctIds(t *testing.T) {
	x := New("x", Continuous)
	y := New("y", Continuous)

	if x.Equals(y) {
		t.Fatalf("expected distinct variables to have distinct ids")
	}

	assert.Equal(t, false, x.Id() == Dummy)
	assert.Equal(t, false, y.Id() == Dummy)
}

func TestDummyVarIsDummy(t *testing.T) {
	d := DummyVar()

	if !d.IsDummy() {
		t.Fatalf("expected DummyVar() to be the dummy variable")
	}
}

func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Continuous, "Continuous"},
		{Integer, "Integer"},
		{Binary, "Binary"},
		{Boolean, "Boolean"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.kind.String())
	}
}
