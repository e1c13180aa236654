package contractor

import (
	"strings"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"go.uber.org/multierr"
)

// joinContractor runs each child on its own clone of the input box and
// replaces the box with the hull of every child's result, the sound way to
// combine contractors that each only know how to prune part of a
// disjunction (neither branch alone may be excluded, but their union may
// still be narrower than the original box).
type joinContractor struct {
	children []Contractor
}

// Join composes contractors whose results should be hull-merged rather
// than threaded sequentially.
func Join(children ...Contractor) Contractor {
	if len(children) == 0 {
		return Id()
	}

	if len(children) == 1 {
		return children[0]
	}

	return &joinContractor{children: children}
}

func (j *joinContractor) Prune(b *box.Box) (Status, error) {
	touched := bitset.New()
	var errs error
	var hull box.Box
	first := true

	for _, c := range j.children {
		branch := b.Clone()

		status, err := c.Prune(&branch)
		errs = multierr.Append(errs, err)
		touched.Union(status.Output)

		if first {
			hull = branch
			first = false

			continue
		}

		hull = hull.Hull(branch)
	}

	*b = hull

	return Status{Output: touched}, errs
}

func (j *joinContractor) Input(b box.Box) *bitset.Set {
	in := bitset.New()
	for _, c := range j.children {
		in.Union(c.Input(b))
	}

	return in
}

func (j *joinContractor) String() string {
	parts := make([]string, len(j.children))
	for i, c := range j.children {
		parts[i] = c.String()
	}

	return "Join(" + strings.Join(parts, ", ") + ")"
}
