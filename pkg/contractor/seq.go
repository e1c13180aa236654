package contractor

import (
	"strings"

	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
	"go.uber.org/multierr"
)

// seqContractor runs its children in order, short-circuiting as soon as the
// box becomes empty.
type seqContractor struct {
	children []Contractor
}

// Seq composes contractors to run one after another, left to right.
func Seq(children ...Contractor) Contractor {
	if len(children) == 0 {
		return Id()
	}

	if len(children) == 1 {
		return children[0]
	}

	return &seqContractor{children: children}
}

func (s *seqContractor) Prune(b *box.Box) (Status, error) {
	touched := bitset.New()
	var errs error

	for _, c := range s.children {
		status, err := c.Prune(b)
		errs = multierr.Append(errs, err)
		touched.Union(status.Output)

		if b.IsEmpty() {
			break
		}
	}

	return Status{Output: touched}, errs
}

func (s *seqContractor) Input(b box.Box) *bitset.Set {
	in := bitset.New()
	for _, c := range s.children {
		in.Union(c.Input(b))
	}

	return in
}

func (s *seqContractor) String() string {
	parts := make([]string, len(s.children))
	for i, c := range s.children {
		parts[i] = c.String()
	}

	return "Seq(" + strings.Join(parts, ", ") + ")"
}
