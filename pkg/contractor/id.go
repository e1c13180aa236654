package contractor

import (
	"github.com/dreal-go/dreal/pkg/bitset"
	"github.com/dreal-go/dreal/pkg/box"
)

// idContractor is the identity contractor: it never narrows anything,
// useful as a neutral element when composing contractors generically (an
// empty Seq/Fixpoint collapses to it).
type idContractor struct{}

// Id returns the contractor that always leaves its box unchanged.
func Id() Contractor { return idContractor{} }

func (idContractor) Prune(*box.Box) (Status, error) { return EmptyStatus(), nil }
func (idContractor) Input(box.Box) *bitset.Set      { return bitset.New() }
func (idContractor) String() string                 { return "Id" }
