package motif

import "github.com/kmsahu/genesim/internal/grn"

// Motif assembles a circuit around an exogenous input trace and exposes
// its parameters for adjustment.
type Motif interface {
	Build(x grn.Series) (*grn.Circuit, error)
	grn.Configurable
}

var (
	_ Motif = (*SimpleRegulation)(nil)
	_ Motif = (*Cascade)(nil)
	_ Motif = (*CoherentFFL)(nil)
	_ Motif = (*IncoherentFFL)(nil)
)
