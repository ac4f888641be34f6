package metrics

import "github.com/kmsahu/genesim/internal/grn"

// SteadyValue reports the last observed concentration of one gene.
type SteadyValue struct {
	name string
	idx  int
	last float64
}

func NewSteadyValue(name string, idx int) *SteadyValue {
	return &SteadyValue{name: name, idx: idx}
}

func (s *SteadyValue) Name() string { return s.name }

func (s *SteadyValue) Observe(t float64, genes []float64) {
	if s.idx < len(genes) {
		s.last = genes[s.idx]
	}
}

func (s *SteadyValue) Value() float64 {
	return s.last
}

func (s *SteadyValue) Reset() {
	s.last = 0
}

var _ grn.Metric = (*SteadyValue)(nil)
