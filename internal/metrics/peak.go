// Package metrics provides per-run summary metrics observed step by step
// over the gene concentration vector.
package metrics

import (
	"github.com/kmsahu/genesim/internal/grn"
)

// Peak tracks the maximum concentration reached by one gene.
type Peak struct {
	name string
	idx  int
	max  float64
	seen bool
}

// NewPeak observes the gene at the given circuit index.
func NewPeak(name string, idx int) *Peak {
	return &Peak{name: name, idx: idx}
}

func (p *Peak) Name() string { return p.name }

func (p *Peak) Observe(t float64, genes []float64) {
	if p.idx >= len(genes) {
		return
	}
	v := genes[p.idx]
	if !p.seen || v > p.max {
		p.max = v
		p.seen = true
	}
}

func (p *Peak) Value() float64 {
	return p.max
}

func (p *Peak) Reset() {
	p.max = 0
	p.seen = false
}

var _ grn.Metric = (*Peak)(nil)
