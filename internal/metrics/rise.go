package metrics

import "github.com/kmsahu/genesim/internal/grn"

// RiseTime records the simulated time at which one gene first rises
// strictly above a threshold. Value is -1 until the crossing happens.
type RiseTime struct {
	name      string
	idx       int
	threshold float64
	crossedAt float64
	crossed   bool
}

func NewRiseTime(name string, idx int, threshold float64) *RiseTime {
	return &RiseTime{name: name, idx: idx, threshold: threshold, crossedAt: -1}
}

func (r *RiseTime) Name() string { return r.name }

func (r *RiseTime) Observe(t float64, genes []float64) {
	if r.crossed || r.idx >= len(genes) {
		return
	}
	if genes[r.idx] > r.threshold {
		r.crossedAt = t
		r.crossed = true
	}
}

func (r *RiseTime) Value() float64 {
	return r.crossedAt
}

func (r *RiseTime) Reset() {
	r.crossedAt = -1
	r.crossed = false
}

var _ grn.Metric = (*RiseTime)(nil)
