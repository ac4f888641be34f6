package metrics

import "testing"

func TestPeak(t *testing.T) {
	p := NewPeak("peak_y", 0)
	for i, v := range []float64{0, 2, 5, 3, 1} {
		p.Observe(float64(i), []float64{v})
	}
	if p.Value() != 5 {
		t.Errorf("got %f, want 5", p.Value())
	}

	p.Reset()
	if p.Value() != 0 {
		t.Errorf("got %f after reset, want 0", p.Value())
	}
}

func TestPeakNegativeValues(t *testing.T) {
	// A trace that never rises above its starting value must still report
	// the largest observation, not zero.
	p := NewPeak("peak_y", 0)
	p.Observe(0, []float64{-3})
	p.Observe(1, []float64{-1})
	if p.Value() != -1 {
		t.Errorf("got %f, want -1", p.Value())
	}
}

func TestSteadyValue(t *testing.T) {
	s := NewSteadyValue("steady_y", 1)
	s.Observe(0, []float64{1, 2})
	s.Observe(1, []float64{3, 4})
	if s.Value() != 4 {
		t.Errorf("got %f, want 4", s.Value())
	}
}

func TestRiseTime(t *testing.T) {
	r := NewRiseTime("rise_y", 0, 0.5)
	for i, v := range []float64{0, 0.3, 0.5, 0.7, 0.9} {
		r.Observe(float64(i), []float64{v})
	}
	// The crossing must be strict, so 0.5 at t=2 does not count.
	if r.Value() != 3 {
		t.Errorf("got %f, want 3", r.Value())
	}
}

func TestRiseTimeNeverCrossed(t *testing.T) {
	r := NewRiseTime("rise_y", 0, 10)
	r.Observe(0, []float64{1})
	if r.Value() != -1 {
		t.Errorf("got %f, want -1 when never crossed", r.Value())
	}
}

func TestRiseTimeHoldsFirstCrossing(t *testing.T) {
	r := NewRiseTime("rise_y", 0, 0.5)
	r.Observe(1, []float64{0.8})
	r.Observe(2, []float64{0.9})
	if r.Value() != 1 {
		t.Errorf("got %f, want the first crossing at 1", r.Value())
	}

	r.Reset()
	if r.Value() != -1 {
		t.Errorf("got %f after reset, want -1", r.Value())
	}
}

func TestMetricIgnoresMissingIndex(t *testing.T) {
	p := NewPeak("peak_z", 5)
	p.Observe(0, []float64{1, 2})
	if p.Value() != 0 {
		t.Errorf("got %f, want 0 for out-of-range index", p.Value())
	}
}
