package grn

import "math"

// Series is a concentration or signal trace indexed by discrete time step.
type Series []float64

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}

func (s Series) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

func (s Series) Max() float64 {
	if len(s) == 0 {
		return 0
	}
	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func (s Series) MaxAbs() float64 {
	m := 0.0
	for _, v := range s {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

func (s Series) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Rule maps the current regulator concentration(s) to an instantaneous
// production rate. Implementations must return a non-negative rate for
// non-negative inputs and valid parameters.
type Rule interface {
	Rate(inputs []float64) float64
	NumInputs() int
}

// Configurable exposes rule or gene parameters for runtime adjustment.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Gene is one regulated species. Init defaults to zero concentration.
// Inputs name the regulators read by Rule, in order; each must be a signal
// or a gene added to the circuit earlier.
type Gene struct {
	Name   string
	Rule   Rule
	Decay  float64
	Init   float64
	Inputs []string
}

// Metric accumulates a scalar summary over a run. Observe is called once
// per step, and once more on the final state, with the concentration of
// every gene in circuit order.
type Metric interface {
	Name() string
	Observe(t float64, genes []float64)
	Value() float64
	Reset()
}

type Config struct {
	Dt    float64
	Steps int
	Seed  int64
	// ValidateValues aborts the run when a gene concentration goes NaN/Inf.
	// Off by default: overflow under poor parameter choices is modeling
	// behavior, surfaced in the output series as-is.
	ValidateValues bool
}

func DefaultConfig(steps int) Config {
	return Config{
		Dt:    1.0,
		Steps: steps,
	}
}

// Result holds the output of one simulation run. Each series has length
// Steps+1, including the initial value.
type Result struct {
	Series     map[string]Series
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}
