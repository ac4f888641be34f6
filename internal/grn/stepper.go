package grn

// Stepper advances a circuit one step at a time, for live views that need
// to interleave stepping with rendering and parameter changes. Unlike
// Run, a Stepper cycles its input signals once they are exhausted, so it
// can run indefinitely.
type Stepper struct {
	c      *Circuit
	cfg    Config
	step   int
	t      float64
	values map[string]float64
}

func (c *Circuit) NewStepper(cfg Config) (*Stepper, error) {
	if err := c.validateConfig(cfg); err != nil {
		return nil, err
	}
	s := &Stepper{
		c:      c,
		cfg:    cfg,
		values: make(map[string]float64, len(c.genes)),
	}
	for _, g := range c.genes {
		s.values[g.Name] = g.Init
	}
	return s, nil
}

// Step advances every gene by one Euler step.
func (s *Stepper) Step() {
	idx := s.step % s.cfg.Steps

	next := make(map[string]float64, len(s.c.genes))
	for _, g := range s.c.genes {
		inputs := make([]float64, len(g.Inputs))
		for i, in := range g.Inputs {
			if sig, ok := s.c.signals[in]; ok {
				inputs[i] = sig[idx]
			} else {
				inputs[i] = s.values[in]
			}
		}
		cur := s.values[g.Name]
		next[g.Name] = cur + s.cfg.Dt*(g.Rule.Rate(inputs)-g.Decay*cur)
	}

	for name, v := range next {
		s.values[name] = v
	}
	s.step++
	s.t += s.cfg.Dt
}

// Value returns the current concentration of the named gene.
func (s *Stepper) Value(name string) float64 { return s.values[name] }

// Input returns the signal sample the next step will read.
func (s *Stepper) Input(name string) float64 {
	sig, ok := s.c.signals[name]
	if !ok {
		return 0
	}
	return sig[s.step%s.cfg.Steps]
}

func (s *Stepper) Time() float64 { return s.t }

func (s *Stepper) Reset() {
	s.step = 0
	s.t = 0
	for _, g := range s.c.genes {
		s.values[g.Name] = g.Init
	}
}
