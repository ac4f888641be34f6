package grn

import (
	"context"
	"fmt"
	"math"
)

// Circuit holds the input signals and genes of one regulatory network.
// Genes are evaluated in insertion order each step; AddGene rejects inputs
// that are not yet present, so insertion order is topological by
// construction and a downstream gene always reads upstream values
// committed at the end of the previous step.
type Circuit struct {
	signals map[string]Series
	genes   []*Gene
	byName  map[string]*Gene
	metrics []Metric
}

func NewCircuit() *Circuit {
	return &Circuit{
		signals: make(map[string]Series),
		byName:  make(map[string]*Gene),
		metrics: make([]Metric, 0),
	}
}

// AddSignal registers an exogenous input trace under the given name.
func (c *Circuit) AddSignal(name string, s Series) error {
	if _, ok := c.signals[name]; ok {
		return fmt.Errorf("signal %q already defined", name)
	}
	if _, ok := c.byName[name]; ok {
		return fmt.Errorf("name %q already used by a gene", name)
	}
	c.signals[name] = s
	return nil
}

func (c *Circuit) AddGene(g *Gene) error {
	if g.Name == "" {
		return fmt.Errorf("gene must have a name")
	}
	if _, ok := c.byName[g.Name]; ok {
		return fmt.Errorf("gene %q already defined", g.Name)
	}
	if _, ok := c.signals[g.Name]; ok {
		return fmt.Errorf("name %q already used by a signal", g.Name)
	}
	if g.Rule == nil {
		return fmt.Errorf("gene %q has no rule", g.Name)
	}
	if g.Decay < 0 {
		return fmt.Errorf("%w: gene %q decay %f", ErrInvalidParameter, g.Name, g.Decay)
	}
	if len(g.Inputs) != g.Rule.NumInputs() {
		return fmt.Errorf("gene %q: rule takes %d inputs, got %d",
			g.Name, g.Rule.NumInputs(), len(g.Inputs))
	}
	for _, in := range g.Inputs {
		if _, ok := c.signals[in]; ok {
			continue
		}
		if _, ok := c.byName[in]; ok {
			continue
		}
		return fmt.Errorf("%w: gene %q reads %q", ErrUnknownRegulator, g.Name, in)
	}
	c.genes = append(c.genes, g)
	c.byName[g.Name] = g
	return nil
}

func (c *Circuit) AddMetric(m Metric) { c.metrics = append(c.metrics, m) }

// Genes returns the genes in evaluation order.
func (c *Circuit) Genes() []*Gene { return c.genes }

func (c *Circuit) validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", cfg.Steps)
	}
	for name, s := range c.signals {
		if len(s) < cfg.Steps {
			return fmt.Errorf("%w: signal %q has %d samples, need %d",
				ErrDimensionMismatch, name, len(s), cfg.Steps)
		}
	}
	if len(c.genes) == 0 {
		return fmt.Errorf("circuit has no genes")
	}
	return nil
}

// Run advances every gene for cfg.Steps steps and returns the recorded
// trajectories. Each gene's series has length cfg.Steps+1, starting at its
// initial concentration. Runs are deterministic: identical circuits and
// configs produce bit-identical output.
func (c *Circuit) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := c.validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Series:  make(map[string]Series, len(c.genes)),
		Times:   make([]float64, 0, cfg.Steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range c.metrics {
		m.Reset()
	}

	traj := make(map[string]Series, len(c.genes))
	for _, g := range c.genes {
		s := make(Series, 1, cfg.Steps+1)
		s[0] = g.Init
		traj[g.Name] = s
	}
	result.Times = append(result.Times, 0)

	snapshot := make([]float64, len(c.genes))
	t := 0.0

	for step := 0; step < cfg.Steps; step++ {
		select {
		case <-ctx.Done():
			for name, s := range traj {
				result.Series[name] = s
			}
			return result, ctx.Err()
		default:
		}

		for i, g := range c.genes {
			snapshot[i] = traj[g.Name][step]
		}
		for _, m := range c.metrics {
			m.Observe(t, snapshot)
		}

		for _, g := range c.genes {
			inputs := make([]float64, len(g.Inputs))
			for i, in := range g.Inputs {
				if s, ok := c.signals[in]; ok {
					inputs[i] = s[step]
				} else {
					inputs[i] = traj[in][step]
				}
			}

			cur := traj[g.Name][step]
			next := cur + cfg.Dt*(g.Rule.Rate(inputs)-g.Decay*cur)

			if cfg.ValidateValues && (math.IsNaN(next) || math.IsInf(next, 0)) {
				for name, ts := range traj {
					result.Series[name] = ts
				}
				return result, &StepError{
					Step: step, Time: t, Gene: g.Name, Wrapped: ErrInvalidValue,
				}
			}
			traj[g.Name] = append(traj[g.Name], next)
		}

		t += cfg.Dt
		result.Times = append(result.Times, t)
		result.StepsTaken++
	}

	for i, g := range c.genes {
		snapshot[i] = traj[g.Name][cfg.Steps]
	}
	for _, m := range c.metrics {
		m.Observe(t, snapshot)
	}

	for name, s := range traj {
		result.Series[name] = s
	}
	for _, m := range c.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
