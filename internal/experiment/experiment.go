// Package experiment wires configuration, input generation, and motif
// construction into reproducible simulation runs.
package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/kmsahu/genesim/internal/config"
	"github.com/kmsahu/genesim/internal/grn"
	"github.com/kmsahu/genesim/internal/motif"
	"github.com/kmsahu/genesim/internal/signal"
)

type Experiment struct {
	cfg     *config.Config
	m       motif.Motif
	input   grn.Series
	circuit *grn.Circuit
	rng     *rand.Rand
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Setup builds the input pulse (noise layered on top when configured) and
// assembles the motif's circuit with default metrics attached.
func (e *Experiment) Setup(registry *Registry) error {
	m, err := registry.GetMotif(e.cfg.Motif, e.cfg)
	if err != nil {
		return err
	}
	e.m = m

	input, err := signal.Pulse(e.cfg.Pulse.On, e.cfg.Pulse.Off, e.cfg.Steps, e.cfg.Pulse.Value)
	if err != nil {
		return fmt.Errorf("building input pulse: %w", err)
	}
	if e.cfg.NoiseSigma > 0 {
		input = signal.AddGaussianNoise(input, e.cfg.NoiseSigma, e.rng)
	}
	e.input = input

	circuit, err := m.Build(input)
	if err != nil {
		return err
	}
	for _, metric := range registry.DefaultMetrics(e.cfg.Motif, e.cfg) {
		circuit.AddMetric(metric)
	}
	e.circuit = circuit
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*grn.Result, error) {
	if e.circuit == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	simCfg := grn.Config{
		Dt:    e.cfg.Dt,
		Steps: e.cfg.Steps,
		Seed:  e.cfg.Seed,
	}
	return e.circuit.Run(ctx, simCfg)
}

// Input returns the generated regulator trace, for storage alongside the
// gene trajectories.
func (e *Experiment) Input() grn.Series { return e.input }

// Motif returns the configured motif, for parameter inspection.
func (e *Experiment) Motif() motif.Motif { return e.m }

// Circuit returns the assembled circuit, for observers or live stepping.
func (e *Experiment) Circuit() *grn.Circuit { return e.circuit }
