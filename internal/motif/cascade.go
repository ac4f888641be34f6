package motif

import (
	"fmt"

	"github.com/kmsahu/genesim/internal/grn"
	"github.com/kmsahu/genesim/internal/regulation"
)

// Cascade is the threshold chain X -> Y -> Z: Y accumulates while X holds
// above Kxy, and Z turns on only once Y has crossed Kyz. The chain
// introduces a delay on both edges of the input pulse.
type Cascade struct {
	BetaY  float64
	Kxy    float64
	AlphaY float64
	BetaZ  float64
	Kyz    float64
	AlphaZ float64
}

func NewCascade() *Cascade {
	return &Cascade{
		BetaY:  1.0,
		Kxy:    0.5,
		AlphaY: 0.1,
		BetaZ:  1.0,
		Kyz:    5.0,
		AlphaZ: 0.1,
	}
}

func (m *Cascade) Build(x grn.Series) (*grn.Circuit, error) {
	yRule, err := regulation.NewLogicActivator(m.BetaY, m.Kxy)
	if err != nil {
		return nil, err
	}
	zRule, err := regulation.NewLogicActivator(m.BetaZ, m.Kyz)
	if err != nil {
		return nil, err
	}

	c := grn.NewCircuit()
	if err := c.AddSignal("x", x); err != nil {
		return nil, err
	}
	if err := c.AddGene(&grn.Gene{
		Name: "y", Rule: yRule, Decay: m.AlphaY, Inputs: []string{"x"},
	}); err != nil {
		return nil, err
	}
	if err := c.AddGene(&grn.Gene{
		Name: "z", Rule: zRule, Decay: m.AlphaZ, Inputs: []string{"y"},
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *Cascade) GetParams() map[string]float64 {
	return map[string]float64{
		"beta_y":  m.BetaY,
		"k_xy":    m.Kxy,
		"alpha_y": m.AlphaY,
		"beta_z":  m.BetaZ,
		"k_yz":    m.Kyz,
		"alpha_z": m.AlphaZ,
	}
}

func (m *Cascade) SetParam(name string, value float64) error {
	switch name {
	case "beta_y":
		m.BetaY = value
	case "k_xy":
		m.Kxy = value
	case "alpha_y":
		m.AlphaY = value
	case "beta_z":
		m.BetaZ = value
	case "k_yz":
		m.Kyz = value
	case "alpha_z":
		m.AlphaZ = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
