package motif

import (
	"fmt"

	"github.com/kmsahu/genesim/internal/grn"
	"github.com/kmsahu/genesim/internal/regulation"
)

// CoherentFFL is the type-1 coherent feed-forward loop: X activates Y, and
// Z is AND-gated on both X and Y. Z turns on only after Y has accumulated
// past Kyz, delaying the response to an X pulse by
// Ton = (1/alpha_y) * ln(1/(1 - Kyz/Yst)); Z turns off without delay when
// X drops.
type CoherentFFL struct {
	BetaY  float64
	Kxy    float64
	AlphaY float64
	BetaZ  float64
	Kxz    float64
	Kyz    float64
	AlphaZ float64
}

func NewCoherentFFL() *CoherentFFL {
	return &CoherentFFL{
		BetaY:  1.0,
		Kxy:    0.5,
		AlphaY: 0.1,
		BetaZ:  1.0,
		Kxz:    0.5,
		Kyz:    5.0,
		AlphaZ: 0.1,
	}
}

func (m *CoherentFFL) Build(x grn.Series) (*grn.Circuit, error) {
	yRule, err := regulation.NewLogicActivator(m.BetaY, m.Kxy)
	if err != nil {
		return nil, err
	}
	zRule, err := regulation.NewANDGate(m.BetaZ, m.Kxz, m.Kyz)
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
		Name: "z", Rule: zRule, Decay: m.AlphaZ, Inputs: []string{"x", "y"},
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *CoherentFFL) GetParams() map[string]float64 {
	return map[string]float64{
		"beta_y":  m.BetaY,
		"k_xy":    m.Kxy,
		"alpha_y": m.AlphaY,
		"beta_z":  m.BetaZ,
		"k_xz":    m.Kxz,
		"k_yz":    m.Kyz,
		"alpha_z": m.AlphaZ,
	}
}

func (m *CoherentFFL) SetParam(name string, value float64) error {
	switch name {
	case "beta_y":
		m.BetaY = value
	case "k_xy":
		m.Kxy = value
	case "alpha_y":
		m.AlphaY = value
	case "beta_z":
		m.BetaZ = value
	case "k_xz":
		m.Kxz = value
	case "k_yz":
		m.Kyz = value
	case "alpha_z":
		m.AlphaZ = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// IncoherentFFL is the type-1 incoherent feed-forward loop: X activates
// both Y and Z, while Y represses Z. Z rises at Beta1 as soon as X
// appears, then drops to the leaky rate Beta2 once Y crosses Kyz, turning
// a step input into a pulse of Z.
type IncoherentFFL struct {
	BetaY  float64
	Kxy    float64
	AlphaY float64
	Beta1  float64
	Beta2  float64
	Kxz    float64
	Kyz    float64
	AlphaZ float64
}

func NewIncoherentFFL() *IncoherentFFL {
	return &IncoherentFFL{
		BetaY:  1.0,
		Kxy:    0.5,
		AlphaY: 0.1,
		Beta1:  1.0,
		Beta2:  0.1,
		Kxz:    0.5,
		Kyz:    5.0,
		AlphaZ: 0.1,
	}
}

func (m *IncoherentFFL) Build(x grn.Series) (*grn.Circuit, error) {
	yRule, err := regulation.NewLogicActivator(m.BetaY, m.Kxy)
	if err != nil {
		return nil, err
	}
	zRule, err := regulation.NewPhaseRule(m.Beta1, m.Beta2, m.Kxz, m.Kyz)
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
		Name: "z", Rule: zRule, Decay: m.AlphaZ, Inputs: []string{"x", "y"},
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *IncoherentFFL) GetParams() map[string]float64 {
	return map[string]float64{
		"beta_y":  m.BetaY,
		"k_xy":    m.Kxy,
		"alpha_y": m.AlphaY,
		"beta_1":  m.Beta1,
		"beta_2":  m.Beta2,
		"k_xz":    m.Kxz,
		"k_yz":    m.Kyz,
		"alpha_z": m.AlphaZ,
	}
}

func (m *IncoherentFFL) SetParam(name string, value float64) error {
	switch name {
	case "beta_y":
		m.BetaY = value
	case "k_xy":
		m.Kxy = value
	case "alpha_y":
		m.AlphaY = value
	case "beta_1":
		m.Beta1 = value
	case "beta_2":
		m.Beta2 = value
	case "k_xz":
		m.Kxz = value
	case "k_yz":
		m.Kyz = value
	case "alpha_z":
		m.AlphaZ = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
