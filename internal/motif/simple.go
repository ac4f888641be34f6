package motif

import (
	"fmt"

	"github.com/kmsahu/genesim/internal/grn"
	"github.com/kmsahu/genesim/internal/regulation"
)

// Rule kinds accepted by motifs that support both continuous and
// step-function regulation.
const (
	KindHill  = "hill"
	KindLogic = "logic"
)

// SimpleRegulation is the one-edge circuit X -> Y: a single gene driven by
// an exogenous signal through a Hill or logic rule, with linear decay.
type SimpleRegulation struct {
	Kind    string
	Repress bool
	Beta    float64
	K       float64
	N       float64
	Alpha   float64
	InitY   float64
}

func NewSimpleRegulation() *SimpleRegulation {
	return &SimpleRegulation{
		Kind:  KindLogic,
		Beta:  1.0,
		K:     0.5,
		N:     2.0,
		Alpha: 0.1,
	}
}

func (m *SimpleRegulation) rule() (grn.Rule, error) {
	switch m.Kind {
	case KindHill:
		if m.Repress {
			return regulation.NewHillRepressor(m.Beta, m.K, m.N)
		}
		return regulation.NewHillActivator(m.Beta, m.K, m.N)
	case KindLogic:
		if m.Repress {
			return regulation.NewLogicRepressor(m.Beta, m.K)
		}
		return regulation.NewLogicActivator(m.Beta, m.K)
	default:
		return nil, fmt.Errorf("unknown rule kind: %s", m.Kind)
	}
}

// Build assembles the circuit around the input trace x.
func (m *SimpleRegulation) Build(x grn.Series) (*grn.Circuit, error) {
	rule, err := m.rule()
	if err != nil {
		return nil, err
	}

	c := grn.NewCircuit()
	if err := c.AddSignal("x", x); err != nil {
		return nil, err
	}
	if err := c.AddGene(&grn.Gene{
		Name:   "y",
		Rule:   rule,
		Decay:  m.Alpha,
		Init:   m.InitY,
		Inputs: []string{"x"},
	}); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *SimpleRegulation) GetParams() map[string]float64 {
	return map[string]float64{
		"beta":  m.Beta,
		"k":     m.K,
		"n":     m.N,
		"alpha": m.Alpha,
	}
}

func (m *SimpleRegulation) SetParam(name string, value float64) error {
	switch name {
	case "beta":
		m.Beta = value
	case "k":
		m.K = value
	case "n":
		m.N = value
	case "alpha":
		m.Alpha = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
