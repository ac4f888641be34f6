package regulation

import (
	"fmt"

	"github.com/kmsahu/genesim/internal/grn"
)

func checkGateParams(beta, kx, ky float64) error {
	if kx <= 0 || ky <= 0 {
		return fmt.Errorf("%w: thresholds must be positive, got Kx=%f Ky=%f",
			grn.ErrInvalidParameter, kx, ky)
	}
	if beta < 0 {
		return fmt.Errorf("%w: rate beta must be non-negative, got %f", grn.ErrInvalidParameter, beta)
	}
	return nil
}

// ANDGate fires at rate beta only when both regulators exceed their
// thresholds.
type ANDGate struct {
	Beta float64
	Kx   float64
	Ky   float64
}

func NewANDGate(beta, kx, ky float64) (*ANDGate, error) {
	if err := checkGateParams(beta, kx, ky); err != nil {
		return nil, err
	}
	return &ANDGate{Beta: beta, Kx: kx, Ky: ky}, nil
}

func (g *ANDGate) NumInputs() int { return 2 }

func (g *ANDGate) Rate(inputs []float64) float64 {
	if inputs[0] > g.Kx && inputs[1] > g.Ky {
		return g.Beta
	}
	return 0
}

// ORGate fires at rate beta when either regulator exceeds its threshold.
type ORGate struct {
	Beta float64
	Kx   float64
	Ky   float64
}

func NewORGate(beta, kx, ky float64) (*ORGate, error) {
	if err := checkGateParams(beta, kx, ky); err != nil {
		return nil, err
	}
	return &ORGate{Beta: beta, Kx: kx, Ky: ky}, nil
}

func (g *ORGate) NumInputs() int { return 2 }

func (g *ORGate) Rate(inputs []float64) float64 {
	if inputs[0] > g.Kx || inputs[1] > g.Ky {
		return g.Beta
	}
	return 0
}

// SUMGate adds each regulator's independently gated contribution:
// betaX*[X>Kx] + betaY*[Y>Ky].
type SUMGate struct {
	BetaX float64
	Kx    float64
	BetaY float64
	Ky    float64
}

func NewSUMGate(betaX, kx, betaY, ky float64) (*SUMGate, error) {
	if err := checkGateParams(betaX, kx, ky); err != nil {
		return nil, err
	}
	if betaY < 0 {
		return nil, fmt.Errorf("%w: rate betaY must be non-negative, got %f",
			grn.ErrInvalidParameter, betaY)
	}
	return &SUMGate{BetaX: betaX, Kx: kx, BetaY: betaY, Ky: ky}, nil
}

func (g *SUMGate) NumInputs() int { return 2 }

func (g *SUMGate) Rate(inputs []float64) float64 {
	rate := 0.0
	if inputs[0] > g.Kx {
		rate += g.BetaX
	}
	if inputs[1] > g.Ky {
		rate += g.BetaY
	}
	return rate
}

// PhaseRule implements X AND NOT Y with a leaky alternate rate, the input
// function of an incoherent feed-forward loop. With X above its threshold
// the gene produces at Beta1 until the repressor Y accumulates past Ky,
// then drops to the leaky rate Beta2. Repression engages non-strictly:
// Y >= Ky selects Beta2. Without X there is no production.
type PhaseRule struct {
	Beta1 float64
	Beta2 float64
	Kx    float64
	Ky    float64
}

func NewPhaseRule(beta1, beta2, kx, ky float64) (*PhaseRule, error) {
	if kx <= 0 || ky <= 0 {
		return nil, fmt.Errorf("%w: thresholds must be positive, got Kx=%f Ky=%f",
			grn.ErrInvalidParameter, kx, ky)
	}
	if beta1 < 0 || beta2 < 0 {
		return nil, fmt.Errorf("%w: rates must be non-negative, got beta1=%f beta2=%f",
			grn.ErrInvalidParameter, beta1, beta2)
	}
	return &PhaseRule{Beta1: beta1, Beta2: beta2, Kx: kx, Ky: ky}, nil
}

func (p *PhaseRule) NumInputs() int { return 2 }

func (p *PhaseRule) Rate(inputs []float64) float64 {
	x, y := inputs[0], inputs[1]
	if x <= p.Kx {
		return 0
	}
	if y < p.Ky {
		return p.Beta1
	}
	return p.Beta2
}
