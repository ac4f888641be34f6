package regulation

import (
	"fmt"
	"math"

	"github.com/kmsahu/genesim/internal/grn"
)

func checkHillParams(beta, k, n float64) error {
	if k <= 0 {
		return fmt.Errorf("%w: threshold K must be positive, got %f", grn.ErrInvalidParameter, k)
	}
	if beta < 0 {
		return fmt.Errorf("%w: rate beta must be non-negative, got %f", grn.ErrInvalidParameter, beta)
	}
	if n < 1 {
		return fmt.Errorf("%w: Hill coefficient n must be >= 1, got %f", grn.ErrInvalidParameter, n)
	}
	return nil
}

// HillActivator computes beta*X^n / (K^n + X^n): monotonically increasing
// in X, saturating at beta, half-maximal at X = K.
type HillActivator struct {
	Beta float64
	K    float64
	N    float64
}

func NewHillActivator(beta, k, n float64) (*HillActivator, error) {
	if err := checkHillParams(beta, k, n); err != nil {
		return nil, err
	}
	return &HillActivator{Beta: beta, K: k, N: n}, nil
}

func (h *HillActivator) NumInputs() int { return 1 }

func (h *HillActivator) Rate(inputs []float64) float64 {
	x := inputs[0]
	if x <= 0 {
		return 0
	}
	xn := math.Pow(x, h.N)
	return h.Beta * xn / (math.Pow(h.K, h.N) + xn)
}

func (h *HillActivator) GetParams() map[string]float64 {
	return map[string]float64{"beta": h.Beta, "k": h.K, "n": h.N}
}

func (h *HillActivator) SetParam(name string, value float64) error {
	switch name {
	case "beta":
		h.Beta = value
	case "k":
		h.K = value
	case "n":
		h.N = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// HillRepressor computes beta / (1 + (X/K)^n): monotonically decreasing in
// X, equal to beta/2 at X = K.
type HillRepressor struct {
	Beta float64
	K    float64
	N    float64
}

func NewHillRepressor(beta, k, n float64) (*HillRepressor, error) {
	if err := checkHillParams(beta, k, n); err != nil {
		return nil, err
	}
	return &HillRepressor{Beta: beta, K: k, N: n}, nil
}

func (h *HillRepressor) NumInputs() int { return 1 }

func (h *HillRepressor) Rate(inputs []float64) float64 {
	x := inputs[0]
	if x <= 0 {
		return h.Beta
	}
	return h.Beta / (1 + math.Pow(x/h.K, h.N))
}

func (h *HillRepressor) GetParams() map[string]float64 {
	return map[string]float64{"beta": h.Beta, "k": h.K, "n": h.N}
}

func (h *HillRepressor) SetParam(name string, value float64) error {
	switch name {
	case "beta":
		h.Beta = value
	case "k":
		h.K = value
	case "n":
		h.N = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
