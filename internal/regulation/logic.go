package regulation

import (
	"fmt"

	"github.com/kmsahu/genesim/internal/grn"
)

func checkLogicParams(beta, k float64) error {
	if k <= 0 {
		return fmt.Errorf("%w: threshold K must be positive, got %f", grn.ErrInvalidParameter, k)
	}
	if beta < 0 {
		return fmt.Errorf("%w: rate beta must be non-negative, got %f", grn.ErrInvalidParameter, beta)
	}
	return nil
}

// LogicActivator is the step-function limit of the Hill activator:
// full rate beta when X > K, zero otherwise.
type LogicActivator struct {
	Beta float64
	K    float64
}

func NewLogicActivator(beta, k float64) (*LogicActivator, error) {
	if err := checkLogicParams(beta, k); err != nil {
		return nil, err
	}
	return &LogicActivator{Beta: beta, K: k}, nil
}

func (l *LogicActivator) NumInputs() int { return 1 }

func (l *LogicActivator) Rate(inputs []float64) float64 {
	if inputs[0] > l.K {
		return l.Beta
	}
	return 0
}

func (l *LogicActivator) GetParams() map[string]float64 {
	return map[string]float64{"beta": l.Beta, "k": l.K}
}

func (l *LogicActivator) SetParam(name string, value float64) error {
	switch name {
	case "beta":
		l.Beta = value
	case "k":
		l.K = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// LogicRepressor is the step-function limit of the Hill repressor:
// full rate beta when X < K, zero otherwise.
type LogicRepressor struct {
	Beta float64
	K    float64
}

func NewLogicRepressor(beta, k float64) (*LogicRepressor, error) {
	if err := checkLogicParams(beta, k); err != nil {
		return nil, err
	}
	return &LogicRepressor{Beta: beta, K: k}, nil
}

func (l *LogicRepressor) NumInputs() int { return 1 }

func (l *LogicRepressor) Rate(inputs []float64) float64 {
	if inputs[0] < l.K {
		return l.Beta
	}
	return 0
}

func (l *LogicRepressor) GetParams() map[string]float64 {
	return map[string]float64{"beta": l.Beta, "k": l.K}
}

func (l *LogicRepressor) SetParam(name string, value float64) error {
	switch name {
	case "beta":
		l.Beta = value
	case "k":
		l.K = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
