// Package signal builds input traces for circuit simulations: rectangular
// pulses, constants, superpositions, and seeded Gaussian noise.
package signal

import (
	"fmt"
	"math/rand"

	"github.com/kmsahu/genesim/internal/grn"
)

// Pulse returns a series of the given length that holds value on the
// half-open window [on, off) and zero elsewhere.
func Pulse(on, off, steps int, value float64) (grn.Series, error) {
	if on >= off {
		return nil, fmt.Errorf("%w: on=%d off=%d", grn.ErrInvalidInterval, on, off)
	}
	if on < 0 {
		return nil, fmt.Errorf("%w: on=%d is negative", grn.ErrInvalidInterval, on)
	}
	if off > steps {
		return nil, fmt.Errorf("%w: off=%d exceeds %d steps", grn.ErrInvalidInterval, off, steps)
	}
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps=%d", grn.ErrInvalidParameter, steps)
	}

	s := make(grn.Series, steps)
	for i := on; i < off; i++ {
		s[i] = value
	}
	return s, nil
}

// Constant returns a series holding value at every step.
func Constant(steps int, value float64) grn.Series {
	s := make(grn.Series, steps)
	for i := range s {
		s[i] = value
	}
	return s
}

// Superimpose adds two series element-wise. Lengths must match.
func Superimpose(a, b grn.Series) (grn.Series, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", grn.ErrDimensionMismatch, len(a), len(b))
	}
	out := make(grn.Series, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out, nil
}

// AddGaussianNoise layers mean-zero Gaussian noise of the given standard
// deviation over a copy of s. No clamping: noisy values may go negative or
// exceed nominal thresholds, which exercises downstream threshold logic.
func AddGaussianNoise(s grn.Series, sigma float64, rng *rand.Rand) grn.Series {
	out := s.Clone()
	if sigma == 0 {
		return out
	}
	for i := range out {
		out[i] += rng.NormFloat64() * sigma
	}
	return out
}
