// Package analysis provides closed-form predictions and trace measurements
// for simple regulation dynamics, consumed by the analyze command.
package analysis

import (
	"fmt"
	"math"

	"github.com/kmsahu/genesim/internal/grn"
)

// SteadyState returns beta/alpha, the concentration at which production
// balances decay under constant full production.
func SteadyState(beta, alpha float64) (float64, error) {
	if alpha <= 0 {
		return 0, fmt.Errorf("%w: decay alpha must be positive, got %f",
			grn.ErrInvalidParameter, alpha)
	}
	if beta < 0 {
		return 0, fmt.Errorf("%w: rate beta must be non-negative, got %f",
			grn.ErrInvalidParameter, beta)
	}
	return beta / alpha, nil
}

// ResponseTime returns ln2/alpha, the time to reach half the steady-state
// concentration from zero under constant full production.
func ResponseTime(alpha float64) (float64, error) {
	if alpha <= 0 {
		return 0, fmt.Errorf("%w: decay alpha must be positive, got %f",
			grn.ErrInvalidParameter, alpha)
	}
	return math.Ln2 / alpha, nil
}

// OnDelay returns the time for a species rising from zero toward steady
// state yst to cross the downstream threshold k:
//
//	Ton = (1/alpha) * ln(1 / (1 - k/yst))
//
// The threshold must lie below the steady state or it is never crossed.
func OnDelay(alpha, yst, k float64) (float64, error) {
	if alpha <= 0 {
		return 0, fmt.Errorf("%w: decay alpha must be positive, got %f",
			grn.ErrInvalidParameter, alpha)
	}
	if yst <= 0 || k <= 0 {
		return 0, fmt.Errorf("%w: steady state and threshold must be positive",
			grn.ErrInvalidParameter)
	}
	if k >= yst {
		return 0, fmt.Errorf("%w: threshold %f not below steady state %f",
			grn.ErrInvalidParameter, k, yst)
	}
	return math.Log(1/(1-k/yst)) / alpha, nil
}

// CrossingStep returns the first step at which s rises strictly above the
// threshold, or -1 if it never does.
func CrossingStep(s grn.Series, threshold float64) int {
	for i, v := range s {
		if v > threshold {
			return i
		}
	}
	return -1
}

// SettlingStep returns the first step after which s stays within tol of
// target for the remainder of the trace, or -1 if it never settles.
func SettlingStep(s grn.Series, target, tol float64) int {
	settled := -1
	for i, v := range s {
		if math.Abs(v-target) <= tol {
			if settled == -1 {
				settled = i
			}
		} else {
			settled = -1
		}
	}
	return settled
}
