package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/kmsahu/genesim/internal/grn"
)

func TestSteadyState(t *testing.T) {
	got, err := SteadyState(1.0, 0.1)
	if err != nil {
		t.Fatalf("steady state failed: %v", err)
	}
	if math.Abs(got-10.0) > 1e-12 {
		t.Errorf("got %f, want 10", got)
	}

	if _, err := SteadyState(1.0, 0); !errors.Is(err, grn.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for zero alpha, got %v", err)
	}
	if _, err := SteadyState(-1.0, 0.1); !errors.Is(err, grn.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for negative beta, got %v", err)
	}
}

func TestResponseTime(t *testing.T) {
	got, err := ResponseTime(0.1)
	if err != nil {
		t.Fatalf("response time failed: %v", err)
	}
	if math.Abs(got-math.Ln2/0.1) > 1e-12 {
		t.Errorf("got %f, want %f", got, math.Ln2/0.1)
	}

	if _, err := ResponseTime(-1); !errors.Is(err, grn.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestOnDelay(t *testing.T) {
	// Threshold at half the steady state reduces to ln2/alpha.
	got, err := OnDelay(0.1, 10, 5)
	if err != nil {
		t.Fatalf("on delay failed: %v", err)
	}
	if math.Abs(got-math.Ln2/0.1) > 1e-12 {
		t.Errorf("got %f, want %f", got, math.Ln2/0.1)
	}
}

func TestOnDelayInvalid(t *testing.T) {
	tests := []struct {
		name          string
		alpha, yst, k float64
	}{
		{"zero alpha", 0, 10, 5},
		{"threshold at steady state", 0.1, 10, 10},
		{"threshold above steady state", 0.1, 10, 20},
		{"zero threshold", 0.1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := OnDelay(tt.alpha, tt.yst, tt.k); !errors.Is(err, grn.ErrInvalidParameter) {
				t.Errorf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestCrossingStep(t *testing.T) {
	s := grn.Series{0, 0.2, 0.4, 0.8, 1.2}

	if got := CrossingStep(s, 0.5); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got := CrossingStep(s, 2.0); got != -1 {
		t.Errorf("got %d, want -1 for never crossed", got)
	}
	if got := CrossingStep(s, 0.4); got != 3 {
		t.Errorf("crossing must be strict: got %d, want 3", got)
	}
}

func TestSettlingStep(t *testing.T) {
	s := grn.Series{0, 5, 9, 9.9, 9.99, 10.0, 10.0}

	if got := SettlingStep(s, 10, 0.05); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
	if got := SettlingStep(grn.Series{0, 20, 0}, 10, 0.5); got != -1 {
		t.Errorf("got %d, want -1 for never settled", got)
	}
}
