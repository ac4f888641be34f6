package grn

import (
	"errors"
	"fmt"
)

// Domain errors for circuit construction and signal generation.
var (
	// ErrInvalidInterval indicates a pulse with on-step >= off-step.
	ErrInvalidInterval = errors.New("grn: invalid interval (on-step must precede off-step)")

	// ErrInvalidParameter indicates a non-positive threshold or a negative
	// rate parameter.
	ErrInvalidParameter = errors.New("grn: parameter out of valid range")

	// ErrUnknownRegulator indicates a gene input that names no signal and
	// no previously added gene.
	ErrUnknownRegulator = errors.New("grn: unknown regulator")

	// ErrDimensionMismatch indicates series of different lengths where
	// equal lengths are required.
	ErrDimensionMismatch = errors.New("grn: series length mismatch")

	// ErrInvalidValue indicates a NaN/Inf concentration detected with
	// value validation enabled.
	ErrInvalidValue = errors.New("grn: invalid concentration (NaN or Inf)")
)

// StepError wraps an error with the step at which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Gene    string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f, gene %s): %v", e.Step, e.Time, e.Gene, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
