package satpress

import (
	"errors"
	"fmt"
)

var (
	// ErrConvergence indicates the Newton iteration stopped without meeting
	// its tolerance.
	ErrConvergence = errors.New("satpress: convergence failure")

	// ErrInvalidOptions indicates a malformed bracket, tolerance or iteration
	// cap.
	ErrInvalidOptions = errors.New("satpress: invalid options")
)

// Reason names why an iteration was abandoned.
type Reason string

const (
	ReasonIterationCap      Reason = "iteration cap reached"
	ReasonDegenerateSlope   Reason = "derivative numerically zero"
	ReasonNoProgress        Reason = "estimate stopped moving"
	ReasonNonFiniteResidual Reason = "residual not finite"
)

// ConvergenceError reports the state of a solve that did not converge.
type ConvergenceError struct {
	Reason     Reason
	Pressure   float64 // last estimate
	Residual   float64 // R(Pressure) - target
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("satpress: %s after %d iterations (pressure %g, residual %g)",
		e.Reason, e.Iterations, e.Pressure, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergence
}
