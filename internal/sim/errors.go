package sim

import (
	"errors"
	"fmt"

	"github.com/san-kum/cfdsteps/internal/scheme"
)

// Domain errors for building and running steps.
var (
	// ErrInvalidScheme indicates a scheme id outside 1..12.
	ErrInvalidScheme = errors.New("sim: scheme id out of range")

	// ErrInvalidDimensions indicates a mesh too small to hold an interior.
	ErrInvalidDimensions = errors.New("sim: invalid grid dimensions")

	// ErrUnstable indicates a field diverged to NaN or Inf.
	ErrUnstable = errors.New("sim: field diverged (NaN or Inf detected)")
)

// ConstructionError reports which scheme failed to build.
type ConstructionError struct {
	Kind int
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("build scheme %d: %v", e.Kind, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// StepError wraps a failure with the advance count at which it was seen.
type StepError struct {
	Kind    scheme.Kind
	Step    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%v after %d steps: %v", e.Kind, e.Step, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
