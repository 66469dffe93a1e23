package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidInput       = errors.New("invalid input")
	ErrPressureRatio      = fmt.Errorf("%w: pressure ratio must be > 1", ErrInvalidInput)
	ErrEfficiencyRange    = fmt.Errorf("%w: efficiency must be in (0, 1]", ErrInvalidInput)
	ErrNegativeMass       = fmt.Errorf("%w: mass must be >= 0", ErrInvalidInput)
	ErrMoistureRange      = fmt.Errorf("%w: moisture fraction must be in [0, 1]", ErrInvalidInput)
	ErrTemperatureInvalid = fmt.Errorf("%w: temperature outside physical range", ErrInvalidInput)

	// Result classification errors
	ErrDegenerateResult = errors.New("degenerate result")
)

// NewInvalidInputError builds a field-level validation error
func NewInvalidInputError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}

// NewFieldRangeError reports a value outside its documented domain
func NewFieldRangeError(field string, value float64, domain string) error {
	return fmt.Errorf("%w: %s = %g outside %s", ErrInvalidInput, field, value, domain)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsDegenerate(err error) bool {
	return errors.Is(err, ErrDegenerateResult)
}
