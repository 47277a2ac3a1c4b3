// Package errs defines the sentinel errors and error kinds shared by growthcast packages.
//
// Two error kinds cross package boundaries:
//
//   - ValidationError: malformed or insufficient input, the caller's fault.
//   - InterpolationFailure: a method's numerical step failed after its fallback
//     chain was exhausted.
//
// Both wrap one of the sentinels below so callers can match with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// Input shape
	ErrEmptyInput       = errors.New("empty input")
	ErrInsufficientData = errors.New("insufficient data points")
	ErrLengthMismatch   = errors.New("x and y arrays must have the same length")
	ErrDuplicateX       = errors.New("duplicate x value")
	ErrNonFinite        = errors.New("non-finite value")
	ErrUnknownMethod    = errors.New("unknown interpolation method")
	ErrInvalidSteps     = errors.New("invalid number of steps")

	// Domain constraints of the forecast shape
	ErrNonConsecutiveYears = errors.New("years must be consecutive")
	ErrNonPositiveValue    = errors.New("user counts must be positive numbers")

	// CSV ingestion
	ErrMissingColumn   = errors.New("missing required column")
	ErrMalformedRecord = errors.New("malformed CSV record")

	// Numerical failures
	ErrSingularSystem  = errors.New("singular linear system")
	ErrNonFiniteResult = errors.New("non-finite interpolation result")
)

// ValidationError reports input rejected before it reaches the engine.
type ValidationError struct {
	// Field names the offending request field, if known.
	Field string
	// Reason is a human-readable explanation.
	Reason string
	// Err is the matching sentinel.
	Err error
}

// NewValidationError creates a ValidationError for field wrapping the sentinel err.
func NewValidationError(field string, err error, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}

	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InterpolationFailure reports that a method, and every method in its fallback
// chain, failed numerically.
type InterpolationFailure struct {
	// Method is the name of the requested method.
	Method string
	// Cause is the underlying numerical error.
	Cause error
}

// NewInterpolationFailure wraps cause as a failure of the named method.
func NewInterpolationFailure(method string, cause error) *InterpolationFailure {
	return &InterpolationFailure{Method: method, Cause: cause}
}

func (e *InterpolationFailure) Error() string {
	return fmt.Sprintf("%s interpolation failed: %v", e.Method, e.Cause)
}

func (e *InterpolationFailure) Unwrap() error {
	return e.Cause
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInterpolationFailure reports whether err is or wraps an *InterpolationFailure.
func IsInterpolationFailure(err error) bool {
	var fe *InterpolationFailure
	return errors.As(err, &fe)
}
