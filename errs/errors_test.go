package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("steps", ErrInvalidSteps, "steps must be positive, got %d", -1)

	require.Equal(t, "validation failed on steps: steps must be positive, got -1", err.Error())
	require.ErrorIs(t, err, ErrInvalidSteps)
	require.True(t, IsValidation(err))
	require.False(t, IsInterpolationFailure(err))

	wrapped := fmt.Errorf("request rejected: %w", err)
	require.True(t, IsValidation(wrapped))
	require.ErrorIs(t, wrapped, ErrInvalidSteps)
}

func TestValidationErrorWithoutField(t *testing.T) {
	err := NewValidationError("", ErrEmptyInput, "no rows")
	require.Equal(t, "validation failed: no rows", err.Error())
}

func TestInterpolationFailure(t *testing.T) {
	cause := fmt.Errorf("%w: pivot 0 is zero", ErrSingularSystem)
	err := NewInterpolationFailure("linear", cause)

	require.Equal(t, "linear interpolation failed: singular linear system: pivot 0 is zero", err.Error())
	require.ErrorIs(t, err, ErrSingularSystem)
	require.True(t, IsInterpolationFailure(err))
	require.False(t, IsValidation(err))

	var fe *InterpolationFailure
	require.True(t, errors.As(fmt.Errorf("outer: %w", err), &fe))
	require.Equal(t, "linear", fe.Method)
}
