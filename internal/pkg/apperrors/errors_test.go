package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomErrorUnwraps(t *testing.T) {
	err := NewConflictError("email taken")

	assert.EqualError(t, err, "email taken")
	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrResourceNotFound))
}

func TestCustomErrorFallsBackToWrapped(t *testing.T) {
	assert.EqualError(t, &CustomError{Err: ErrConflict}, "conflict")
	assert.EqualError(t, &CustomError{}, "unknown error")
}

func TestDomainErrorsBelongToFamilies(t *testing.T) {
	tests := []struct {
		err    error
		family error
	}{
		{ErrCourseNotFound, ErrResourceNotFound},
		{ErrUserNotFound, ErrResourceNotFound},
		{ErrEmailAlreadyExists, ErrConflict},
		{ErrAlreadyEnrolled, ErrConflict},
		{ErrNotEnrolled, ErrPermissionDenied},
		{ErrInvalidRating, ErrValidationFailed},
		{ErrInvalidPassword, ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("service: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.err)
			assert.ErrorIs(t, wrapped, tt.family)
		})
	}

	assert.NotErrorIs(t, ErrCourseNotFound, ErrUserNotFound)
	assert.Equal(t, "course not found", ErrCourseNotFound.Error())
}
