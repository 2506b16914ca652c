package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringValidation(t *testing.T) {
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).WithMinLength(3).Validate())
	assert.False(t, NewStringValidation("ab").WithMinLength(3).Validate())
	assert.True(t, NewStringValidation("عمر").WithMinLength(3).Validate(), "length counts runes")
	assert.False(t, NewStringValidation("abcdef").WithMaxLength(5).Validate())
	assert.False(t, NewStringValidation("a b").WithPattern(CompiledPatterns.Username).Validate())
}

func TestNumericValidation(t *testing.T) {
	assert.True(t, NewNumericValidation(1).Between(1, 5).Validate())
	assert.True(t, NewNumericValidation(5).Between(1, 5).Validate())
	assert.False(t, NewNumericValidation(0).Between(1, 5).Validate())
	assert.False(t, NewNumericValidation(6).Between(1, 5).Validate())
}

func TestRegistration(t *testing.T) {
	require.NoError(t, Registration("omar_k", "omar@example.com", "secret1", "Omar Khaled"))

	err := Registration("o", "not-an-email", "123", "Om")
	require.Error(t, err)

	var fe FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Len(t, fe, 4)
	assert.Contains(t, fe, "username")
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "password")
	assert.Contains(t, fe, "fullName")
}
