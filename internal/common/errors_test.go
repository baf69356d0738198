package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsValidation(t *testing.T) {
	err := NewValidationError("email", "must contain @")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidation(fmt.Errorf("create user: %w", err)))
	assert.Equal(t, "email: must contain @", err.Error())
}

func TestValidationError_NoField(t *testing.T) {
	err := &ValidationError{Message: "empty patch"}
	assert.Equal(t, "empty patch", err.Error())
}

func TestInputErrors_AreValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidID))
	assert.True(t, IsValidation(ErrInvalidPageSize))
	assert.False(t, IsValidation(ErrNotFound))
	assert.False(t, errors.Is(ErrVersionConflict, ErrConflict))
}
