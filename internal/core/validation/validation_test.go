package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	State string `query:"state" validate:"required,len=2"`
	Zone  int    `query:"zone" validate:"min=1,max=8"`
	Tier  string `json:"tier" validate:"omitempty,oneof=Priority Expedited Ground"`
}

// TestValidator_Validate_OK verifies that a valid struct passes.
func TestValidator_Validate_OK(t *testing.T) {
	err := New().Validate(sampleRequest{State: "CA", Zone: 2, Tier: "Ground"})
	assert.NoError(t, err)
}

// TestValidator_Validate_Failures verifies that failures are reported by tag name.
func TestValidator_Validate_Failures(t *testing.T) {
	err := New().Validate(sampleRequest{State: "CAL", Zone: 9, Tier: "Overnight"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 3)

	assert.Equal(t, FieldError{Field: "state", Rule: "len", Param: "2"}, verr.Fields[0])
	assert.Equal(t, FieldError{Field: "zone", Rule: "max", Param: "8"}, verr.Fields[1])
	assert.Equal(t, "tier", verr.Fields[2].Field)
	assert.Equal(t, "oneof", verr.Fields[2].Rule)

	assert.Contains(t, err.Error(), "state must satisfy len=2")
}

// TestValidator_Validate_NotStruct verifies that non-struct input is rejected.
func TestValidator_Validate_NotStruct(t *testing.T) {
	err := New().Validate("nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
