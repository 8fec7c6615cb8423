package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

func TestValidate_OK(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "alice@example.com", Name: "Alice", Level: "Beginner"})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "not-an-email"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
	assert.Equal(t, "This field is required", verr.Errors["name"])
	assert.Contains(t, err.Error(), "Validation failed")
}

func TestValidate_OneofMessage(t *testing.T) {
	v := New()
	err := v.Validate(&sampleInput{Email: "alice@example.com", Name: "Alice", Level: "Expert"})
	require.Error(t, err)

	verr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be one of: Beginner, Intermediate, Advanced", verr.Errors["level"])
}
