package apperrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	assert.Contains(t, appErr.Error(), "system")
	assert.Contains(t, appErr.Error(), "connection refused")
	assert.Equal(t, cause, appErr.Unwrap())
	assert.True(t, Is(appErr, cause))
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	appErr := Wrap(errors.New("secret db detail"), CodeNotFound, "user", "User not found", http.StatusNotFound).
		WithDetails(map[string]string{"id": "abc"})

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, string(CodeNotFound), decoded["code"])
	assert.Equal(t, "user", decoded["domain"])
	assert.Equal(t, "User not found", decoded["message"])
	assert.NotContains(t, string(raw), "secret db detail")
	assert.NotContains(t, string(raw), "404")
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrUserNotFound)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	// Works through wrapping too.
	wrapped := fmt.Errorf("lookup failed: %w", ErrUserNotFound)
	appErr, ok = AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestDomainErrors_HTTPCodes(t *testing.T) {
	cases := []struct {
		err  *AppError
		code int
	}{
		{ErrEmailAlreadyExists, http.StatusConflict},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrWeakPassword, http.StatusBadRequest},
		{ErrUserNotFound, http.StatusNotFound},
		{ErrSkillNotFound, http.StatusNotFound},
		{ErrInvalidSkillLevel, http.StatusBadRequest},
		{ErrSelfRequest, http.StatusBadRequest},
		{ErrDuplicateRequest, http.StatusConflict},
		{ErrRequestNotFound, http.StatusNotFound},
		{ErrRequestAlreadyDecided, http.StatusConflict},
		{ErrInvalidRequestStatus, http.StatusBadRequest},
		{ErrNotRequestMentor, http.StatusForbidden},
		{ErrNotRequestParticipant, http.StatusForbidden},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.HTTPCode, tc.err.Message)
	}
}
