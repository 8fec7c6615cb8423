package apperrors

import (
	"net/http"
)

// Factories and predefined errors for the SkillSwap business domains.

// ErrNotFound converts a repository-level miss (gorm.ErrRecordNotFound and
// friends) into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate-key failure into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- Auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- Users & skills ---

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

var ErrSkillNotFound = New(
	CodeNotFound,
	"skill",
	"Skill not found",
	http.StatusNotFound,
)

var ErrInvalidSkillLevel = New(
	CodeValidationFailed,
	"validation",
	"Skill level must be one of: Beginner, Intermediate, Advanced",
	http.StatusBadRequest,
)

// --- Requests ---

// ErrSelfRequest - a learner cannot request a skill they own themselves.
var ErrSelfRequest = New(
	CodeInvalidOperation,
	"request",
	"You cannot request your own skill",
	http.StatusBadRequest,
)

// ErrDuplicateRequest - a pending request for the same (skill, learner) pair
// already exists.
var ErrDuplicateRequest = New(
	CodeConflict,
	"request",
	"Request already sent",
	http.StatusConflict,
)

var ErrRequestNotFound = New(
	CodeNotFound,
	"request",
	"Request not found",
	http.StatusNotFound,
)

// ErrRequestAlreadyDecided - terminal statuses are immutable; a decided request
// cannot be re-decided.
var ErrRequestAlreadyDecided = New(
	CodeConflict,
	"request",
	"Request has already been decided",
	http.StatusConflict,
)

// ErrInvalidRequestStatus - the submitted status is outside the closed
// {accepted, rejected} set.
var ErrInvalidRequestStatus = New(
	CodeInvalidStatus,
	"request",
	"Status must be 'accepted' or 'rejected'",
	http.StatusBadRequest,
)

// ErrNotRequestMentor - only the mentor referenced by a request may decide it.
var ErrNotRequestMentor = New(
	CodeForbidden,
	"request",
	"Only the mentor of this request can update its status",
	http.StatusForbidden,
)

// ErrNotRequestParticipant - request details are visible to the mentor and the
// learner only.
var ErrNotRequestParticipant = New(
	CodeForbidden,
	"request",
	"Access to this request is denied",
	http.StatusForbidden,
)
