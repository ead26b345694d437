// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Admin / reset-guard errors.
var (
	// ErrInvalidCredentials is returned when the admin password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when a bearer token is invalid or expired.
	ErrInvalidToken = errors.New("invalid token")

	// ErrResetNotConfirmed is returned when a reset is requested without the
	// explicit confirmation flag.
	ErrResetNotConfirmed = errors.New("reset not confirmed")
)

// AdminErrorCode defines error codes for admin errors.
// Format: ADM-XXYYYY where XX is category and YYYY is specific error.
type AdminErrorCode string

const (
	ErrCodeInvalidCredentials AdminErrorCode = "ADM-010001"
	ErrCodeMissingToken       AdminErrorCode = "ADM-010002"
	ErrCodeInvalidToken       AdminErrorCode = "ADM-010003"
	ErrCodeResetNotConfirmed  AdminErrorCode = "ADM-010004"
	ErrCodeRateLimited        AdminErrorCode = "ADM-030001"
)

// AdminError represents an admin error with code and message.
type AdminError struct {
	Code    AdminErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdminError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AdminError) Unwrap() error {
	return e.Err
}

// NewAdminError creates a new AdminError with the given code and message.
func NewAdminError(code AdminErrorCode, message string, err error) *AdminError {
	return &AdminError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
