// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found in the store.
	ErrClientNotFound = errors.New("client not found")

	// ErrEmptyClientName is returned when a client name is empty or blank.
	ErrEmptyClientName = errors.New("client name must not be empty")

	// ErrClientHasRecords is returned when deleting a client that is still
	// referenced by budgets, debts, or repayments.
	ErrClientHasRecords = errors.New("client is referenced by ledger records")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	ErrCodeClientNotFound   ClientErrorCode = "CLI-010001"
	ErrCodeEmptyClientName  ClientErrorCode = "CLI-010002"
	ErrCodeClientHasRecords ClientErrorCode = "CLI-010003"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
