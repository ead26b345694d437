// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Repayment domain errors. These are the domain-rule violations guarded by
// the repayment validator; they are always surfaced to the caller and never
// clamped or partially applied.
var (
	// ErrNoOutstandingDebt is returned when a repayment is attempted for a
	// client whose outstanding debt is zero (or would be negative).
	ErrNoOutstandingDebt = errors.New("client has no outstanding debt")

	// ErrRepaymentExceedsDebt is returned when a repayment amount exceeds
	// the client's outstanding debt.
	ErrRepaymentExceedsDebt = errors.New("repayment exceeds outstanding debt")

	// ErrRepaymentNotFound is returned when a repayment row is not found.
	ErrRepaymentNotFound = errors.New("repayment not found")
)

// RepaymentErrorCode defines error codes for repayment errors.
// Format: RPY-XXYYYY where XX is category and YYYY is specific error.
type RepaymentErrorCode string

const (
	ErrCodeNoOutstandingDebt    RepaymentErrorCode = "RPY-020001"
	ErrCodeRepaymentExceedsDebt RepaymentErrorCode = "RPY-020002"
	ErrCodeRepaymentNotFound    RepaymentErrorCode = "RPY-010001"
)

// RepaymentError represents a repayment error with code and message.
type RepaymentError struct {
	Code    RepaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RepaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RepaymentError) Unwrap() error {
	return e.Err
}

// NewRepaymentError creates a new RepaymentError with the given code and message.
func NewRepaymentError(code RepaymentErrorCode, message string, err error) *RepaymentError {
	return &RepaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
