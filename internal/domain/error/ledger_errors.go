// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Ledger record domain errors, shared by budgets, expenses, and debts.
var (
	// ErrBudgetNotFound is returned when a budget row is not found.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrExpenseNotFound is returned when an expense row is not found.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrDebtNotFound is returned when a debt row is not found.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvalidAmount is returned when a monetary amount is not a finite
	// positive value (or negative, for budgets).
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrUnknownClient is returned when a record references a client that
	// does not exist.
	ErrUnknownClient = errors.New("unknown client")

	// ErrDescriptionTooLong is returned when a description exceeds the
	// maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// LedgerErrorCode defines error codes for ledger record errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	ErrCodeInvalidAmount      LedgerErrorCode = "LGR-010001"
	ErrCodeUnknownClient      LedgerErrorCode = "LGR-010002"
	ErrCodeDescriptionTooLong LedgerErrorCode = "LGR-010003"
	ErrCodeBudgetNotFound     LedgerErrorCode = "LGR-010004"
	ErrCodeExpenseNotFound    LedgerErrorCode = "LGR-010005"
	ErrCodeDebtNotFound       LedgerErrorCode = "LGR-010006"
)

// LedgerError represents a ledger record error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
