// Package error defines domain-specific errors for the ledger application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidWindow is returned when a date window cannot be built from
	// the request parameters.
	ErrInvalidWindow = errors.New("invalid date window")

	// ErrStaleDashboard is returned when a dashboard refresh finishes after
	// a newer refresh has already been issued; the stale result must be
	// discarded rather than rendered.
	ErrStaleDashboard = errors.New("dashboard refresh superseded by a newer request")

	// ErrClientLookupFailed is returned when resolving a client name for an
	// event fails. It is distinct from "no client applies" (expenses).
	ErrClientLookupFailed = errors.New("client lookup failed")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	ErrCodeInvalidWindow      DashboardErrorCode = "DSH-010001"
	ErrCodeStaleDashboard     DashboardErrorCode = "DSH-010002"
	ErrCodeClientLookupFailed DashboardErrorCode = "DSH-020001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
