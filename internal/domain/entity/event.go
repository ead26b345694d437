// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType tags the source record type of a ledger event.
type EventType string

const (
	EventTypeBudget    EventType = "budget"
	EventTypeExpense   EventType = "expense"
	EventTypeDebt      EventType = "debt"
	EventTypeRepayment EventType = "repayment"
)

// Event is a read-only projection unifying budgets, expenses, debts, and
// repayments into one chronological feed. Events are never persisted.
type Event struct {
	ID     uuid.UUID
	Date   time.Time
	Type   EventType
	Amount decimal.Decimal
	// ClientName is nil for expenses (no client applies). A repayment,
	// debt, or budget whose client row is missing resolves to nil too, but
	// the persistence layer reports that as a lookup failure rather than
	// masking it.
	ClientName  *string
	Description *string
}

// Debtor represents one row of the outstanding-debt-per-client report.
// Outstanding is TotalDebt minus TotalRepaid and is always positive; fully
// repaid clients are excluded from the report.
type Debtor struct {
	ClientID    uuid.UUID
	Name        string
	TotalDebt   decimal.Decimal
	TotalRepaid decimal.Decimal
	Outstanding decimal.Decimal
}
