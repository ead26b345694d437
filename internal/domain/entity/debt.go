// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Debt represents an amount a client owes. The original amount is never
// decremented by repayments; the outstanding balance is always derived.
type Debt struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDebt creates a new Debt entity.
func NewDebt(clientID uuid.UUID, amount decimal.Decimal, description string, date time.Time) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:          uuid.New(),
		ClientID:    clientID,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ClientDebtSummary represents a client's debt position: total owed, total
// repaid, and the derived outstanding balance.
type ClientDebtSummary struct {
	TotalDebt   decimal.Decimal
	TotalRepaid decimal.Decimal
	Outstanding decimal.Decimal
}
