// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repayment represents a client paying down debt. The sum of a client's
// repayments must never exceed the sum of that client's debts; the creation
// path enforces this.
type Repayment struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	DebtID      *uuid.UUID // Optional reference to the debt being paid down
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// NewRepayment creates a new Repayment entity.
func NewRepayment(clientID uuid.UUID, debtID *uuid.UUID, amount decimal.Decimal, description string, date time.Time) *Repayment {
	return &Repayment{
		ID:          uuid.New(),
		ClientID:    clientID,
		DebtID:      debtID,
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
