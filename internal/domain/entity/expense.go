// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a recorded outflow of funds. Expenses are never tied
// to a client.
type Expense struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(amount decimal.Decimal, description string, date time.Time) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Amount:      amount,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
