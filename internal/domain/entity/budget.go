// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents money allocated to a client on a given calendar date.
type Budget struct {
	ID       uuid.UUID
	ClientID uuid.UUID
	Amount   decimal.Decimal
	// Date is the user-picked calendar date; it may be backdated and is
	// distinct from CreatedAt, which records insertion time.
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(clientID uuid.UUID, amount decimal.Decimal, date time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		ClientID:  clientID,
		Amount:    amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
