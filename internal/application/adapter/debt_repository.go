// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt row in the store.
	Create(ctx context.Context, debt *entity.Debt) error

	// FindByID retrieves a debt by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindByClient retrieves all debts for a client, newest date first.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Debt, error)

	// SummaryForClient computes the client's debt position: total debt,
	// total repaid, and the derived outstanding balance. SUM over no rows
	// is zero, not an error.
	SummaryForClient(ctx context.Context, clientID uuid.UUID) (*entity.ClientDebtSummary, error)

	// UpdateAmountChecked updates the amount of an existing debt. The
	// outstanding balance is always derived, so updating the original
	// amount is the only sanctioned mutation. The check that the client's
	// debt total still covers everything already repaid and the write run
	// in one store transaction.
	UpdateAmountChecked(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// DeleteChecked removes a debt row, verifying inside the same store
	// transaction that the client's remaining debt total still covers
	// everything already repaid.
	DeleteChecked(ctx context.Context, id uuid.UUID) error
}
