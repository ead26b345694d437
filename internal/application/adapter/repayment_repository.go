// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
)

// RepaymentRepository defines the interface for repayment persistence operations.
type RepaymentRepository interface {
	// CreateChecked inserts the repayment after validating it against the
	// client's outstanding debt, all inside a single store transaction with
	// the client row serialized. It returns the remaining outstanding debt
	// after the repayment. Domain-rule violations surface as
	// ErrNoOutstandingDebt or ErrRepaymentExceedsDebt and nothing is
	// inserted.
	CreateChecked(ctx context.Context, repayment *entity.Repayment) (decimal.Decimal, error)

	// FindByID retrieves a repayment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Repayment, error)

	// FindByClient retrieves all repayments for a client, newest date first.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Repayment, error)

	// Delete removes a repayment row.
	Delete(ctx context.Context, id uuid.UUID) error
}

// LedgerAdmin defines destructive store-wide operations.
type LedgerAdmin interface {
	// ResetAll wipes the five ledger tables in one transaction. A failure
	// partway rolls the whole wipe back.
	ResetAll(ctx context.Context) error
}
