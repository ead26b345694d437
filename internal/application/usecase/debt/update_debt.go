// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/adapter"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// UpdateDebtInput represents the input for a debt amount update.
type UpdateDebtInput struct {
	ID     uuid.UUID
	Amount decimal.Decimal
}

// UpdateDebtUseCase handles debt amount updates. Lowering a debt below what
// has already been repaid would break the repayment invariant, so the new
// amount must cover the client's repaid total.
type UpdateDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(debtRepo adapter.DebtRepository) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute updates the amount of an existing debt.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) error {
	if !input.Amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"debt amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	// The store re-checks the repaid total against the new amount inside
	// the same transaction as the write.
	if err := uc.debtRepo.UpdateAmountChecked(ctx, input.ID, input.Amount); err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	return nil
}
