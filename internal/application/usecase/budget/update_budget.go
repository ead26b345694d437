// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/adapter"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for a budget amount update.
type UpdateBudgetInput struct {
	ID     uuid.UUID
	Amount decimal.Decimal
}

// UpdateBudgetUseCase handles budget amount updates.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute updates the amount of an existing budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) error {
	if input.Amount.IsNegative() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if _, err := uc.budgetRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.budgetRepo.UpdateAmount(ctx, input.ID, input.Amount); err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	return nil
}
