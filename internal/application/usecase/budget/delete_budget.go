// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	ID uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute deletes a budget row.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if _, err := uc.budgetRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}
	if err := uc.budgetRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
