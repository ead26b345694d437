// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ID uuid.UUID
}

// DeleteExpenseUseCase handles expense deletion. Expenses have no update
// operation; correcting one is delete plus re-add.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute deletes an expense row.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	if _, err := uc.expenseRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}
	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
