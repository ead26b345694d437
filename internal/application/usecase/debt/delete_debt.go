// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	ID uuid.UUID
}

// DeleteDebtUseCase handles debt deletion.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute deletes a debt row. Removing a debt shrinks the client's debt
// total, so the store rejects the delete when what remains would no longer
// cover what the client has already repaid.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	if err := uc.debtRepo.DeleteChecked(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}
	return nil
}
