// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing a client's budgets.
type ListBudgetsInput struct {
	ClientID uuid.UUID
}

// ListBudgetsOutput represents the output of listing a client's budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase lists a client's budgets, newest date first.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	clientRepo adapter.ClientRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, clientRepo adapter.ClientRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		clientRepo: clientRepo,
	}
}

// Execute retrieves all budgets for the given client.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	budgets, err := uc.budgetRepo.FindByClient(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return &ListBudgetsOutput{Budgets: budgets}, nil
}
