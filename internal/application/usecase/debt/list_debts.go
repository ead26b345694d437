// Package debt contains debt-related use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
)

// ListDebtsInput represents the input for listing a client's debts.
type ListDebtsInput struct {
	ClientID uuid.UUID
}

// ListDebtsOutput represents the output of listing a client's debts,
// including the derived totals shown on the client screen.
type ListDebtsOutput struct {
	Debts   []*entity.Debt
	Summary *entity.ClientDebtSummary
}

// ListDebtsUseCase lists a client's debts along with the client's debt position.
type ListDebtsUseCase struct {
	debtRepo   adapter.DebtRepository
	clientRepo adapter.ClientRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository, clientRepo adapter.ClientRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo:   debtRepo,
		clientRepo: clientRepo,
	}
}

// Execute retrieves a client's debts and derived totals.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	debts, err := uc.debtRepo.FindByClient(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	summary, err := uc.debtRepo.SummaryForClient(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute debt summary: %w", err)
	}

	return &ListDebtsOutput{Debts: debts, Summary: summary}, nil
}
