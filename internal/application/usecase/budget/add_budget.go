// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// AddBudgetInput represents the input for budget creation.
type AddBudgetInput struct {
	ClientID uuid.UUID
	Amount   decimal.Decimal
	Date     time.Time
}

// AddBudgetOutput represents the output of budget creation.
type AddBudgetOutput struct {
	Budget *entity.Budget
}

// AddBudgetUseCase handles budget creation logic.
type AddBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clientRepo adapter.ClientRepository
}

// NewAddBudgetUseCase creates a new AddBudgetUseCase instance.
func NewAddBudgetUseCase(budgetRepo adapter.BudgetRepository, clientRepo adapter.ClientRepository) *AddBudgetUseCase {
	return &AddBudgetUseCase{
		budgetRepo: budgetRepo,
		clientRepo: clientRepo,
	}
}

// Execute performs the budget creation. Budgets may be backdated; a zero
// amount is allowed, a negative one is not.
func (uc *AddBudgetUseCase) Execute(ctx context.Context, input AddBudgetInput) (*AddBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}

	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeUnknownClient,
				fmt.Sprintf("client %s does not exist", input.ClientID),
				domainerror.ErrUnknownClient,
			)
		}
		return nil, err
	}

	budget := entity.NewBudget(input.ClientID, input.Amount, input.Date)
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &AddBudgetOutput{Budget: budget}, nil
}
