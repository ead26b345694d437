// Package debt contains debt-related use cases.
package debt

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

// MaxDescriptionLength is the maximum allowed length for debt descriptions.
const MaxDescriptionLength = 255

// AddDebtInput represents the input for debt creation.
type AddDebtInput struct {
	ClientID    uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// AddDebtOutput represents the output of debt creation.
type AddDebtOutput struct {
	Debt *entity.Debt
}

// AddDebtUseCase handles debt creation logic.
type AddDebtUseCase struct {
	debtRepo   adapter.DebtRepository
	clientRepo adapter.ClientRepository
}

// NewAddDebtUseCase creates a new AddDebtUseCase instance.
func NewAddDebtUseCase(debtRepo adapter.DebtRepository, clientRepo adapter.ClientRepository) *AddDebtUseCase {
	return &AddDebtUseCase{
		debtRepo:   debtRepo,
		clientRepo: clientRepo,
	}
}

// Execute performs the debt creation. A debt is always tied to a client and
// its amount is strictly positive.
func (uc *AddDebtUseCase) Execute(ctx context.Context, input AddDebtInput) (*AddDebtOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"debt amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
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

	debt := entity.NewDebt(input.ClientID, input.Amount, input.Description, input.Date)
	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &AddDebtOutput{Debt: debt}, nil
}
