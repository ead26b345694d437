// Package repayment contains repayment-related use cases, chief among them
// the validator that keeps a client's repayments from ever exceeding their
// debts.
package repayment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for repayment descriptions.
const MaxDescriptionLength = 255

// CreateRepaymentInput represents the input for repayment creation.
type CreateRepaymentInput struct {
	ClientID    uuid.UUID
	DebtID      *uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// CreateRepaymentOutput represents the output of repayment creation.
// Remaining is the client's outstanding debt after this repayment; Settled
// reports an exact payoff so the caller can word its feedback accordingly.
type CreateRepaymentOutput struct {
	Repayment *entity.Repayment
	Remaining decimal.Decimal
	Settled   bool
}

// CreateRepaymentUseCase gates repayment creation so the ledger never
// represents over-repayment. The outstanding balance is derived from debt
// and repayment sums; debt rows are never decremented.
type CreateRepaymentUseCase struct {
	repaymentRepo adapter.RepaymentRepository
	clientRepo    adapter.ClientRepository
}

// NewCreateRepaymentUseCase creates a new CreateRepaymentUseCase instance.
func NewCreateRepaymentUseCase(
	repaymentRepo adapter.RepaymentRepository,
	clientRepo adapter.ClientRepository,
) *CreateRepaymentUseCase {
	return &CreateRepaymentUseCase{
		repaymentRepo: repaymentRepo,
		clientRepo:    clientRepo,
	}
}

// Execute validates and persists a repayment. The check against the client's
// outstanding debt and the insert run as one serialized store transaction,
// so two concurrent repayments cannot both pass validation against a stale
// balance.
func (uc *CreateRepaymentUseCase) Execute(ctx context.Context, input CreateRepaymentInput) (*CreateRepaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"repayment amount must be positive",
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

	repayment := entity.NewRepayment(input.ClientID, input.DebtID, input.Amount, input.Description, input.Date)

	remaining, err := uc.repaymentRepo.CreateChecked(ctx, repayment)
	if err != nil {
		return nil, err
	}

	settled := remaining.IsZero()
	slog.Info("Repayment recorded",
		"clientID", input.ClientID,
		"amount", input.Amount,
		"remaining", remaining,
		"settled", settled,
	)

	return &CreateRepaymentOutput{
		Repayment: repayment,
		Remaining: remaining,
		Settled:   settled,
	}, nil
}
