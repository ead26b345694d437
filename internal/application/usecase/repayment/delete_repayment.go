// Package repayment contains repayment-related use cases.
package repayment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
)

// DeleteRepaymentInput represents the input for repayment deletion.
type DeleteRepaymentInput struct {
	ID uuid.UUID
}

// DeleteRepaymentUseCase handles repayment deletion. Removing a repayment
// only ever raises the outstanding balance, so no invariant check is needed.
type DeleteRepaymentUseCase struct {
	repaymentRepo adapter.RepaymentRepository
}

// NewDeleteRepaymentUseCase creates a new DeleteRepaymentUseCase instance.
func NewDeleteRepaymentUseCase(repaymentRepo adapter.RepaymentRepository) *DeleteRepaymentUseCase {
	return &DeleteRepaymentUseCase{
		repaymentRepo: repaymentRepo,
	}
}

// Execute deletes a repayment row.
func (uc *DeleteRepaymentUseCase) Execute(ctx context.Context, input DeleteRepaymentInput) error {
	if _, err := uc.repaymentRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}
	if err := uc.repaymentRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete repayment: %w", err)
	}
	return nil
}

// ListRepaymentsInput represents the input for listing a client's repayments.
type ListRepaymentsInput struct {
	ClientID uuid.UUID
}

// ListRepaymentsOutput represents the output of listing a client's repayments.
type ListRepaymentsOutput struct {
	Repayments []*entity.Repayment
}

// ListRepaymentsUseCase lists a client's repayments, newest date first.
type ListRepaymentsUseCase struct {
	repaymentRepo adapter.RepaymentRepository
	clientRepo    adapter.ClientRepository
}

// NewListRepaymentsUseCase creates a new ListRepaymentsUseCase instance.
func NewListRepaymentsUseCase(
	repaymentRepo adapter.RepaymentRepository,
	clientRepo adapter.ClientRepository,
) *ListRepaymentsUseCase {
	return &ListRepaymentsUseCase{
		repaymentRepo: repaymentRepo,
		clientRepo:    clientRepo,
	}
}

// Execute retrieves all repayments for the given client.
func (uc *ListRepaymentsUseCase) Execute(ctx context.Context, input ListRepaymentsInput) (*ListRepaymentsOutput, error) {
	if _, err := uc.clientRepo.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}
	repayments, err := uc.repaymentRepo.FindByClient(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list repayments: %w", err)
	}
	return &ListRepaymentsOutput{Repayments: repayments}, nil
}
