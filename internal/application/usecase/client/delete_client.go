// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ID uuid.UUID
}

// DeleteClientUseCase handles client deletion. Deletion is blocked while
// budgets, debts, or repayments still reference the client; nothing cascades.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute deletes a client with no remaining ledger references.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) error {
	if _, err := uc.clientRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	refs, err := uc.clientRepo.CountReferences(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to count client references: %w", err)
	}
	if refs > 0 {
		return domainerror.NewClientError(
			domainerror.ErrCodeClientHasRecords,
			fmt.Sprintf("client is referenced by %d ledger records", refs),
			domainerror.ErrClientHasRecords,
		)
	}

	if err := uc.clientRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
