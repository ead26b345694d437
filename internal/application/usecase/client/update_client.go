// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// UpdateClientInput represents the input for client renaming.
type UpdateClientInput struct {
	ID   uuid.UUID
	Name string
}

// UpdateClientOutput represents the output of client renaming.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles client renaming.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute renames an existing client.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeEmptyClientName,
			"client name must not be empty",
			domainerror.ErrEmptyClientName,
		)
	}

	client, err := uc.clientRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	client.Name = name
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{Client: client}, nil
}
