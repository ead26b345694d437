// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// MaxClientNameLength is the maximum allowed length for client names.
const MaxClientNameLength = 255

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name string
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute performs the client creation.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeEmptyClientName,
			"client name must not be empty",
			domainerror.ErrEmptyClientName,
		)
	}
	if len(name) > MaxClientNameLength {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeEmptyClientName,
			fmt.Sprintf("client name must not exceed %d characters", MaxClientNameLength),
			domainerror.ErrEmptyClientName,
		)
	}

	client := entity.NewClient(name)
	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{Client: client}, nil
}
