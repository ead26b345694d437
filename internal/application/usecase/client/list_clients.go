// Package client contains client-related use cases.
package client

import (
	"context"
	"fmt"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
)

// ListClientsOutput represents the output of listing clients.
type ListClientsOutput struct {
	Clients []*entity.Client
}

// ListClientsUseCase handles listing all clients.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
	}
}

// Execute retrieves all clients ordered by name.
func (uc *ListClientsUseCase) Execute(ctx context.Context) (*ListClientsOutput, error) {
	clients, err := uc.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return &ListClientsOutput{Clients: clients}, nil
}
