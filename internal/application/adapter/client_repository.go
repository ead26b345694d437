// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
type ClientRepository interface {
	// Create creates a new client in the store.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindAll retrieves all clients ordered by name.
	FindAll(ctx context.Context) ([]*entity.Client, error)

	// Update updates an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client. The delete and the reference check run in
	// one transaction; a client still referenced by budgets, debts, or
	// repayments is not deleted.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountReferences counts budgets, debts, and repayments referencing
	// the client.
	CountReferences(ctx context.Context, id uuid.UUID) (int64, error)
}
