// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget row in the store.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByClient retrieves all budgets for a client, newest date first.
	FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Budget, error)

	// UpdateAmount updates the amount of an existing budget.
	UpdateAmount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	// Delete removes a budget row.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense persistence operations.
// Expenses are append/delete only; there is no update.
type ExpenseRepository interface {
	// Create creates a new expense row in the store.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// Delete removes an expense row.
	Delete(ctx context.Context, id uuid.UUID) error
}
