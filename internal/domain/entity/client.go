// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a named party who can hold budgets, debts, and repayments.
type Client struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new Client entity.
func NewClient(name string) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
