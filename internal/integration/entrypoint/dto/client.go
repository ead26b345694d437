// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ekajy/backend/internal/domain/entity"
)

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateClientRequest represents the request body for renaming a client.
type UpdateClientRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ClientResponse represents a single client in API responses.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	return ClientResponse{
		ID:        client.ID.String(),
		Name:      client.Name,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}
