// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ekajy/backend/internal/domain/entity"
)

// AddBudgetRequest represents the request body for budget creation.
type AddBudgetRequest struct {
	ClientID string  `json:"client_id" binding:"required,uuid4"`
	Amount   float64 `json:"amount" binding:"min=0"`
	Date     string  `json:"date,omitempty"`
}

// UpdateBudgetRequest represents the request body for a budget amount update.
type UpdateBudgetRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Amount    string    `json:"amount"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetListResponse represents the response for listing a client's budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        budget.ID.String(),
		ClientID:  budget.ClientID.String(),
		Amount:    budget.Amount.String(),
		Date:      budget.Date.Format("2006-01-02"),
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
