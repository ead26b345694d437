// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ekajy/backend/internal/domain/entity"
)

// AddExpenseRequest represents the request body for expense creation.
type AddExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string  `json:"date,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Amount:      expense.Amount.String(),
		Description: expense.Description,
		Date:        expense.Date.Format("2006-01-02"),
		CreatedAt:   expense.CreatedAt,
	}
}
