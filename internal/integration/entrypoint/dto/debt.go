// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ekajy/backend/internal/domain/entity"
)

// AddDebtRequest represents the request body for debt creation.
type AddDebtRequest struct {
	ClientID    string  `json:"client_id" binding:"required,uuid4"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string  `json:"date,omitempty"`
}

// UpdateDebtRequest represents the request body for a debt amount update.
type UpdateDebtRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DebtSummaryResponse represents a client's aggregate debt position.
type DebtSummaryResponse struct {
	TotalDebt   string `json:"total_debt"`
	TotalRepaid string `json:"total_repaid"`
	Outstanding string `json:"outstanding"`
}

// DebtListResponse represents the response for listing a client's debts.
type DebtListResponse struct {
	Debts   []DebtResponse      `json:"debts"`
	Summary DebtSummaryResponse `json:"summary"`
}

// ToDebtResponse converts a domain Debt entity to a DebtResponse DTO.
func ToDebtResponse(debt *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:          debt.ID.String(),
		ClientID:    debt.ClientID.String(),
		Amount:      debt.Amount.String(),
		Description: debt.Description,
		Date:        debt.Date.Format("2006-01-02"),
		CreatedAt:   debt.CreatedAt,
		UpdatedAt:   debt.UpdatedAt,
	}
}

// ToDebtSummaryResponse converts a ClientDebtSummary to its DTO.
func ToDebtSummaryResponse(summary *entity.ClientDebtSummary) DebtSummaryResponse {
	return DebtSummaryResponse{
		TotalDebt:   summary.TotalDebt.String(),
		TotalRepaid: summary.TotalRepaid.String(),
		Outstanding: summary.Outstanding.String(),
	}
}
