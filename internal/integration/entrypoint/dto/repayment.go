// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/ekajy/backend/internal/domain/entity"
)

// CreateRepaymentRequest represents the request body for repayment creation.
type CreateRepaymentRequest struct {
	ClientID    string  `json:"client_id" binding:"required,uuid4"`
	DebtID      *string `json:"debt_id,omitempty" binding:"omitempty,uuid4"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string  `json:"date,omitempty"`
}

// RepaymentResponse represents a single repayment in API responses.
type RepaymentResponse struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	DebtID      *string   `json:"debt_id,omitempty"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRepaymentResponse represents the response for repayment creation.
// Remaining is the client's outstanding debt after this repayment; Settled
// marks an exact payoff.
type CreateRepaymentResponse struct {
	Repayment RepaymentResponse `json:"repayment"`
	Remaining string            `json:"remaining"`
	Settled   bool              `json:"settled"`
}

// RepaymentListResponse represents the response for listing a client's repayments.
type RepaymentListResponse struct {
	Repayments []RepaymentResponse `json:"repayments"`
}

// ToRepaymentResponse converts a domain Repayment entity to a RepaymentResponse DTO.
func ToRepaymentResponse(repayment *entity.Repayment) RepaymentResponse {
	var debtID *string
	if repayment.DebtID != nil {
		s := repayment.DebtID.String()
		debtID = &s
	}
	return RepaymentResponse{
		ID:          repayment.ID.String(),
		ClientID:    repayment.ClientID.String(),
		DebtID:      debtID,
		Amount:      repayment.Amount.String(),
		Description: repayment.Description,
		Date:        repayment.Date.Format("2006-01-02"),
		CreatedAt:   repayment.CreatedAt,
	}
}
