// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/ekajy/backend/internal/application/usecase/dashboard"
	"github.com/ekajy/backend/internal/domain/entity"
)

// EventResponse represents one entry of the unified ledger feed.
type EventResponse struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      string  `json:"amount"`
	ClientName  *string `json:"client_name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// DebtorResponse represents one row of the outstanding-debt report.
type DebtorResponse struct {
	ClientID    string `json:"client_id"`
	Name        string `json:"name"`
	TotalDebt   string `json:"total_debt"`
	TotalRepaid string `json:"total_repaid"`
	Outstanding string `json:"outstanding"`
}

// DashboardResponse represents the full dashboard summary.
type DashboardResponse struct {
	TotalBudget  string           `json:"total_budget"`
	TotalExpense string           `json:"total_expense"`
	Balance      string           `json:"balance"`
	History      []EventResponse  `json:"history"`
	Debtors      []DebtorResponse `json:"debtors"`
}

// EventListResponse represents the single-day feed response.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain Event to an EventResponse DTO.
func ToEventResponse(event entity.Event) EventResponse {
	return EventResponse{
		ID:          event.ID.String(),
		Date:        event.Date.Format("2006-01-02"),
		Type:        string(event.Type),
		Amount:      event.Amount.String(),
		ClientName:  event.ClientName,
		Description: event.Description,
	}
}

// ToDebtorResponse converts a domain Debtor to a DebtorResponse DTO.
func ToDebtorResponse(debtor entity.Debtor) DebtorResponse {
	return DebtorResponse{
		ClientID:    debtor.ClientID.String(),
		Name:        debtor.Name,
		TotalDebt:   debtor.TotalDebt.String(),
		TotalRepaid: debtor.TotalRepaid.String(),
		Outstanding: debtor.Outstanding.String(),
	}
}

// ToDashboardResponse converts a dashboard Summary to its DTO.
func ToDashboardResponse(summary *dashboard.Summary) DashboardResponse {
	history := make([]EventResponse, len(summary.History))
	for i, event := range summary.History {
		history[i] = ToEventResponse(event)
	}
	debtors := make([]DebtorResponse, len(summary.Debtors))
	for i, debtor := range summary.Debtors {
		debtors[i] = ToDebtorResponse(debtor)
	}
	return DashboardResponse{
		TotalBudget:  summary.TotalBudget.String(),
		TotalExpense: summary.TotalExpense.String(),
		Balance:      summary.Balance.String(),
		History:      history,
		Debtors:      debtors,
	}
}
