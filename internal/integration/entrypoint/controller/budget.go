// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/usecase/budget"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	addUseCase    *budget.AddBudgetUseCase
	updateUseCase *budget.UpdateBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	addUseCase *budget.AddBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// parseDateOrNow parses a YYYY-MM-DD date string. An absent or malformed
// value falls back to the current UTC time.
func parseDateOrNow(value string) time.Time {
	if value != "" {
		if date, err := time.Parse("2006-01-02", value); err == nil {
			return date
		}
	}
	return time.Now().UTC()
}

// Add handles POST /budgets requests.
func (c *BudgetController) Add(ctx *gin.Context) {
	var req dto.AddBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client_id",
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), budget.AddBudgetInput{
		ClientID: clientID,
		Amount:   decimal.NewFromFloat(req.Amount),
		Date:     parseDateOrNow(req.Date),
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		ID:     id,
		Amount: decimal.NewFromFloat(req.Amount),
	}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{ID: id}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListByClient handles GET /clients/:id/budgets requests.
func (c *BudgetController) ListByClient(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{ClientID: clientID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	budgets := make([]dto.BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = dto.ToBudgetResponse(b)
	}
	ctx.JSON(http.StatusOK, dto.BudgetListResponse{Budgets: budgets})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrBudgetNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Budget not found",
			Code:  string(domainerror.ErrCodeBudgetNotFound),
		})
	case errors.Is(err, domainerror.ErrClientNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Client not found",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// getStatusCodeForLedgerError maps ledger record error codes to HTTP status
// codes. It is shared by the budget, expense, debt, and repayment controllers.
func getStatusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeDebtNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeDescriptionTooLong:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnknownClient:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
