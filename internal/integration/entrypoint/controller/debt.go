// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/usecase/debt"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt endpoints.
type DebtController struct {
	addUseCase    *debt.AddDebtUseCase
	updateUseCase *debt.UpdateDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
	listUseCase   *debt.ListDebtsUseCase
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	addUseCase *debt.AddDebtUseCase,
	updateUseCase *debt.UpdateDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	listUseCase *debt.ListDebtsUseCase,
) *DebtController {
	return &DebtController{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Add handles POST /debts requests.
func (c *DebtController) Add(ctx *gin.Context) {
	var req dto.AddDebtRequest
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

	output, err := c.addUseCase.Execute(ctx.Request.Context(), debt.AddDebtInput{
		ClientID:    clientID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        parseDateOrNow(req.Date),
	})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// Update handles PATCH /debts/:id requests.
func (c *DebtController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.updateUseCase.Execute(ctx.Request.Context(), debt.UpdateDebtInput{
		ID:     id,
		Amount: decimal.NewFromFloat(req.Amount),
	}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{ID: id}); err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListByClient handles GET /clients/:id/debts requests.
func (c *DebtController) ListByClient(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{ClientID: clientID})
	if err != nil {
		c.handleDebtError(ctx, err)
		return
	}

	debts := make([]dto.DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		debts[i] = dto.ToDebtResponse(d)
	}
	ctx.JSON(http.StatusOK, dto.DebtListResponse{
		Debts:   debts,
		Summary: dto.ToDebtSummaryResponse(output.Summary),
	})
}

// handleDebtError handles debt errors and returns appropriate HTTP responses.
func (c *DebtController) handleDebtError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	// Lowering a debt below the repaid total is reported as a repayment
	// invariant violation.
	var repaymentErr *domainerror.RepaymentError
	if errors.As(err, &repaymentErr) {
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error: repaymentErr.Message,
			Code:  string(repaymentErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrDebtNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Debt not found",
			Code:  string(domainerror.ErrCodeDebtNotFound),
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
