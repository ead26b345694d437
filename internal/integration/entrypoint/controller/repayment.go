// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/usecase/repayment"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/entrypoint/dto"
)

// RepaymentController handles repayment endpoints.
type RepaymentController struct {
	createUseCase *repayment.CreateRepaymentUseCase
	deleteUseCase *repayment.DeleteRepaymentUseCase
	listUseCase   *repayment.ListRepaymentsUseCase
}

// NewRepaymentController creates a new repayment controller instance.
func NewRepaymentController(
	createUseCase *repayment.CreateRepaymentUseCase,
	deleteUseCase *repayment.DeleteRepaymentUseCase,
	listUseCase *repayment.ListRepaymentsUseCase,
) *RepaymentController {
	return &RepaymentController{
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /repayments requests.
func (c *RepaymentController) Create(ctx *gin.Context) {
	var req dto.CreateRepaymentRequest
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

	var debtID *uuid.UUID
	if req.DebtID != nil {
		parsed, err := uuid.Parse(*req.DebtID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid debt_id",
			})
			return
		}
		debtID = &parsed
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), repayment.CreateRepaymentInput{
		ClientID:    clientID,
		DebtID:      debtID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Date:        parseDateOrNow(req.Date),
	})
	if err != nil {
		c.handleRepaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateRepaymentResponse{
		Repayment: dto.ToRepaymentResponse(output.Repayment),
		Remaining: output.Remaining.String(),
		Settled:   output.Settled,
	})
}

// Delete handles DELETE /repayments/:id requests.
func (c *RepaymentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), repayment.DeleteRepaymentInput{ID: id}); err != nil {
		c.handleRepaymentError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListByClient handles GET /clients/:id/repayments requests.
func (c *RepaymentController) ListByClient(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), repayment.ListRepaymentsInput{ClientID: clientID})
	if err != nil {
		c.handleRepaymentError(ctx, err)
		return
	}

	repayments := make([]dto.RepaymentResponse, len(output.Repayments))
	for i, r := range output.Repayments {
		repayments[i] = dto.ToRepaymentResponse(r)
	}
	ctx.JSON(http.StatusOK, dto.RepaymentListResponse{Repayments: repayments})
}

// handleRepaymentError handles repayment errors and returns appropriate HTTP responses.
func (c *RepaymentController) handleRepaymentError(ctx *gin.Context, err error) {
	var repaymentErr *domainerror.RepaymentError
	if errors.As(err, &repaymentErr) {
		ctx.JSON(c.getStatusCodeForRepaymentError(repaymentErr.Code), dto.ErrorResponse{
			Error: repaymentErr.Message,
			Code:  string(repaymentErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(getStatusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrRepaymentNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Repayment not found",
			Code:  string(domainerror.ErrCodeRepaymentNotFound),
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

// getStatusCodeForRepaymentError maps repayment error codes to HTTP status codes.
func (c *RepaymentController) getStatusCodeForRepaymentError(code domainerror.RepaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodeRepaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoOutstandingDebt,
		domainerror.ErrCodeRepaymentExceedsDebt:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
