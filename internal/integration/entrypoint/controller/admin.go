// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ekajy/backend/internal/application/usecase/admin"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/entrypoint/dto"
)

// AdminController handles the admin login and data reset endpoints.
type AdminController struct {
	loginUseCase *admin.LoginUseCase
	resetUseCase *admin.ResetAllDataUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	loginUseCase *admin.LoginUseCase,
	resetUseCase *admin.ResetAllDataUseCase,
) *AdminController {
	return &AdminController{
		loginUseCase: loginUseCase,
		resetUseCase: resetUseCase,
	}
}

// Login handles POST /admin/login requests.
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), admin.LoginInput{
		Password: req.Password,
	})
	if err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AdminLoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	})
}

// Reset handles POST /admin/reset requests.
func (c *AdminController) Reset(ctx *gin.Context) {
	var req dto.ResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.resetUseCase.Execute(ctx.Request.Context(), admin.ResetAllDataInput{
		Confirm: req.Confirm,
	}); err != nil {
		c.handleAdminError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: "All ledger data has been reset",
	})
}

// handleAdminError handles admin errors and returns appropriate HTTP responses.
func (c *AdminController) handleAdminError(ctx *gin.Context, err error) {
	var adminErr *domainerror.AdminError
	if errors.As(err, &adminErr) {
		ctx.JSON(c.getStatusCodeForAdminError(adminErr.Code), dto.ErrorResponse{
			Error: adminErr.Message,
			Code:  string(adminErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAdminError maps admin error codes to HTTP status codes.
func (c *AdminController) getStatusCodeForAdminError(code domainerror.AdminErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeResetNotConfirmed:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
