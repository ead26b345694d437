// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ekajy/backend/internal/application/usecase/client"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client endpoints.
type ClientController struct {
	createUseCase *client.CreateClientUseCase
	listUseCase   *client.ListClientsUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	createUseCase *client.CreateClientUseCase,
	listUseCase *client.ListClientsUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{
		Name: req.Name,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	clients := make([]dto.ClientResponse, len(output.Clients))
	for i, cl := range output.Clients {
		clients[i] = dto.ToClientResponse(cl)
	}
	ctx.JSON(http.StatusOK, dto.ClientListResponse{Clients: clients})
}

// Update handles PATCH /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), client.UpdateClientInput{
		ID:   id,
		Name: req.Name,
	})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{ID: id}); err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam parses the :id path parameter as a UUID, writing the error
// response itself when the value is malformed.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id parameter",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleClientError handles client errors and returns appropriate HTTP responses.
func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		ctx.JSON(c.getStatusCodeForClientError(clientErr.Code), dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrClientNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Client not found",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForClientError maps client error codes to HTTP status codes.
func (c *ClientController) getStatusCodeForClientError(code domainerror.ClientErrorCode) int {
	switch code {
	case domainerror.ErrCodeClientNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeEmptyClientName:
		return http.StatusBadRequest
	case domainerror.ErrCodeClientHasRecords:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
