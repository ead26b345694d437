// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ekajy/backend/internal/application/usecase/dashboard"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard and event feed endpoints.
type DashboardController struct {
	dashboardUseCase *dashboard.GetDashboardUseCase
	eventsUseCase    *dashboard.GetEventsForDateUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	dashboardUseCase *dashboard.GetDashboardUseCase,
	eventsUseCase *dashboard.GetEventsForDateUseCase,
) *DashboardController {
	return &DashboardController{
		dashboardUseCase: dashboardUseCase,
		eventsUseCase:    eventsUseCase,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	kind := ctx.DefaultQuery("window", string(dashboard.WindowMonth))
	date := parseDateOrNow(ctx.Query("date"))

	year := date.Year()
	if yearStr := ctx.Query("year"); yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil {
			year = y
		}
	}
	month := int(date.Month())
	if monthStr := ctx.Query("month"); monthStr != "" {
		if m, err := strconv.Atoi(monthStr); err == nil {
			month = m
		}
	}

	window, err := dashboard.ParseWindow(kind, date, year, month)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	summary, err := c.dashboardUseCase.Execute(ctx.Request.Context(), window)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}

// Events handles GET /events requests, returning the feed for one day.
func (c *DashboardController) Events(ctx *gin.Context) {
	date := parseDateOrNow(ctx.Query("date"))

	output, err := c.eventsUseCase.Execute(ctx.Request.Context(), dashboard.GetEventsForDateInput{
		Date: date,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	events := make([]dto.EventResponse, len(output.Events))
	for i, event := range output.Events {
		events[i] = dto.ToEventResponse(event)
	}
	ctx.JSON(http.StatusOK, dto.EventListResponse{Events: events})
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(c.getStatusCodeForDashboardError(dashErr.Code), dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrStaleDashboard) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Dashboard refresh superseded by a newer request",
			Code:  string(domainerror.ErrCodeStaleDashboard),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForDashboardError maps dashboard error codes to HTTP status codes.
func (c *DashboardController) getStatusCodeForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidWindow:
		return http.StatusBadRequest
	case domainerror.ErrCodeStaleDashboard:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
