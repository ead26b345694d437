// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/ekajy/backend/internal/domain/entity"
)

// GetEventsForDateInput represents the input for the single-day feed.
type GetEventsForDateInput struct {
	Date time.Time
}

// GetEventsForDateOutput represents the output of the single-day feed.
type GetEventsForDateOutput struct {
	Events []entity.Event
}

// GetEventsForDateUseCase returns the event feed for one calendar day; the
// add-event modal uses it to show the day's existing entries.
type GetEventsForDateUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetEventsForDateUseCase creates a new GetEventsForDateUseCase instance.
func NewGetEventsForDateUseCase(dashboardRepo DashboardRepository) *GetEventsForDateUseCase {
	return &GetEventsForDateUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute retrieves the feed scoped to the day containing the input date.
func (uc *GetEventsForDateUseCase) Execute(ctx context.Context, input GetEventsForDateInput) (*GetEventsForDateOutput, error) {
	events, err := uc.dashboardRepo.EventFeed(ctx, Day(input.Date).Bounds())
	if err != nil {
		return nil, fmt.Errorf("failed to load events for date: %w", err)
	}
	return &GetEventsForDateOutput{Events: events}, nil
}
