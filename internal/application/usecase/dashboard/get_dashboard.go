// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// Summary is the dashboard object consumed by presentation: window totals,
// the derived balance, the chronological event feed, and the debtors report.
type Summary struct {
	TotalBudget  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
	History      []entity.Event
	Debtors      []entity.Debtor
}

// GetDashboardUseCase composes the aggregation engine's outputs into one
// summary. It holds no state of its own and recomputes from the store on
// every call.
type GetDashboardUseCase struct {
	dashboardRepo DashboardRepository
	sequencer     *Sequencer
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(dashboardRepo DashboardRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		dashboardRepo: dashboardRepo,
		sequencer:     NewSequencer(),
	}
}

// Execute builds the summary for the window. The four underlying queries
// have no dependency on each other and run concurrently, bounding latency to
// the slowest one. If a newer refresh was issued while this one ran, the
// stale result is discarded with ErrStaleDashboard.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, window Window) (*Summary, error) {
	seq := uc.sequencer.Next()

	bounds := window.Bounds()
	asOf := window.AsOfEnd()

	var (
		totalBudget  decimal.Decimal
		totalExpense decimal.Decimal
		history      []entity.Event
		debtors      []entity.Debtor
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalBudget, err = uc.dashboardRepo.SumBudgets(gctx, bounds)
		return err
	})
	g.Go(func() error {
		var err error
		totalExpense, err = uc.dashboardRepo.SumExpenses(gctx, bounds)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = uc.dashboardRepo.EventFeed(gctx, bounds)
		return err
	})
	g.Go(func() error {
		var err error
		debtors, err = uc.dashboardRepo.OutstandingByClient(gctx, asOf)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	if uc.sequencer.Superseded(seq) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeStaleDashboard,
			"dashboard refresh superseded",
			domainerror.ErrStaleDashboard,
		)
	}

	return &Summary{
		TotalBudget:  totalBudget,
		TotalExpense: totalExpense,
		Balance:      totalBudget.Sub(totalExpense),
		History:      history,
		Debtors:      debtors,
	}, nil
}
