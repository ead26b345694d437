// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
)

// DashboardRepository defines the read-only aggregation queries backing the
// dashboard. All queries are window-scoped through bound parameters; SUM
// over no rows is zero, never an error.
type DashboardRepository interface {
	// SumBudgets returns the total budget amount within the range.
	SumBudgets(ctx context.Context, r DateRange) (decimal.Decimal, error)

	// SumExpenses returns the total expense amount within the range.
	SumExpenses(ctx context.Context, r DateRange) (decimal.Decimal, error)

	// EventFeed returns the unified feed of budgets, expenses, debts, and
	// repayments within the range, ordered by date descending with
	// insertion order breaking ties. Client names are resolved in the same
	// query; expenses carry none.
	EventFeed(ctx context.Context, r DateRange) ([]entity.Event, error)

	// OutstandingByClient returns every client whose debts within the
	// range exceed their repayments within the range, as one grouped
	// computation. Callers pass an as-of-window-end range.
	OutstandingByClient(ctx context.Context, r DateRange) ([]entity.Debtor, error)
}
