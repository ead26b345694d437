package persistence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ekajy/backend/internal/application/usecase/dashboard"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// dashboardRepository implements the dashboard.DashboardRepository interface
// with raw SQL. The queries run identically on postgres and sqlite.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

const dateLayout = "2006-01-02"

// rangeClause renders the half-open date predicate for one table column,
// appending bound values to args. A nil bound contributes no condition.
func rangeClause(column string, r dashboard.DateRange, args *[]interface{}) string {
	conditions := []string{"1 = 1"}
	if r.Start != nil {
		conditions = append(conditions, fmt.Sprintf("%s >= ?", column))
		*args = append(*args, r.Start.Format(dateLayout))
	}
	if r.End != nil {
		conditions = append(conditions, fmt.Sprintf("%s < ?", column))
		*args = append(*args, r.End.Format(dateLayout))
	}
	return strings.Join(conditions, " AND ")
}

// SumBudgets returns the total budget amount within the range.
func (r *dashboardRepository) SumBudgets(ctx context.Context, dateRange dashboard.DateRange) (decimal.Decimal, error) {
	return r.sumTable(ctx, "budgets", dateRange)
}

// SumExpenses returns the total expense amount within the range.
func (r *dashboardRepository) SumExpenses(ctx context.Context, dateRange dashboard.DateRange) (decimal.Decimal, error) {
	return r.sumTable(ctx, "expenses", dateRange)
}

func (r *dashboardRepository) sumTable(ctx context.Context, table string, dateRange dashboard.DateRange) (decimal.Decimal, error) {
	var args []interface{}
	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(amount), 0) AS total FROM %s WHERE %s",
		table, rangeClause("date", dateRange, &args),
	)

	var row struct {
		Total decimal.Decimal `gorm:"column:total"`
	}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&row).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s: %w", table, err)
	}
	return row.Total, nil
}

// eventRow is the scan target for the unified feed query.
type eventRow struct {
	ID          uuid.UUID       `gorm:"column:id"`
	Date        time.Time       `gorm:"column:date"`
	Type        string          `gorm:"column:type"`
	Amount      decimal.Decimal `gorm:"column:amount"`
	ClientName  *string         `gorm:"column:client_name"`
	Description *string         `gorm:"column:description"`
}

// EventFeed returns budgets, expenses, debts, and repayments within the range
// as one feed, newest date first with insertion order breaking ties. Client
// names resolve in the same query.
func (r *dashboardRepository) EventFeed(ctx context.Context, dateRange dashboard.DateRange) ([]entity.Event, error) {
	var args []interface{}
	segments := []string{
		fmt.Sprintf(`SELECT b.id, b.date, 'budget' AS type, b.amount, c.name AS client_name,
			NULL AS description, b.created_at
			FROM budgets b LEFT JOIN clients c ON c.id = b.client_id
			WHERE %s`, rangeClause("b.date", dateRange, &args)),
		fmt.Sprintf(`SELECT e.id, e.date, 'expense' AS type, e.amount, NULL AS client_name,
			e.description, e.created_at
			FROM expenses e
			WHERE %s`, rangeClause("e.date", dateRange, &args)),
		fmt.Sprintf(`SELECT d.id, d.date, 'debt' AS type, d.amount, c.name AS client_name,
			d.description, d.created_at
			FROM debts d LEFT JOIN clients c ON c.id = d.client_id
			WHERE %s`, rangeClause("d.date", dateRange, &args)),
		fmt.Sprintf(`SELECT r.id, r.date, 'repayment' AS type, r.amount, c.name AS client_name,
			r.description, r.created_at
			FROM repayments r LEFT JOIN clients c ON c.id = r.client_id
			WHERE %s`, rangeClause("r.date", dateRange, &args)),
	}
	query := strings.Join(segments, "\nUNION ALL\n") + "\nORDER BY date DESC, created_at ASC"

	var rows []eventRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load event feed: %w", err)
	}

	events := make([]entity.Event, len(rows))
	for i, row := range rows {
		eventType := entity.EventType(row.Type)
		if eventType != entity.EventTypeExpense && row.ClientName == nil {
			// Client rows are never deleted while referenced, so a missing
			// name means the store is inconsistent.
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeClientLookupFailed,
				fmt.Sprintf("no client found for %s %s", row.Type, row.ID),
				domainerror.ErrClientLookupFailed,
			)
		}
		events[i] = entity.Event{
			ID:          row.ID,
			Date:        row.Date,
			Type:        eventType,
			Amount:      row.Amount,
			ClientName:  row.ClientName,
			Description: row.Description,
		}
	}
	return events, nil
}

// debtorRow is the scan target for the outstanding-debt report.
type debtorRow struct {
	ClientID    uuid.UUID       `gorm:"column:client_id"`
	Name        string          `gorm:"column:name"`
	TotalDebt   decimal.Decimal `gorm:"column:total_debt"`
	TotalRepaid decimal.Decimal `gorm:"column:total_repaid"`
}

// OutstandingByClient returns each client whose debts within the range exceed
// their repayments within the range. Debts and repayments are pre-grouped in
// subqueries before joining, so multiple rows per client never cross-multiply.
func (r *dashboardRepository) OutstandingByClient(ctx context.Context, dateRange dashboard.DateRange) ([]entity.Debtor, error) {
	var args []interface{}
	debtClause := rangeClause("date", dateRange, &args)
	repaymentClause := rangeClause("date", dateRange, &args)

	query := fmt.Sprintf(`
		SELECT c.id AS client_id, c.name,
			d.total_debt,
			COALESCE(r.total_repaid, 0) AS total_repaid
		FROM (
			SELECT client_id, SUM(amount) AS total_debt
			FROM debts WHERE %s GROUP BY client_id
		) d
		JOIN clients c ON c.id = d.client_id
		LEFT JOIN (
			SELECT client_id, SUM(amount) AS total_repaid
			FROM repayments WHERE %s GROUP BY client_id
		) r ON r.client_id = d.client_id
		ORDER BY c.name ASC
	`, debtClause, repaymentClause)

	var rows []debtorRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load debtors: %w", err)
	}

	debtors := make([]entity.Debtor, 0, len(rows))
	for _, row := range rows {
		outstanding := row.TotalDebt.Sub(row.TotalRepaid)
		if !outstanding.IsPositive() {
			continue
		}
		debtors = append(debtors, entity.Debtor{
			ClientID:    row.ClientID,
			Name:        row.Name,
			TotalDebt:   row.TotalDebt,
			TotalRepaid: row.TotalRepaid,
			Outstanding: outstanding,
		})
	}
	return debtors, nil
}
