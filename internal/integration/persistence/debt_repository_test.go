package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/persistence/model"
)

// openLedgerDB opens a private in-memory sqlite database with the ledger
// schema. A single connection is enforced so concurrent transactions
// serialize the way a real deployment's store does.
func openLedgerDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect gorm: %v", err)
	}

	err = db.AutoMigrate(
		&model.ClientModel{},
		&model.BudgetModel{},
		&model.ExpenseModel{},
		&model.DebtModel{},
		&model.RepaymentModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func seedClient(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	now := time.Now().UTC()
	client := &model.ClientModel{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	return client.ID
}

func seedDebt(t *testing.T, db *gorm.DB, clientID uuid.UUID, amount int64) uuid.UUID {
	t.Helper()

	now := time.Now().UTC()
	debt := &model.DebtModel{
		ID:        uuid.New(),
		ClientID:  clientID,
		Amount:    decimal.NewFromInt(amount),
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.Create(debt).Error; err != nil {
		t.Fatalf("failed to seed debt: %v", err)
	}
	return debt.ID
}

func seedRepayment(t *testing.T, db *gorm.DB, clientID uuid.UUID, amount int64) {
	t.Helper()

	now := time.Now().UTC()
	repayment := &model.RepaymentModel{
		ID:        uuid.New(),
		ClientID:  clientID,
		Amount:    decimal.NewFromInt(amount),
		Date:      now,
		CreatedAt: now,
	}
	if err := db.Create(repayment).Error; err != nil {
		t.Fatalf("failed to seed repayment: %v", err)
	}
}

func countRows(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()

	var count int64
	if err := db.Model(m).Count(&count).Error; err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}

func TestDeleteCheckedKeepsRepaidCovered(t *testing.T) {
	db := openLedgerDB(t, "debt_delete_covered")
	repo := NewDebtRepository(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Hery")
	debtID := seedDebt(t, db, clientID, 100)
	seedRepayment(t, db, clientID, 80)

	err := repo.DeleteChecked(ctx, debtID)
	if !errors.Is(err, domainerror.ErrRepaymentExceedsDebt) {
		t.Fatalf("expected ErrRepaymentExceedsDebt, got %v", err)
	}

	if got := countRows(t, db, &model.DebtModel{}); got != 1 {
		t.Fatalf("debt row count = %d, want 1", got)
	}

	summary, err := repo.SummaryForClient(ctx, clientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.Outstanding.Equal(decimal.NewFromInt(20)) {
		t.Errorf("outstanding = %s, want 20", summary.Outstanding)
	}
}

func TestDeleteCheckedAllowsUncoveredDebt(t *testing.T) {
	db := openLedgerDB(t, "debt_delete_allowed")
	repo := NewDebtRepository(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Hery")
	bigDebtID := seedDebt(t, db, clientID, 100)
	smallDebtID := seedDebt(t, db, clientID, 50)
	seedRepayment(t, db, clientID, 40)

	// Dropping the small debt leaves 100 against 40 repaid.
	if err := repo.DeleteChecked(ctx, smallDebtID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Dropping the remaining debt would leave 0 against 40 repaid.
	err := repo.DeleteChecked(ctx, bigDebtID)
	if !errors.Is(err, domainerror.ErrRepaymentExceedsDebt) {
		t.Fatalf("expected ErrRepaymentExceedsDebt, got %v", err)
	}

	if got := countRows(t, db, &model.DebtModel{}); got != 1 {
		t.Fatalf("debt row count = %d, want 1", got)
	}
}

func TestDeleteCheckedUnknownDebt(t *testing.T) {
	db := openLedgerDB(t, "debt_delete_unknown")
	repo := NewDebtRepository(db)

	err := repo.DeleteChecked(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Fatalf("expected ErrDebtNotFound, got %v", err)
	}
}

func TestUpdateAmountCheckedBlocksDroppingBelowRepaid(t *testing.T) {
	db := openLedgerDB(t, "debt_update_blocked")
	repo := NewDebtRepository(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Hery")
	debtID := seedDebt(t, db, clientID, 100)
	seedRepayment(t, db, clientID, 80)

	err := repo.UpdateAmountChecked(ctx, debtID, decimal.NewFromInt(50))
	if !errors.Is(err, domainerror.ErrRepaymentExceedsDebt) {
		t.Fatalf("expected ErrRepaymentExceedsDebt, got %v", err)
	}

	var debtModel model.DebtModel
	if err := db.Where("id = ?", debtID).First(&debtModel).Error; err != nil {
		t.Fatalf("failed to reload debt: %v", err)
	}
	if !debtModel.Amount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("amount = %s, want 100 (unchanged)", debtModel.Amount)
	}

	// Down to exactly the repaid total is still valid.
	if err := repo.UpdateAmountChecked(ctx, debtID, decimal.NewFromInt(80)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := repo.SummaryForClient(ctx, clientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.Outstanding.IsZero() {
		t.Errorf("outstanding = %s, want 0", summary.Outstanding)
	}
}

func TestUpdateAmountCheckedUnknownDebt(t *testing.T) {
	db := openLedgerDB(t, "debt_update_unknown")
	repo := NewDebtRepository(db)

	err := repo.UpdateAmountChecked(context.Background(), uuid.New(), decimal.NewFromInt(10))
	if !errors.Is(err, domainerror.ErrDebtNotFound) {
		t.Fatalf("expected ErrDebtNotFound, got %v", err)
	}
}
