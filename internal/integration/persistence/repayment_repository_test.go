package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/persistence/model"
)

func TestCreateCheckedConcurrentPayoffs(t *testing.T) {
	db := openLedgerDB(t, "repayment_race")
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Hery")
	seedDebt(t, db, clientID, 100)

	// Two racers both try to pay off the full 100. The transaction must
	// serialize them so exactly one lands.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repayment := entity.NewRepayment(clientID, nil, decimal.NewFromInt(100), "", time.Now().UTC())
			_, results[i] = repo.CreateChecked(ctx, repayment)
		}(i)
	}
	wg.Wait()

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainerror.ErrNoOutstandingDebt):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 || rejected != 1 {
		t.Errorf("got %d successes and %d rejections, want exactly 1 of each", succeeded, rejected)
	}
	if got := countRows(t, db, &model.RepaymentModel{}); got != 1 {
		t.Errorf("repayment row count = %d, want 1", got)
	}
}

func TestCreateCheckedRejectsWithoutInserting(t *testing.T) {
	db := openLedgerDB(t, "repayment_reject")
	repo := NewRepaymentRepository(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Hery")
	seedDebt(t, db, clientID, 100)

	repayment := entity.NewRepayment(clientID, nil, decimal.NewFromInt(150), "", time.Now().UTC())
	_, err := repo.CreateChecked(ctx, repayment)
	if !errors.Is(err, domainerror.ErrRepaymentExceedsDebt) {
		t.Fatalf("expected ErrRepaymentExceedsDebt, got %v", err)
	}

	if got := countRows(t, db, &model.RepaymentModel{}); got != 0 {
		t.Errorf("repayment row count = %d, want 0", got)
	}
}

func TestCreateCheckedUnknownClient(t *testing.T) {
	db := openLedgerDB(t, "repayment_unknown_client")
	repo := NewRepaymentRepository(db)

	repayment := entity.NewRepayment(uuid.New(), nil, decimal.NewFromInt(10), "", time.Now().UTC())
	_, err := repo.CreateChecked(context.Background(), repayment)
	if !errors.Is(err, domainerror.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestResetAllWipesEveryTable(t *testing.T) {
	db := openLedgerDB(t, "reset_all")
	admin := NewLedgerAdmin(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Hery")
	seedDebt(t, db, clientID, 100)
	seedRepayment(t, db, clientID, 40)

	if err := admin.ResetAll(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, m := range []interface{}{&model.ClientModel{}, &model.DebtModel{}, &model.RepaymentModel{}} {
		if got := countRows(t, db, m); got != 0 {
			t.Errorf("row count for %T = %d, want 0", m, got)
		}
	}
}

func TestResetAllRollsBackWhenAWipeFails(t *testing.T) {
	db := openLedgerDB(t, "reset_rollback")
	admin := NewLedgerAdmin(db)
	ctx := context.Background()

	clientID := seedClient(t, db, "Hery")
	seedDebt(t, db, clientID, 100)
	seedRepayment(t, db, clientID, 40)

	// Budgets are wiped third of five; dropping the table makes that step
	// fail after repayments and debts have already been cleared inside the
	// transaction.
	if err := db.Migrator().DropTable(&model.BudgetModel{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	if err := admin.ResetAll(ctx); err == nil {
		t.Fatal("expected an error, got nil")
	}

	// The earlier wipes must have rolled back with the failed one.
	if got := countRows(t, db, &model.RepaymentModel{}); got != 1 {
		t.Errorf("repayment row count = %d, want 1", got)
	}
	if got := countRows(t, db, &model.DebtModel{}); got != 1 {
		t.Errorf("debt row count = %d, want 1", got)
	}
	if got := countRows(t, db, &model.ClientModel{}); got != 1 {
		t.Errorf("client row count = %d, want 1", got)
	}
}
