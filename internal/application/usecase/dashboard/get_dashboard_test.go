// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// fakeDashboardRepo serves canned aggregation results.
type fakeDashboardRepo struct {
	budgets  decimal.Decimal
	expenses decimal.Decimal
	events   []entity.Event
	debtors  []entity.Debtor
	err      error
}

func (f *fakeDashboardRepo) SumBudgets(ctx context.Context, r DateRange) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.budgets, nil
}

func (f *fakeDashboardRepo) SumExpenses(ctx context.Context, r DateRange) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.expenses, nil
}

func (f *fakeDashboardRepo) EventFeed(ctx context.Context, r DateRange) ([]entity.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func (f *fakeDashboardRepo) OutstandingByClient(ctx context.Context, r DateRange) ([]entity.Debtor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.debtors, nil
}

func TestGetDashboardComposesSummary(t *testing.T) {
	clientName := "Hery"
	repo := &fakeDashboardRepo{
		budgets:  decimal.NewFromInt(500),
		expenses: decimal.NewFromInt(120),
		events: []entity.Event{
			{ID: uuid.New(), Type: entity.EventTypeBudget, Amount: decimal.NewFromInt(500), ClientName: &clientName},
		},
		debtors: []entity.Debtor{
			{ClientID: uuid.New(), Name: clientName, TotalDebt: decimal.NewFromInt(80), TotalRepaid: decimal.NewFromInt(30), Outstanding: decimal.NewFromInt(50)},
		},
	}
	uc := NewGetDashboardUseCase(repo)

	summary, err := uc.Execute(context.Background(), Month(2025, time.June))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.TotalBudget.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected total budget 500, got %s", summary.TotalBudget)
	}
	if !summary.TotalExpense.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected total expense 120, got %s", summary.TotalExpense)
	}
	if !summary.Balance.Equal(decimal.NewFromInt(380)) {
		t.Errorf("expected balance 380, got %s", summary.Balance)
	}
	if len(summary.History) != 1 {
		t.Errorf("expected 1 event, got %d", len(summary.History))
	}
	if len(summary.Debtors) != 1 {
		t.Errorf("expected 1 debtor, got %d", len(summary.Debtors))
	}
}

func TestGetDashboardEmptyStoreYieldsZeros(t *testing.T) {
	uc := NewGetDashboardUseCase(&fakeDashboardRepo{})

	summary, err := uc.Execute(context.Background(), AllTime())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !summary.TotalBudget.IsZero() || !summary.TotalExpense.IsZero() || !summary.Balance.IsZero() {
		t.Errorf("expected zero totals, got budget=%s expense=%s balance=%s",
			summary.TotalBudget, summary.TotalExpense, summary.Balance)
	}
	if len(summary.History) != 0 {
		t.Errorf("expected empty history, got %d events", len(summary.History))
	}
	if len(summary.Debtors) != 0 {
		t.Errorf("expected no debtors, got %d", len(summary.Debtors))
	}
}

func TestGetDashboardIsReadOnlyAndRepeatable(t *testing.T) {
	repo := &fakeDashboardRepo{
		budgets:  decimal.NewFromInt(42),
		expenses: decimal.NewFromInt(7),
	}
	uc := NewGetDashboardUseCase(repo)

	first, err := uc.Execute(context.Background(), Year(2025))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), Year(2025))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !first.Balance.Equal(second.Balance) ||
		!first.TotalBudget.Equal(second.TotalBudget) ||
		!first.TotalExpense.Equal(second.TotalExpense) {
		t.Error("expected repeated refreshes over unchanged data to agree")
	}
}

func TestGetDashboardQueryFailurePropagates(t *testing.T) {
	repo := &fakeDashboardRepo{err: errors.New("store down")}
	uc := NewGetDashboardUseCase(repo)

	if _, err := uc.Execute(context.Background(), AllTime()); err == nil {
		t.Fatal("expected an error")
	}
}

// blockingFeedRepo blocks only the first event feed query, so a test can
// start a refresh, hold it mid-flight, and issue a newer one.
type blockingFeedRepo struct {
	fakeDashboardRepo
	started chan struct{}
	release chan struct{}
	calls   int32
}

func (b *blockingFeedRepo) EventFeed(ctx context.Context, r DateRange) ([]entity.Event, error) {
	if atomic.AddInt32(&b.calls, 1) == 1 {
		close(b.started)
		<-b.release
	}
	return b.events, nil
}

func TestGetDashboardDiscardsSupersededRefresh(t *testing.T) {
	repo := &blockingFeedRepo{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	uc := NewGetDashboardUseCase(repo)

	type result struct {
		summary *Summary
		err     error
	}
	firstDone := make(chan result, 1)

	go func() {
		summary, err := uc.Execute(context.Background(), Month(2025, time.June))
		firstDone <- result{summary, err}
	}()

	// Wait until the first refresh holds its ticket and sits in the feed
	// query, then issue a newer refresh. Only the newer one may deliver.
	<-repo.started
	second, err := uc.Execute(context.Background(), Month(2025, time.July))
	if err != nil {
		t.Fatalf("unexpected error from the newer refresh: %v", err)
	}
	if second == nil {
		t.Fatal("expected the newer refresh to deliver a summary")
	}

	close(repo.release)
	first := <-firstDone
	if first.err == nil {
		t.Fatal("expected the superseded refresh to be discarded")
	}
	if !errors.Is(first.err, domainerror.ErrStaleDashboard) {
		t.Errorf("expected ErrStaleDashboard, got %v", first.err)
	}
}
