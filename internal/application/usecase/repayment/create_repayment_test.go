// Package repayment contains repayment-related use cases.
package repayment

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// fakeClientRepo holds clients keyed by ID.
type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	repo := &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
	for _, c := range clients {
		repo.clients[c.ID] = c
	}
	return repo
}

func (f *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) FindAll(ctx context.Context) ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(f.clients))
	for _, c := range f.clients {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	f.clients[client.ID] = client
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeClientRepo) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

// fakeRepaymentRepo mirrors the store-side validation: the outstanding check
// and the insert run under one lock, as the real transaction serializes them.
type fakeRepaymentRepo struct {
	mu          sync.Mutex
	outstanding decimal.Decimal
	repayments  map[uuid.UUID]*entity.Repayment
}

func newFakeRepaymentRepo(outstanding decimal.Decimal) *fakeRepaymentRepo {
	return &fakeRepaymentRepo{
		outstanding: outstanding,
		repayments:  make(map[uuid.UUID]*entity.Repayment),
	}
}

func (f *fakeRepaymentRepo) CreateChecked(ctx context.Context, repayment *entity.Repayment) (decimal.Decimal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.outstanding.IsPositive() {
		return decimal.Zero, domainerror.NewRepaymentError(
			domainerror.ErrCodeNoOutstandingDebt,
			"client has no outstanding debt",
			domainerror.ErrNoOutstandingDebt,
		)
	}
	if repayment.Amount.GreaterThan(f.outstanding) {
		return decimal.Zero, domainerror.NewRepaymentError(
			domainerror.ErrCodeRepaymentExceedsDebt,
			"repayment exceeds outstanding debt",
			domainerror.ErrRepaymentExceedsDebt,
		)
	}

	f.outstanding = f.outstanding.Sub(repayment.Amount)
	f.repayments[repayment.ID] = repayment
	return f.outstanding, nil
}

func (f *fakeRepaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Repayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.repayments[id]
	if !ok {
		return nil, domainerror.ErrRepaymentNotFound
	}
	return r, nil
}

func (f *fakeRepaymentRepo) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Repayment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Repayment
	for _, r := range f.repayments {
		if r.ClientID == clientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.repayments[id]; !ok {
		return domainerror.ErrRepaymentNotFound
	}
	delete(f.repayments, id)
	return nil
}

func (f *fakeRepaymentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.repayments)
}

func TestCreateRepaymentValidation(t *testing.T) {
	clientEntity := entity.NewClient("Hery")
	now := time.Now().UTC()

	tests := []struct {
		name        string
		outstanding decimal.Decimal
		input       CreateRepaymentInput
		wantErr     error
	}{
		{
			name:        "zero amount rejected",
			outstanding: decimal.NewFromInt(100),
			input:       CreateRepaymentInput{ClientID: clientEntity.ID, Amount: decimal.Zero, Date: now},
			wantErr:     domainerror.ErrInvalidAmount,
		},
		{
			name:        "negative amount rejected",
			outstanding: decimal.NewFromInt(100),
			input:       CreateRepaymentInput{ClientID: clientEntity.ID, Amount: decimal.NewFromInt(-5), Date: now},
			wantErr:     domainerror.ErrInvalidAmount,
		},
		{
			name:        "oversized description rejected",
			outstanding: decimal.NewFromInt(100),
			input: CreateRepaymentInput{
				ClientID:    clientEntity.ID,
				Amount:      decimal.NewFromInt(10),
				Description: strings.Repeat("x", MaxDescriptionLength+1),
				Date:        now,
			},
			wantErr: domainerror.ErrDescriptionTooLong,
		},
		{
			name:        "unknown client rejected",
			outstanding: decimal.NewFromInt(100),
			input:       CreateRepaymentInput{ClientID: uuid.New(), Amount: decimal.NewFromInt(10), Date: now},
			wantErr:     domainerror.ErrUnknownClient,
		},
		{
			name:        "no outstanding debt rejected",
			outstanding: decimal.Zero,
			input:       CreateRepaymentInput{ClientID: clientEntity.ID, Amount: decimal.NewFromInt(10), Date: now},
			wantErr:     domainerror.ErrNoOutstandingDebt,
		},
		{
			name:        "repayment above outstanding rejected",
			outstanding: decimal.NewFromInt(50),
			input:       CreateRepaymentInput{ClientID: clientEntity.ID, Amount: decimal.NewFromInt(51), Date: now},
			wantErr:     domainerror.ErrRepaymentExceedsDebt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repaymentRepo := newFakeRepaymentRepo(tt.outstanding)
			uc := NewCreateRepaymentUseCase(repaymentRepo, newFakeClientRepo(clientEntity))

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if repaymentRepo.count() != 0 {
				t.Error("expected nothing to be inserted after a rejection")
			}
		})
	}
}

func TestCreateRepaymentPartialAndExactPayoff(t *testing.T) {
	clientEntity := entity.NewClient("Vola")
	now := time.Now().UTC()

	t.Run("partial repayment leaves a remainder", func(t *testing.T) {
		repaymentRepo := newFakeRepaymentRepo(decimal.NewFromInt(100))
		uc := NewCreateRepaymentUseCase(repaymentRepo, newFakeClientRepo(clientEntity))

		output, err := uc.Execute(context.Background(), CreateRepaymentInput{
			ClientID: clientEntity.ID,
			Amount:   decimal.NewFromInt(40),
			Date:     now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Remaining.Equal(decimal.NewFromInt(60)) {
			t.Errorf("expected remaining 60, got %s", output.Remaining)
		}
		if output.Settled {
			t.Error("expected a partial repayment not to settle the debt")
		}
	})

	t.Run("exact payoff settles the debt", func(t *testing.T) {
		repaymentRepo := newFakeRepaymentRepo(decimal.NewFromInt(100))
		uc := NewCreateRepaymentUseCase(repaymentRepo, newFakeClientRepo(clientEntity))

		output, err := uc.Execute(context.Background(), CreateRepaymentInput{
			ClientID: clientEntity.ID,
			Amount:   decimal.NewFromInt(100),
			Date:     now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Remaining.IsZero() {
			t.Errorf("expected remaining 0, got %s", output.Remaining)
		}
		if !output.Settled {
			t.Error("expected an exact payoff to settle the debt")
		}
	})
}

func TestCreateRepaymentConcurrentFullPayoffs(t *testing.T) {
	clientEntity := entity.NewClient("Naina")
	repaymentRepo := newFakeRepaymentRepo(decimal.NewFromInt(100))
	uc := NewCreateRepaymentUseCase(repaymentRepo, newFakeClientRepo(clientEntity))

	// Two racing repayments each try to clear the full balance. The store
	// transaction serializes them, so exactly one can succeed.
	const racers = 2
	errs := make(chan error, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateRepaymentInput{
				ClientID: clientEntity.ID,
				Amount:   decimal.NewFromInt(100),
				Date:     time.Now().UTC(),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var successes, rejections int
	for err := range errs {
		if err == nil {
			successes++
			continue
		}
		if errors.Is(err, domainerror.ErrNoOutstandingDebt) {
			rejections++
			continue
		}
		t.Errorf("unexpected error: %v", err)
	}

	if successes != 1 {
		t.Errorf("expected exactly 1 success, got %d", successes)
	}
	if rejections != 1 {
		t.Errorf("expected exactly 1 rejection, got %d", rejections)
	}
	if repaymentRepo.count() != 1 {
		t.Errorf("expected exactly 1 stored repayment, got %d", repaymentRepo.count())
	}
}
