// Package admin contains admin-related use cases.
package admin

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// fakeLedgerAdmin records reset calls and can fail on demand.
type fakeLedgerAdmin struct {
	calls int
	err   error
}

func (f *fakeLedgerAdmin) ResetAll(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestResetRequiresConfirmation(t *testing.T) {
	ledger := &fakeLedgerAdmin{}
	uc := NewResetAllDataUseCase(ledger)

	err := uc.Execute(context.Background(), ResetAllDataInput{Confirm: false})
	if !errors.Is(err, domainerror.ErrResetNotConfirmed) {
		t.Errorf("expected ErrResetNotConfirmed, got %v", err)
	}
	if ledger.calls != 0 {
		t.Error("expected no reset without confirmation")
	}
}

func TestResetWipesWhenConfirmed(t *testing.T) {
	ledger := &fakeLedgerAdmin{}
	uc := NewResetAllDataUseCase(ledger)

	if err := uc.Execute(context.Background(), ResetAllDataInput{Confirm: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ledger.calls != 1 {
		t.Errorf("expected exactly 1 reset call, got %d", ledger.calls)
	}
}

func TestResetFailurePropagates(t *testing.T) {
	storeErr := errors.New("wipe failed, transaction rolled back")
	uc := NewResetAllDataUseCase(&fakeLedgerAdmin{err: storeErr})

	err := uc.Execute(context.Background(), ResetAllDataInput{Confirm: true})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected the store error to propagate, got %v", err)
	}
}
