// Package admin contains the thin guard around destructive operations.
package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ekajy/backend/internal/application/adapter"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// ResetAllDataInput represents the input for the full data reset.
type ResetAllDataInput struct {
	// Confirm must be set explicitly; the UI's confirmation dialog maps to
	// this flag so the endpoint cannot be triggered by a bare POST.
	Confirm bool
}

// ResetAllDataUseCase wipes every ledger table. The wipe runs as one store
// transaction; a failure partway leaves the store exactly as it was.
type ResetAllDataUseCase struct {
	ledgerAdmin adapter.LedgerAdmin
}

// NewResetAllDataUseCase creates a new ResetAllDataUseCase instance.
func NewResetAllDataUseCase(ledgerAdmin adapter.LedgerAdmin) *ResetAllDataUseCase {
	return &ResetAllDataUseCase{
		ledgerAdmin: ledgerAdmin,
	}
}

// Execute performs the reset.
func (uc *ResetAllDataUseCase) Execute(ctx context.Context, input ResetAllDataInput) error {
	if !input.Confirm {
		return domainerror.NewAdminError(
			domainerror.ErrCodeResetNotConfirmed,
			"reset requires explicit confirmation",
			domainerror.ErrResetNotConfirmed,
		)
	}

	if err := uc.ledgerAdmin.ResetAll(ctx); err != nil {
		return fmt.Errorf("failed to reset ledger data: %w", err)
	}

	slog.Warn("All ledger data wiped")
	return nil
}
