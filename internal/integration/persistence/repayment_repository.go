package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/persistence/model"
)

// repaymentRepository implements the adapter.RepaymentRepository interface.
type repaymentRepository struct {
	db *gorm.DB
}

// NewRepaymentRepository creates a new repayment repository instance.
func NewRepaymentRepository(db *gorm.DB) adapter.RepaymentRepository {
	return &repaymentRepository{
		db: db,
	}
}

// CreateChecked validates the repayment against the client's outstanding debt
// and inserts it, all inside a single transaction. On postgres the client row
// is locked FOR UPDATE so concurrent repayments for the same client serialize;
// sqlite's single-writer model gives the same guarantee without the clause.
func (r *repaymentRepository) CreateChecked(ctx context.Context, repayment *entity.Repayment) (decimal.Decimal, error) {
	var remaining decimal.Decimal

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		clientQuery := tx.Model(&model.ClientModel{})
		if tx.Dialector.Name() == "postgres" {
			clientQuery = clientQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var clientModel model.ClientModel
		if err := clientQuery.Where("id = ?", repayment.ClientID).First(&clientModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrClientNotFound
			}
			return err
		}

		summary, err := clientDebtSummary(tx, repayment.ClientID)
		if err != nil {
			return err
		}

		if !summary.Outstanding.IsPositive() {
			return domainerror.NewRepaymentError(
				domainerror.ErrCodeNoOutstandingDebt,
				"client has no outstanding debt",
				domainerror.ErrNoOutstandingDebt,
			)
		}
		if repayment.Amount.GreaterThan(summary.Outstanding) {
			return domainerror.NewRepaymentError(
				domainerror.ErrCodeRepaymentExceedsDebt,
				fmt.Sprintf("repayment %s exceeds outstanding debt %s", repayment.Amount, summary.Outstanding),
				domainerror.ErrRepaymentExceedsDebt,
			)
		}

		if err := tx.Create(model.RepaymentFromEntity(repayment)).Error; err != nil {
			return err
		}

		remaining = summary.Outstanding.Sub(repayment.Amount)
		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return remaining, nil
}

// FindByID retrieves a repayment by its ID.
func (r *repaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Repayment, error) {
	var repaymentModel model.RepaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&repaymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRepaymentNotFound
		}
		return nil, result.Error
	}
	return repaymentModel.ToEntity(), nil
}

// FindByClient retrieves all repayments for a client, newest date first.
func (r *repaymentRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Repayment, error) {
	var repaymentModels []model.RepaymentModel
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&repaymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	repayments := make([]*entity.Repayment, len(repaymentModels))
	for i := range repaymentModels {
		repayments[i] = repaymentModels[i].ToEntity()
	}
	return repayments, nil
}

// Delete removes a repayment row.
func (r *repaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RepaymentModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRepaymentNotFound
	}
	return nil
}

// ledgerAdmin implements the adapter.LedgerAdmin interface.
type ledgerAdmin struct {
	db *gorm.DB
}

// NewLedgerAdmin creates a new ledger admin instance.
func NewLedgerAdmin(db *gorm.DB) adapter.LedgerAdmin {
	return &ledgerAdmin{
		db: db,
	}
}

// ResetAll wipes all five ledger tables in one transaction. Referencing
// tables go first so foreign keys never dangle mid-transaction.
func (a *ledgerAdmin) ResetAll(ctx context.Context) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{
			&model.RepaymentModel{},
			&model.DebtModel{},
			&model.BudgetModel{},
			&model.ExpenseModel{},
			&model.ClientModel{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
