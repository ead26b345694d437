// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt row in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Create(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByClient retrieves all debts for a client, newest date first.
func (r *debtRepository) FindByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	result := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&debtModels)
	if result.Error != nil {
		return nil, result.Error
	}

	debts := make([]*entity.Debt, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntity()
	}
	return debts, nil
}

// SummaryForClient computes total debt, total repaid, and the derived
// outstanding balance for a client. SUM over no rows yields zero.
func (r *debtRepository) SummaryForClient(ctx context.Context, clientID uuid.UUID) (*entity.ClientDebtSummary, error) {
	summary, err := clientDebtSummary(r.db.WithContext(ctx), clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute debt summary: %w", err)
	}
	return summary, nil
}

// clientDebtSummary is shared with the repayment repository, which needs the
// same computation inside its validation transaction.
func clientDebtSummary(db *gorm.DB, clientID uuid.UUID) (*entity.ClientDebtSummary, error) {
	var row struct {
		TotalDebt   decimal.Decimal `gorm:"column:total_debt"`
		TotalRepaid decimal.Decimal `gorm:"column:total_repaid"`
	}

	err := db.Raw(`
		SELECT
			COALESCE((SELECT SUM(amount) FROM debts WHERE client_id = ?), 0) AS total_debt,
			COALESCE((SELECT SUM(amount) FROM repayments WHERE client_id = ?), 0) AS total_repaid
	`, clientID, clientID).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &entity.ClientDebtSummary{
		TotalDebt:   row.TotalDebt,
		TotalRepaid: row.TotalRepaid,
		Outstanding: row.TotalDebt.Sub(row.TotalRepaid),
	}, nil
}

// UpdateAmountChecked updates the amount of an existing debt after verifying
// the client's debt total still covers everything already repaid, all inside
// one transaction. On postgres the client row is locked FOR UPDATE so
// concurrent mutations for the same client serialize; sqlite's single-writer
// model gives the same guarantee without the clause.
func (r *debtRepository) UpdateAmountChecked(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debtModel, err := lockDebtAndClient(tx, id)
		if err != nil {
			return err
		}

		summary, err := clientDebtSummary(tx, debtModel.ClientID)
		if err != nil {
			return err
		}

		// TotalDebt with this row's amount swapped for the new one must
		// still cover everything the client has repaid.
		newTotal := summary.TotalDebt.Sub(debtModel.Amount).Add(amount)
		if newTotal.LessThan(summary.TotalRepaid) {
			return debtTotalBelowRepaid(summary.TotalRepaid)
		}

		return tx.Model(&model.DebtModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"amount":     amount,
				"updated_at": time.Now().UTC(),
			}).Error
	})
}

// DeleteChecked removes a debt row unless losing it would drop the client's
// debt total below what has already been repaid. Check and delete share one
// transaction, with the same locking discipline as UpdateAmountChecked.
func (r *debtRepository) DeleteChecked(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		debtModel, err := lockDebtAndClient(tx, id)
		if err != nil {
			return err
		}

		summary, err := clientDebtSummary(tx, debtModel.ClientID)
		if err != nil {
			return err
		}

		if summary.TotalDebt.Sub(debtModel.Amount).LessThan(summary.TotalRepaid) {
			return debtTotalBelowRepaid(summary.TotalRepaid)
		}

		return tx.Where("id = ?", id).Delete(&model.DebtModel{}).Error
	})
}

// lockDebtAndClient loads the debt row and, on postgres, locks the owning
// client row FOR UPDATE so the summary cannot shift under the caller.
func lockDebtAndClient(tx *gorm.DB, id uuid.UUID) (*model.DebtModel, error) {
	var debtModel model.DebtModel
	if err := tx.Where("id = ?", id).First(&debtModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, err
	}

	if tx.Dialector.Name() == "postgres" {
		var clientModel model.ClientModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", debtModel.ClientID).
			First(&clientModel).Error
		if err != nil {
			return nil, err
		}
	}

	return &debtModel, nil
}

func debtTotalBelowRepaid(totalRepaid decimal.Decimal) error {
	return domainerror.NewRepaymentError(
		domainerror.ErrCodeRepaymentExceedsDebt,
		fmt.Sprintf("client has already repaid %s; debt total cannot drop below that", totalRepaid),
		domainerror.ErrRepaymentExceedsDebt,
	)
}
