// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
	"github.com/ekajy/backend/internal/integration/persistence/model"
)

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Create(clientModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindAll retrieves all clients ordered by name.
func (r *clientRepository) FindAll(ctx context.Context) ([]*entity.Client, error) {
	var clientModels []model.ClientModel
	result := r.db.WithContext(ctx).Order("name").Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToEntity()
	}
	return clients, nil
}

// Update updates an existing client.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]interface{}{
			"name":       clientModel.Name,
			"updated_at": clientModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClientNotFound
	}
	return nil
}

// Delete removes a client. The reference check and the delete run in one
// transaction so a budget, debt, or repayment inserted concurrently cannot
// slip past the block-on-referenced policy.
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		refs, err := countReferences(tx, id)
		if err != nil {
			return err
		}
		if refs > 0 {
			return domainerror.ErrClientHasRecords
		}

		result := tx.Where("id = ?", id).Delete(&model.ClientModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrClientNotFound
		}
		return nil
	})
}

// CountReferences counts budgets, debts, and repayments referencing the client.
func (r *clientRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	return countReferences(r.db.WithContext(ctx), id)
}

func countReferences(db *gorm.DB, id uuid.UUID) (int64, error) {
	var total int64
	for _, m := range []interface{}{&model.BudgetModel{}, &model.DebtModel{}, &model.RepaymentModel{}} {
		var count int64
		if err := db.Model(m).Where("client_id = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}
