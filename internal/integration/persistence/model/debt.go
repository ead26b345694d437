// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity.
func (m *DebtModel) ToEntity() *entity.Debt {
	return &entity.Debt{
		ID:          m.ID,
		ClientID:    m.ClientID,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(debt *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:          debt.ID,
		ClientID:    debt.ClientID,
		Amount:      debt.Amount,
		Description: debt.Description,
		Date:        debt.Date,
		CreatedAt:   debt.CreatedAt,
		UpdatedAt:   debt.UpdatedAt,
	}
}
