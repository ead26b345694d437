// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/domain/entity"
)

// RepaymentModel represents the repayments table in the database.
type RepaymentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	DebtID      *uuid.UUID      `gorm:"type:uuid;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`

	Client *ClientModel `gorm:"foreignKey:ClientID;references:ID"`
	Debt   *DebtModel   `gorm:"foreignKey:DebtID;references:ID"`
}

// TableName returns the table name for the RepaymentModel.
func (RepaymentModel) TableName() string {
	return "repayments"
}

// ToEntity converts a RepaymentModel to a domain Repayment entity.
func (m *RepaymentModel) ToEntity() *entity.Repayment {
	return &entity.Repayment{
		ID:          m.ID,
		ClientID:    m.ClientID,
		DebtID:      m.DebtID,
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

// RepaymentFromEntity creates a RepaymentModel from a domain Repayment entity.
func RepaymentFromEntity(repayment *entity.Repayment) *RepaymentModel {
	return &RepaymentModel{
		ID:          repayment.ID,
		ClientID:    repayment.ClientID,
		DebtID:      repayment.DebtID,
		Amount:      repayment.Amount,
		Description: repayment.Description,
		Date:        repayment.Date,
		CreatedAt:   repayment.CreatedAt,
	}
}
