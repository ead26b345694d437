// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ekajy/backend/internal/application/adapter"
	"github.com/ekajy/backend/internal/domain/entity"
	domainerror "github.com/ekajy/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	Date        time.Time
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase handles expense creation logic. Expenses never reference
// a client.
type AddExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(expenseRepo adapter.ExpenseRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute performs the expense creation.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	expense := entity.NewExpense(input.Amount, input.Description, input.Date)
	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &AddExpenseOutput{Expense: expense}, nil
}
