package models

import (
	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyBudget holds the income for one month of one owner.
//
// There is at most one monthly budget per owner and month, enforced by
// a unique index.
type MonthlyBudget struct {
	DefaultModel
	OwnerID uuid.UUID       `json:"ownerId" gorm:"uniqueIndex:owner_month"`                 // The owner the budget belongs to
	Month   types.Month     `json:"month" gorm:"uniqueIndex:owner_month" example:"2025-06"` // The month the budget is for
	Income  decimal.Decimal `json:"income" gorm:"type:DECIMAL(20,8)" example:"3500"`        // The income available in the month
}

func (m *MonthlyBudget) BeforeSave(_ *gorm.DB) error {
	if m.Month.IsZero() {
		return ErrMonthZero
	}

	if m.Income.IsNegative() {
		return ErrMonthlyBudgetIncomeSign
	}

	return nil
}
