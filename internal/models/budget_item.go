package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetItem is the planned amount for one category in one monthly budget.
//
// The unique index on (monthly_budget_id, category_id) guarantees that
// setting the plan for the same pair twice updates the existing item
// instead of creating a second one.
type BudgetItem struct {
	DefaultModel
	MonthlyBudgetID uuid.UUID       `json:"monthlyBudgetId" gorm:"uniqueIndex:budget_category"`     // The monthly budget the item belongs to
	MonthlyBudget   MonthlyBudget   `json:"-"`
	CategoryID      uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_category"`          // The category the plan is for
	Category        Category        `json:"-"`
	PlannedAmount   decimal.Decimal `json:"plannedAmount" gorm:"type:DECIMAL(20,8)" example:"250"` // The amount planned for the category
}

func (b *BudgetItem) BeforeSave(_ *gorm.DB) error {
	// Negative input is clamped instead of rejected since UI inputs
	// can transiently be blank or invalid while typing.
	if b.PlannedAmount.IsNegative() {
		b.PlannedAmount = decimal.Zero
	}

	return nil
}

// UpsertBudgetItem writes the planned amount for a (budget, category)
// pair. The write is a single atomic insert-or-update keyed by the
// unique index, so two concurrent calls can not create duplicate items.
func UpsertBudgetItem(db *gorm.DB, item BudgetItem) error {
	if item.PlannedAmount.IsNegative() {
		item.PlannedAmount = decimal.Zero
	}

	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "monthly_budget_id"}, {Name: "category_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"planned_amount": item.PlannedAmount,
			"updated_at":     time.Now().In(time.UTC),
		}),
	}).Create(&item).Error
}
