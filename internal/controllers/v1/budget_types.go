package v1

import (
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/services"
	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Month  types.Month     `json:"month" example:"2025-06"` // Month the budget is for in YYYY-MM format
	Income decimal.Decimal `json:"income" example:"3500"`   // Expected income for the month
}

// IncomeEditable is the body for updating the income of a budget
type IncomeEditable struct {
	Income decimal.Decimal `json:"income" example:"3800"` // Expected income for the month
}

// BudgetItemEditable is the body for setting the planned amount of a category
type BudgetItemEditable struct {
	CategoryID uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the planned amount is for
	Amount     decimal.Decimal `json:"amount" example:"250"`                                      // Planned amount, negative values are clamped to 0
}

// MonthBudget is a monthly budget with its items. The budget is nil
// for months that have no budget yet.
type MonthBudget struct {
	Budget *models.MonthlyBudget             `json:"budget"` // The budget of the month, nil when none exists
	Items  []services.BudgetItemWithCategory `json:"items"`  // Planned amounts per category
}

type BudgetResponse struct {
	Data  *MonthBudget `json:"data"`                                                          // The budget of the requested month
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetCreateResponse struct {
	Data  *models.MonthlyBudget `json:"data"`                                                           // The created budget
	Error *string               `json:"error" example:"a monthly budget already exists for this month"` // The error, if any occurred
}

type BudgetItemListResponse struct {
	Data  []services.BudgetItemWithCategory `json:"data"`                                                          // Planned amounts per category
	Error *string                           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MonthListResponse struct {
	Data  []types.Month `json:"data"`                                                           // Months that have a budget, most recent first
	Error *string       `json:"error" example:"there is no monthly budget matching your query"` // The error, if any occurred
}
