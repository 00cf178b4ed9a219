package v1

import (
	"time"

	"github.com/budgetbook/backend/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	CategoryID  uuid.UUID       `json:"categoryId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the category the expense belongs to
	Amount      decimal.Decimal `json:"amount" example:"13.37"`                                    // Amount spent, must be positive
	Description string          `json:"description" example:"Weekly groceries" default:""`         // Free-form description
	Date        time.Time       `json:"date" example:"2025-06-14T00:00:00Z"`                       // Day of the expense, defaults to today
}

type ExpenseListResponse struct {
	Data  []services.ExpenseWithCategory `json:"data"`                                                          // Expenses of the month, most recent first
	Error *string                        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
