package v1

import (
	"github.com/budgetbook/backend/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name          string          `json:"name" example:"Groceries" default:""`       // Name of the category
	DefaultBudget decimal.Decimal `json:"defaultBudget" example:"250"`               // Amount pre-filled when the category is planned in a fresh month
	Color         string          `json:"color" example:"#22c55e" default:"#3b82f6"` // Display color as a hex triplet
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                                          // List of active Categories
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
