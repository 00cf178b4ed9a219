package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultColor is used for categories that are created without a color.
const DefaultColor = "#3b82f6"

// Category represents a spending category.
//
// Categories are never deleted, only archived, so that expenses and
// budget items referencing them stay resolvable.
type Category struct {
	DefaultModel
	OwnerID       uuid.UUID       `json:"ownerId" gorm:"index"`                                  // The owner the category belongs to
	Name          string          `json:"name" example:"Groceries"`                              // Name of the category
	DefaultBudget decimal.Decimal `json:"defaultBudget" gorm:"type:DECIMAL(20,8)" example:"250"` // Suggested planned amount for new months
	Color         string          `json:"color" example:"#3b82f6"`                               // Hex color used when rendering the category
	Archived      bool            `json:"archived" example:"true" default:"false"`               // Is the category archived?
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	if c.DefaultBudget.IsNegative() {
		return ErrCategoryDefaultBudgetSign
	}

	if c.Color == "" {
		c.Color = DefaultColor
	}

	return nil
}
