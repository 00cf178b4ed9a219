package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending entry.
//
// The category is a reference, not an ownership: the category may be
// archived while old expenses still point to it.
type Expense struct {
	DefaultModel
	OwnerID     uuid.UUID       `json:"ownerId" gorm:"index"`                             // The owner the expense belongs to
	CategoryID  uuid.UUID       `json:"categoryId" gorm:"index"`                          // The category the expense is booked on
	Category    Category        `json:"-"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"13.37"` // The amount spent, always positive
	Description string          `json:"description,omitempty" example:"Weekly groceries"` // Free text
	Date        time.Time       `json:"date" example:"2025-06-14T00:00:00Z"`              // The day the money was spent
}

// BeforeSave sets the timezone for the Date to UTC and defaults it to
// the current day.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Amount.IsZero() || e.Amount.IsNegative() {
		return ErrExpenseAmountNotPositive
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	// Only the day matters for month assignment
	year, month, day := e.Date.Date()
	e.Date = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return nil
}

// AfterFind updates the timestamp to use UTC as
// timezone, not +0000. Yes, this is different.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}
