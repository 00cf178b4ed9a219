package models_test

import (
	"time"

	"github.com/budgetbook/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseAmountValidation() {
	tests := []struct {
		amount decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrExpenseAmountNotPositive},
		{decimal.Zero, models.ErrExpenseAmountNotPositive},
		{decimal.NewFromFloat(13.37), nil},
	}

	for _, tt := range tests {
		expense := models.Expense{
			OwnerID:    uuid.New(),
			CategoryID: uuid.New(),
			Amount:     tt.amount,
		}

		err := models.DB.Create(&expense).Error
		assert.ErrorIs(suite.T(), err, tt.err)
	}
}

func (suite *TestSuiteStandard) TestExpenseDateDefault() {
	expense := suite.createTestExpense(models.Expense{
		OwnerID:    uuid.New(),
		CategoryID: uuid.New(),
		Amount:     decimal.NewFromFloat(5),
	})

	assert.False(suite.T(), expense.Date.IsZero(), "date must default to the current day")
	assert.Equal(suite.T(), time.UTC, expense.Date.Location())

	hour, minute, second := expense.Date.Clock()
	assert.Zero(suite.T(), hour+minute+second, "date must be normalized to midnight")
}

func (suite *TestSuiteStandard) TestExpenseDateNormalized() {
	date := time.Date(2025, 6, 14, 17, 32, 5, 0, time.UTC)

	expense := suite.createTestExpense(models.Expense{
		OwnerID:    uuid.New(),
		CategoryID: uuid.New(),
		Amount:     decimal.NewFromFloat(5),
		Date:       date,
	})

	assert.Equal(suite.T(), time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), expense.Date)
}
