package services_test

import (
	"time"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetGetForMonthAbsent() {
	t := suite.T()

	budget, items, err := suite.budgets.GetForMonth(uuid.New(), types.NewMonth(2025, time.June))
	require.Nil(t, err, "a month without a budget is not an error")
	assert.Nil(t, budget)
	assert.Empty(t, items)
}

func (suite *TestSuiteStandard) TestBudgetCreateAndGet() {
	t := suite.T()
	owner := uuid.New()
	month := types.NewMonth(2025, time.June)

	created := suite.createTestBudget(owner, month, 3500)

	budget, items, err := suite.budgets.GetForMonth(owner, month)
	require.Nil(t, err)
	require.NotNil(t, budget)
	assert.Equal(t, created.ID, budget.ID)
	assert.True(t, budget.Income.Equal(decimal.NewFromInt(3500)))
	assert.Empty(t, items, "a fresh budget has no items")
}

func (suite *TestSuiteStandard) TestBudgetCreateConflict() {
	t := suite.T()
	owner := uuid.New()
	month := types.NewMonth(2025, time.June)

	_ = suite.createTestBudget(owner, month, 3500)

	_, err := suite.budgets.Create(owner, month, decimal.Zero)
	assert.ErrorIs(t, err, models.ErrMonthlyBudgetMonthNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetGetOrCreate() {
	t := suite.T()
	owner := uuid.New()
	month := types.NewMonth(2025, time.June)

	first, err := suite.budgets.GetOrCreate(owner, month)
	require.Nil(t, err)
	assert.True(t, first.Income.IsZero(), "a budget created on demand starts with an income of 0")

	second, err := suite.budgets.GetOrCreate(owner, month)
	require.Nil(t, err)
	assert.Equal(t, first.ID, second.ID, "GetOrCreate must be idempotent")
}

func (suite *TestSuiteStandard) TestBudgetUpdateIncome() {
	t := suite.T()
	owner := uuid.New()
	budget := suite.createTestBudget(owner, types.NewMonth(2025, time.June), 3500)

	updated, err := suite.budgets.UpdateIncome(owner, budget.ID, decimal.NewFromInt(3800))
	require.Nil(t, err)
	assert.True(t, updated.Income.Equal(decimal.NewFromInt(3800)))

	_, err = suite.budgets.UpdateIncome(owner, budget.ID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, models.ErrMonthlyBudgetIncomeSign)

	_, err = suite.budgets.UpdateIncome(owner, uuid.New(), decimal.NewFromInt(100))
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSetBudgetForCategoryUpsert() {
	t := suite.T()
	owner := uuid.New()
	budget := suite.createTestBudget(owner, types.NewMonth(2025, time.June), 3500)
	category := suite.createTestCategory(owner, "Groceries")

	items, err := suite.budgets.SetBudgetForCategory(owner, budget.ID, category.ID, decimal.NewFromInt(100))
	require.Nil(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].PlannedAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Groceries", items[0].CategoryName)

	// A second call for the same pair updates, it never duplicates
	items, err = suite.budgets.SetBudgetForCategory(owner, budget.ID, category.ID, decimal.NewFromInt(150))
	require.Nil(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].PlannedAmount.Equal(decimal.NewFromInt(150)))
}

func (suite *TestSuiteStandard) TestSetBudgetForCategoryClampsNegative() {
	t := suite.T()
	owner := uuid.New()
	budget := suite.createTestBudget(owner, types.NewMonth(2025, time.June), 3500)
	category := suite.createTestCategory(owner, "Groceries")

	items, err := suite.budgets.SetBudgetForCategory(owner, budget.ID, category.ID, decimal.NewFromInt(-50))
	require.Nil(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].PlannedAmount.IsZero())
}

func (suite *TestSuiteStandard) TestSetBudgetForCategoryForeignBudget() {
	t := suite.T()
	owner := uuid.New()
	budget := suite.createTestBudget(owner, types.NewMonth(2025, time.June), 3500)

	_, err := suite.budgets.SetBudgetForCategory(uuid.New(), budget.ID, uuid.New(), decimal.NewFromInt(10))
	assert.ErrorIs(t, err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestListAvailableMonths() {
	t := suite.T()
	owner := uuid.New()

	_ = suite.createTestBudget(owner, types.NewMonth(2025, time.March), 0)
	_ = suite.createTestBudget(owner, types.NewMonth(2025, time.May), 0)
	_ = suite.createTestBudget(owner, types.NewMonth(2025, time.April), 0)
	_ = suite.createTestBudget(uuid.New(), types.NewMonth(2025, time.June), 0)

	months, err := suite.budgets.ListAvailableMonths(owner)
	require.Nil(t, err)
	require.Len(t, months, 3, "months of other owners must be invisible")

	// Most recent first
	assert.Equal(t, "2025-05", months[0].String())
	assert.Equal(t, "2025-04", months[1].String())
	assert.Equal(t, "2025-03", months[2].String())
}
