// Package reports is the aggregation engine of the budgetbook backend.
//
// All functions are pure: they combine entity snapshots passed in by
// the caller and never read or mutate shared state. Missing data is a
// valid steady state, empty inputs produce zeroed results, not errors.
package reports

import (
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryStatus is the spent-vs-planned state of one category for one
// month.
type CategoryStatus struct {
	CategoryID  uuid.UUID       `json:"categoryId"`                 // ID of the category
	Name        string          `json:"name" example:"Groceries"`   // Current name of the category
	Color       string          `json:"color" example:"#3b82f6"`    // Current color of the category
	Planned     decimal.Decimal `json:"planned" example:"250"`      // Planned amount, 0 if no budget item exists
	Spent       decimal.Decimal `json:"spent" example:"180.50"`     // Sum of the month's expenses for the category
	Remaining   decimal.Decimal `json:"remaining" example:"69.50"`  // Planned minus spent, negative when overspent
	PercentUsed decimal.Decimal `json:"percentUsed" example:"72.2"` // Spent share of planned in percent, not capped
	Progress    decimal.Decimal `json:"progress" example:"72.2"`    // PercentUsed capped at 100, drives bounded indicators
}

// CategoryStatuses computes the per-category status for all active
// categories of a month.
func CategoryStatuses(categories []models.Category, items []models.BudgetItem, expenses []models.Expense) []CategoryStatus {
	planned := make(map[uuid.UUID]decimal.Decimal, len(items))
	for _, item := range items {
		planned[item.CategoryID] = item.PlannedAmount
	}

	spent := sumByCategory(expenses)

	statuses := make([]CategoryStatus, 0, len(categories))
	for _, category := range categories {
		status := CategoryStatus{
			CategoryID: category.ID,
			Name:       category.Name,
			Color:      category.Color,
			Planned:    planned[category.ID],
			Spent:      spent[category.ID],
		}
		status.Remaining = status.Planned.Sub(status.Spent)

		if status.Planned.IsPositive() {
			status.PercentUsed = status.Spent.Div(status.Planned).Mul(hundred)
		}

		status.Progress = status.PercentUsed
		if status.Progress.GreaterThan(hundred) {
			status.Progress = hundred
		}

		statuses = append(statuses, status)
	}

	return statuses
}

// Summary is the monthly roll-up of plans against actual spending.
type Summary struct {
	Income          decimal.Decimal `json:"income" example:"3500"`         // Income of the monthly budget
	TotalPlanned    decimal.Decimal `json:"totalPlanned" example:"3200"`   // Sum of all planned amounts
	TotalSpent      decimal.Decimal `json:"totalSpent" example:"2800"`     // Sum of all expenses in the month
	RemainingBudget decimal.Decimal `json:"remainingBudget" example:"400"` // TotalPlanned minus TotalSpent
	Unplanned       decimal.Decimal `json:"unplanned" example:"300"`       // Income not assigned to any category
}

// Summarize computes the monthly summary from the budget's income, its
// items and the month's expenses.
func Summarize(income decimal.Decimal, items []models.BudgetItem, expenses []models.Expense) Summary {
	s := Summary{Income: income}

	for _, item := range items {
		s.TotalPlanned = s.TotalPlanned.Add(item.PlannedAmount)
	}

	for _, expense := range expenses {
		s.TotalSpent = s.TotalSpent.Add(expense.Amount)
	}

	s.RemainingBudget = s.TotalPlanned.Sub(s.TotalSpent)
	s.Unplanned = income.Sub(s.TotalPlanned)

	return s
}

// Savings separates real spending from money moved to savings
// categories.
type Savings struct {
	TotalSpent   decimal.Decimal `json:"totalSpent" example:"3000"`   // All expenses of the month
	SavingsSpent decimal.Decimal `json:"savingsSpent" example:"500"`  // Expenses in savings categories
	RealExpenses decimal.Decimal `json:"realExpenses" example:"2500"` // TotalSpent without savings
	Leftover     decimal.Decimal `json:"leftover" example:"500"`      // Income minus TotalSpent
	TotalSaved   decimal.Decimal `json:"totalSaved" example:"1000"`   // Leftover plus SavingsSpent
	SavingsRate  decimal.Decimal `json:"savingsRate" example:"28.57"` // TotalSaved share of income in percent, may be negative
	DisplayRate  decimal.Decimal `json:"displayRate" example:"28.57"` // SavingsRate floored at 0 for display
}

// SavingsBreakdown computes the savings figures for one month. The
// categories snapshot is used to decide which expenses count as saving.
func SavingsBreakdown(income decimal.Decimal, categories []models.Category, expenses []models.Expense) Savings {
	savingsCategories := make(map[uuid.UUID]bool)
	for _, category := range categories {
		if IsSavingsCategory(category.Name) {
			savingsCategories[category.ID] = true
		}
	}

	var s Savings
	for _, expense := range expenses {
		s.TotalSpent = s.TotalSpent.Add(expense.Amount)
		if savingsCategories[expense.CategoryID] {
			s.SavingsSpent = s.SavingsSpent.Add(expense.Amount)
		}
	}

	s.RealExpenses = s.TotalSpent.Sub(s.SavingsSpent)
	s.Leftover = income.Sub(s.TotalSpent)
	s.TotalSaved = s.Leftover.Add(s.SavingsSpent)

	if income.IsPositive() {
		s.SavingsRate = s.TotalSaved.Div(income).Mul(hundred)
	}

	s.DisplayRate = s.SavingsRate
	if s.DisplayRate.IsNegative() {
		s.DisplayRate = decimal.Zero
	}

	return s
}

// ComparisonRow pairs the plan for a category with its actual spend.
type ComparisonRow struct {
	CategoryID uuid.UUID       `json:"categoryId"`               // ID of the category
	Name       string          `json:"name" example:"Groceries"` // Current name of the category
	Color      string          `json:"color" example:"#3b82f6"`  // Current color of the category
	Planned    decimal.Decimal `json:"planned" example:"250"`    // Planned amount
	Spent      decimal.Decimal `json:"spent" example:"180.50"`   // Actual spend
}

// Comparison returns planned-vs-actual rows for every category with a
// positive plan. Items with a plan of 0 have nothing to compare
// against and are left out.
func Comparison(categories []models.Category, items []models.BudgetItem, expenses []models.Expense) []ComparisonRow {
	names := make(map[uuid.UUID]models.Category, len(categories))
	for _, category := range categories {
		names[category.ID] = category
	}

	spent := sumByCategory(expenses)

	rows := make([]ComparisonRow, 0, len(items))
	for _, item := range items {
		if !item.PlannedAmount.IsPositive() {
			continue
		}

		category := names[item.CategoryID]
		rows = append(rows, ComparisonRow{
			CategoryID: item.CategoryID,
			Name:       category.Name,
			Color:      category.Color,
			Planned:    item.PlannedAmount,
			Spent:      spent[item.CategoryID],
		})
	}

	return rows
}

// TrendPoint is the expense total of one month in a trend series.
type TrendPoint struct {
	Month         types.Month     `json:"month" example:"2025-06"`      // The month the point is for
	TotalExpenses decimal.Decimal `json:"totalExpenses" example:"3000"` // All expenses of the month
	RealExpenses  decimal.Decimal `json:"realExpenses" example:"2500"`  // Expenses without savings categories
}

// TrendPointFor computes the trend point of a single month from that
// month's own expense set.
func TrendPointFor(month types.Month, categories []models.Category, expenses []models.Expense) TrendPoint {
	savings := SavingsBreakdown(decimal.Zero, categories, expenses)

	return TrendPoint{
		Month:         month,
		TotalExpenses: savings.TotalSpent,
		RealExpenses:  savings.RealExpenses,
	}
}

// BreakdownRow maps the current name of every category that appears
// anywhere in the window to its spend in one month.
type BreakdownRow struct {
	Month  types.Month                `json:"month" example:"2025-06"` // The month the row is for
	Totals map[string]decimal.Decimal `json:"totals"`                  // Spend per category name, 0 for months without spend
}

// HistoricalBreakdown produces one row per month with a stable key set:
// every category that has at least one expense anywhere in the window
// appears in every row, with 0 where it had no spend. Names and colors
// come from the current category snapshot, so renames apply
// retroactively. The months are expected oldest-first and the rows keep
// that order.
func HistoricalBreakdown(months []types.Month, categories []models.Category, expensesByMonth map[types.Month][]models.Expense) []BreakdownRow {
	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	// Union of category IDs seen anywhere in the window
	seen := make(map[uuid.UUID]bool)
	for _, expenses := range expensesByMonth {
		for _, expense := range expenses {
			seen[expense.CategoryID] = true
		}
	}

	keyFor := func(id uuid.UUID) string {
		if name, ok := names[id]; ok {
			return name
		}
		// Reference to a category that no longer resolves
		return id.String()
	}

	rows := make([]BreakdownRow, 0, len(months))
	for _, month := range months {
		totals := make(map[string]decimal.Decimal, len(seen))
		for id := range seen {
			totals[keyFor(id)] = decimal.Zero
		}

		for _, expense := range expensesByMonth[month] {
			key := keyFor(expense.CategoryID)
			totals[key] = totals[key].Add(expense.Amount)
		}

		rows = append(rows, BreakdownRow{Month: month, Totals: totals})
	}

	return rows
}

func sumByCategory(expenses []models.Expense) map[uuid.UUID]decimal.Decimal {
	sums := make(map[uuid.UUID]decimal.Decimal)
	for _, expense := range expenses {
		sums[expense.CategoryID] = sums[expense.CategoryID].Add(expense.Amount)
	}
	return sums
}
