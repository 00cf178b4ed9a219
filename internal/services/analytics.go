package services

import (
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/reports"
	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DefaultTrendWindow is the number of months shown in the expense trend.
const DefaultTrendWindow = 6

// DefaultBreakdownWindow is the number of months in the historical
// per-category breakdown.
const DefaultBreakdownWindow = 12

// AnalyticsService combines the entity services with the aggregation
// engine in the reports package. It holds no state of its own.
type AnalyticsService struct {
	db         *gorm.DB
	categories *CategoryService
	expenses   *ExpenseService
	budgets    *MonthlyBudgetService
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{
		db:         db,
		categories: NewCategoryService(db),
		expenses:   NewExpenseService(db),
		budgets:    NewMonthlyBudgetService(db),
	}
}

// MonthOverview is everything the dashboard renders for one month.
type MonthOverview struct {
	Month      types.Month              `json:"month" example:"2025-06"` // The month the overview is for
	Summary    reports.Summary          `json:"summary"`                 // Totals for the month
	Savings    reports.Savings          `json:"savings"`                 // Savings figures for the month
	Categories []reports.CategoryStatus `json:"categories"`              // Per-category spent vs. planned
	Comparison []reports.ComparisonRow  `json:"comparison"`              // Planned vs. actual for planned categories
}

// MonthOverview computes the dashboard view for one month. A month
// without categories or budget yields zeroed results, "no data yet" is
// not an error.
func (s *AnalyticsService) MonthOverview(owner uuid.UUID, month types.Month) (MonthOverview, error) {
	budget, itemsWithCategory, err := s.budgets.GetForMonth(owner, month)
	if err != nil {
		return MonthOverview{}, err
	}

	categories, err := s.categories.List(owner)
	if err != nil {
		return MonthOverview{}, err
	}

	enriched, err := s.expenses.ListForMonth(owner, month)
	if err != nil {
		return MonthOverview{}, err
	}

	income := decimal.Zero
	if budget != nil {
		income = budget.Income
	}

	items := make([]models.BudgetItem, 0, len(itemsWithCategory))
	for _, item := range itemsWithCategory {
		items = append(items, item.BudgetItem)
	}

	expenses := make([]models.Expense, 0, len(enriched))
	for _, expense := range enriched {
		expenses = append(expenses, expense.Expense)
	}

	return MonthOverview{
		Month:      month,
		Summary:    reports.Summarize(income, items, expenses),
		Savings:    reports.SavingsBreakdown(income, categories, expenses),
		Categories: reports.CategoryStatuses(categories, items, expenses),
		Comparison: reports.Comparison(categories, items, expenses),
	}, nil
}

// Trend computes the expense trend over the most recent months that
// have a budget, oldest first. The per-month reads are independent and
// run concurrently; if any one fails the whole series is unavailable,
// a trend line with silently missing months is worse than an error.
func (s *AnalyticsService) Trend(owner uuid.UUID, window int) ([]reports.TrendPoint, error) {
	months, err := s.window(owner, window)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.All(owner)
	if err != nil {
		return nil, err
	}

	expensesByMonth, err := s.expensesByMonth(owner, months)
	if err != nil {
		return nil, err
	}

	points := make([]reports.TrendPoint, 0, len(months))
	for _, month := range months {
		points = append(points, reports.TrendPointFor(month, categories, expensesByMonth[month]))
	}

	return points, nil
}

// Breakdown computes the historical per-category spend over the most
// recent months that have a budget, oldest first, with a stable key
// set across all rows.
func (s *AnalyticsService) Breakdown(owner uuid.UUID, window int) ([]reports.BreakdownRow, error) {
	months, err := s.window(owner, window)
	if err != nil {
		return nil, err
	}

	categories, err := s.categories.All(owner)
	if err != nil {
		return nil, err
	}

	expensesByMonth, err := s.expensesByMonth(owner, months)
	if err != nil {
		return nil, err
	}

	return reports.HistoricalBreakdown(months, categories, expensesByMonth), nil
}

// window returns the up to `size` most recent available months in
// chronological order. ListAvailableMonths returns them newest first,
// so the slice is reversed before use.
func (s *AnalyticsService) window(owner uuid.UUID, size int) ([]types.Month, error) {
	available, err := s.budgets.ListAvailableMonths(owner)
	if err != nil {
		return nil, err
	}

	if len(available) > size {
		available = available[:size]
	}

	slices.Reverse(available)
	return available, nil
}

// expensesByMonth fetches the expense sets for all months of a window
// as a batch of concurrent reads joined before aggregation.
func (s *AnalyticsService) expensesByMonth(owner uuid.UUID, months []types.Month) (map[types.Month][]models.Expense, error) {
	sets := make([][]models.Expense, len(months))

	var g errgroup.Group
	for i, month := range months {
		i, month := i, month
		g.Go(func() error {
			start := month.FirstDay()
			end := month.AddDate(0, 1).FirstDay()

			var expenses []models.Expense
			err := s.db.
				Where("owner_id = ? AND date >= ? AND date < ?", owner, start, end).
				Find(&expenses).
				Error
			if err != nil {
				return err
			}

			sets[i] = expenses
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	expensesByMonth := make(map[types.Month][]models.Expense, len(months))
	for i, month := range months {
		expensesByMonth[month] = sets[i]
	}

	return expensesByMonth, nil
}
