package services

import (
	"errors"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MonthlyBudgetService struct {
	db *gorm.DB
}

func NewMonthlyBudgetService(db *gorm.DB) *MonthlyBudgetService {
	return &MonthlyBudgetService{db: db}
}

// BudgetItemWithCategory is a budget item enriched with the current
// name and color of its category.
type BudgetItemWithCategory struct {
	models.BudgetItem
	CategoryName  string `json:"categoryName" example:"Groceries"`
	CategoryColor string `json:"categoryColor" example:"#3b82f6"`
}

// GetForMonth returns the monthly budget for the month together with
// its budget items. A month without a budget is a legitimate steady
// state, not an error: the budget is nil and the item list empty.
func (s *MonthlyBudgetService) GetForMonth(owner uuid.UUID, month types.Month) (*models.MonthlyBudget, []BudgetItemWithCategory, error) {
	var budget models.MonthlyBudget
	err := s.db.First(&budget, "owner_id = ? AND month = ?", owner, month).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			return nil, []BudgetItemWithCategory{}, nil
		}
		return nil, nil, err
	}

	items, err := s.items(budget.ID)
	if err != nil {
		return nil, nil, err
	}

	return &budget, items, nil
}

// Create adds a monthly budget. A second budget for the same owner and
// month fails with ErrMonthlyBudgetMonthNotUnique.
func (s *MonthlyBudgetService) Create(owner uuid.UUID, month types.Month, income decimal.Decimal) (models.MonthlyBudget, error) {
	budget := models.MonthlyBudget{
		OwnerID: owner,
		Month:   month,
		Income:  income,
	}

	err := s.db.Create(&budget).Error
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	return budget, nil
}

// GetOrCreate returns the budget for the month, creating one with an
// income of 0 when none exists yet.
func (s *MonthlyBudgetService) GetOrCreate(owner uuid.UUID, month types.Month) (models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	err := s.db.First(&budget, "owner_id = ? AND month = ?", owner, month).Error
	if err == nil {
		return budget, nil
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return models.MonthlyBudget{}, err
	}

	return s.Create(owner, month, decimal.Zero)
}

// UpdateIncome sets the income of an existing budget. Budget items are
// independent of the income, nothing is recomputed or cascaded.
func (s *MonthlyBudgetService) UpdateIncome(owner, budgetID uuid.UUID, income decimal.Decimal) (models.MonthlyBudget, error) {
	var budget models.MonthlyBudget
	err := s.db.First(&budget, "id = ? AND owner_id = ?", budgetID, owner).Error
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	budget.Income = income

	err = s.db.Save(&budget).Error
	if err != nil {
		return models.MonthlyBudget{}, err
	}

	return budget, nil
}

// SetBudgetForCategory upserts the planned amount for a category in a
// budget and returns the refreshed item list. Negative amounts are
// clamped to 0.
func (s *MonthlyBudgetService) SetBudgetForCategory(owner, budgetID, categoryID uuid.UUID, amount decimal.Decimal) ([]BudgetItemWithCategory, error) {
	// The budget must exist and belong to the owner
	var budget models.MonthlyBudget
	err := s.db.First(&budget, "id = ? AND owner_id = ?", budgetID, owner).Error
	if err != nil {
		return nil, err
	}

	err = models.UpsertBudgetItem(s.db, models.BudgetItem{
		MonthlyBudgetID: budget.ID,
		CategoryID:      categoryID,
		PlannedAmount:   amount,
	})
	if err != nil {
		return nil, err
	}

	return s.items(budget.ID)
}

// ListAvailableMonths returns the distinct months that have a monthly
// budget, most recent first. Drives month pickers and the trend window.
func (s *MonthlyBudgetService) ListAvailableMonths(owner uuid.UUID) ([]types.Month, error) {
	var months []types.Month

	err := s.db.
		Model(&models.MonthlyBudget{}).
		Where("owner_id = ?", owner).
		Order("month DESC").
		Pluck("month", &months).
		Error
	if err != nil {
		return nil, err
	}

	return months, nil
}

func (s *MonthlyBudgetService) items(budgetID uuid.UUID) ([]BudgetItemWithCategory, error) {
	var items []models.BudgetItem
	err := s.db.
		Preload("Category").
		Where("monthly_budget_id = ?", budgetID).
		Order("created_at ASC").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}

	enriched := make([]BudgetItemWithCategory, 0, len(items))
	for _, item := range items {
		enriched = append(enriched, BudgetItemWithCategory{
			BudgetItem:    item,
			CategoryName:  item.Category.Name,
			CategoryColor: item.Category.Color,
		})
	}

	return enriched, nil
}
