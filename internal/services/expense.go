package services

import (
	"time"

	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseService struct {
	db *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{db: db}
}

// ExpenseWithCategory is an expense enriched with the current name and
// color of its category. The join happens at read time, renaming a
// category retroactively relabels its historical expenses.
type ExpenseWithCategory struct {
	models.Expense
	CategoryName  string `json:"categoryName" example:"Groceries"`
	CategoryColor string `json:"categoryColor" example:"#3b82f6"`
}

// ListForMonth returns all expenses of the owner dated within the
// half-open interval [first day of month, first day of next month),
// most recent first, enriched with their category.
//
// Archived categories still resolve, old expenses keep their label.
func (s *ExpenseService) ListForMonth(owner uuid.UUID, month types.Month) ([]ExpenseWithCategory, error) {
	start := month.FirstDay()
	end := month.AddDate(0, 1).FirstDay()

	var expenses []models.Expense
	err := s.db.
		Preload("Category").
		Where("owner_id = ? AND date >= ? AND date < ?", owner, start, end).
		Order("date DESC, created_at DESC").
		Find(&expenses).
		Error
	if err != nil {
		return nil, err
	}

	enriched := make([]ExpenseWithCategory, 0, len(expenses))
	for _, expense := range expenses {
		enriched = append(enriched, ExpenseWithCategory{
			Expense:       expense,
			CategoryName:  expense.Category.Name,
			CategoryColor: expense.Category.Color,
		})
	}

	return enriched, nil
}

// Create adds an expense and returns the refreshed list for the month
// the expense falls into. The date defaults to the current day.
func (s *ExpenseService) Create(owner, categoryID uuid.UUID, amount decimal.Decimal, description string, date time.Time) ([]ExpenseWithCategory, error) {
	expense := models.Expense{
		OwnerID:     owner,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	err := s.db.Create(&expense).Error
	if err != nil {
		return nil, err
	}

	return s.ListForMonth(owner, types.MonthOf(expense.Date))
}

// Update mutates an expense in place. Category, amount, description and
// date are all mutable. Returns the refreshed list for the month the
// updated expense falls into.
func (s *ExpenseService) Update(owner, id, categoryID uuid.UUID, amount decimal.Decimal, description string, date time.Time) ([]ExpenseWithCategory, error) {
	var expense models.Expense
	err := s.db.First(&expense, "id = ? AND owner_id = ?", id, owner).Error
	if err != nil {
		return nil, err
	}

	expense.CategoryID = categoryID
	expense.Amount = amount
	expense.Description = description
	expense.Date = date

	err = s.db.Save(&expense).Error
	if err != nil {
		return nil, err
	}

	return s.ListForMonth(owner, types.MonthOf(expense.Date))
}

// Delete removes an expense for good and returns the refreshed list for
// the current month.
func (s *ExpenseService) Delete(owner, id uuid.UUID) ([]ExpenseWithCategory, error) {
	var expense models.Expense
	err := s.db.First(&expense, "id = ? AND owner_id = ?", id, owner).Error
	if err != nil {
		return nil, err
	}

	err = s.db.Delete(&expense).Error
	if err != nil {
		return nil, err
	}

	return s.ListForMonth(owner, types.MonthOf(time.Now().In(time.UTC)))
}
