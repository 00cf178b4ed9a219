// Package services implements the operations the UI collaborator calls
// into. Every service is a thin, stateless wrapper around the database,
// mutating operations return a refreshed snapshot so callers never
// observe a stale list after their own write.
package services

import (
	"github.com/budgetbook/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns the active categories of the owner in creation order.
// Archived categories are excluded.
func (s *CategoryService) List(owner uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	err := s.db.
		Where("owner_id = ? AND archived = ?", owner, false).
		Order("created_at ASC").
		Find(&categories).
		Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// All returns every category of the owner, archived ones included.
// Used to resolve names and colors for historical references.
func (s *CategoryService) All(owner uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	err := s.db.
		Where("owner_id = ?", owner).
		Order("created_at ASC").
		Find(&categories).
		Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Create adds a new active category and returns the refreshed list.
func (s *CategoryService) Create(owner uuid.UUID, name string, defaultBudget decimal.Decimal, color string) ([]models.Category, error) {
	category := models.Category{
		OwnerID:       owner,
		Name:          name,
		DefaultBudget: defaultBudget,
		Color:         color,
	}

	err := s.db.Create(&category).Error
	if err != nil {
		return nil, err
	}

	return s.List(owner)
}

// Update mutates name, default budget and color of a category in place.
// The archived flag is not touched. Returns the refreshed list.
func (s *CategoryService) Update(owner, id uuid.UUID, name string, defaultBudget decimal.Decimal, color string) ([]models.Category, error) {
	var category models.Category
	err := s.db.First(&category, "id = ? AND owner_id = ?", id, owner).Error
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.DefaultBudget = defaultBudget
	category.Color = color

	err = s.db.Save(&category).Error
	if err != nil {
		return nil, err
	}

	return s.List(owner)
}

// SoftDelete archives a category. Expenses and budget items referencing
// it are left untouched, the category only disappears from pickers.
func (s *CategoryService) SoftDelete(owner, id uuid.UUID) ([]models.Category, error) {
	var category models.Category
	err := s.db.First(&category, "id = ? AND owner_id = ?", id, owner).Error
	if err != nil {
		return nil, err
	}

	category.Archived = true

	err = s.db.Save(&category).Error
	if err != nil {
		return nil, err
	}

	return s.List(owner)
}
