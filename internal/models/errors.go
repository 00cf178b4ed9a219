package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrCategoryNotFound wraps ErrResourceNotFound so that writes
	// referencing a missing category get the same status as a failed
	// lookup.
	ErrCategoryNotFound = fmt.Errorf("%w category matching your query", ErrResourceNotFound)
)

// Validation errors. These are checked before a write is attempted, a
// failing check never leaves a partial mutation behind.
var (
	ErrCategoryNameEmpty           = errors.New("category names must not be empty")
	ErrCategoryDefaultBudgetSign   = errors.New("the default budget of a category must not be negative")
	ErrMonthlyBudgetIncomeSign     = errors.New("the income of a monthly budget must not be negative")
	ErrMonthlyBudgetMonthNotUnique = errors.New("you can not create multiple monthly budgets for the same month")
	ErrExpenseAmountNotPositive    = errors.New("expense amounts must be larger than zero")
	ErrMonthZero                   = errors.New("the month must be set")
)
