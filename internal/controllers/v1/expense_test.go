package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpensesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		path   string
		allow  string
		status int
	}{
		{"Collection", "", "OPTIONS, GET, POST", http.StatusNoContent},
		{"Detail", "/" + uuid.New().String(), "OPTIONS, GET, PATCH, DELETE", http.StatusNoContent},
		{"Not a valid UUID", "/NotParseableAsUUID", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/expenses%s", tt.path)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

// TestExpensesCreate verifies that the refreshed month list is returned
// on creation.
func (suite *TestSuiteStandard) TestExpensesCreate() {
	owner := uuid.New()
	category := createTestCategory(suite.T(), owner, v1.CategoryEditable{Name: "Groceries"}).Data[0]

	response := createTestExpense(suite.T(), owner, v1.ExpenseEditable{
		CategoryID:  category.ID,
		Amount:      decimal.NewFromFloat(13.37),
		Description: "Weekly groceries",
		Date:        time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	})

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Weekly groceries", response.Data[0].Description)
	assert.Equal(suite.T(), "Groceries", response.Data[0].CategoryName)
}

// TestExpensesCreateInvalid verifies that invalid bodies are rejected.
func (suite *TestSuiteStandard) TestExpensesCreateInvalid() {
	owner := uuid.New()
	category := createTestCategory(suite.T(), owner, v1.CategoryEditable{Name: "Groceries"}).Data[0]

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ broken`},
		{"Empty body", ""},
		{"Zero amount", v1.ExpenseEditable{CategoryID: category.ID}},
		{"Negative amount", v1.ExpenseEditable{CategoryID: category.ID, Amount: decimal.NewFromInt(-5)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body, ownerHeader(owner))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestExpensesCreateUnknownCategory verifies that an expense for a
// category that does not exist is rejected as not found.
func (suite *TestSuiteStandard) TestExpensesCreateUnknownCategory() {
	response := createTestExpense(suite.T(), uuid.New(), v1.ExpenseEditable{
		CategoryID: uuid.New(),
		Amount:     decimal.NewFromInt(10),
	}, http.StatusNotFound)

	require.NotNil(suite.T(), response.Error)
	assert.Contains(suite.T(), *response.Error, "there is no category")
}

// TestExpensesGetMonth verifies the month filter of the expense list.
func (suite *TestSuiteStandard) TestExpensesGetMonth() {
	owner := uuid.New()
	category := createTestCategory(suite.T(), owner, v1.CategoryEditable{Name: "Groceries"}).Data[0]

	_ = createTestExpense(suite.T(), owner, v1.ExpenseEditable{
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(10),
		Date:       time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	_ = createTestExpense(suite.T(), owner, v1.ExpenseEditable{
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(20),
		Date:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=2025-06", "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(10)))
}

// TestExpensesGetMonthInvalid verifies that a malformed month is rejected.
func (suite *TestSuiteStandard) TestExpensesGetMonthInvalid() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?month=June", "", ownerHeader(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestExpensesUpdate verifies updates and their error cases.
func (suite *TestSuiteStandard) TestExpensesUpdate() {
	owner := uuid.New()
	groceries := createTestCategory(suite.T(), owner, v1.CategoryEditable{Name: "Groceries"}).Data[0]
	leisure := createTestCategory(suite.T(), owner, v1.CategoryEditable{Name: "Leisure"}).Data[1]

	created := createTestExpense(suite.T(), owner, v1.ExpenseEditable{
		CategoryID: groceries.ID,
		Amount:     decimal.NewFromInt(10),
		Date:       time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	id := created.Data[0].ID

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", id), v1.ExpenseEditable{
		CategoryID:  leisure.ID,
		Amount:      decimal.NewFromInt(25),
		Description: "Cinema",
		Date:        time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC),
	}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Cinema", response.Data[0].Description)
	assert.Equal(suite.T(), "Leisure", response.Data[0].CategoryName)

	// Unknown ID
	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%s", uuid.New()), v1.ExpenseEditable{CategoryID: groceries.ID, Amount: decimal.NewFromInt(1)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestExpensesDelete verifies deletion and owner scoping.
func (suite *TestSuiteStandard) TestExpensesDelete() {
	owner := uuid.New()
	category := createTestCategory(suite.T(), owner, v1.CategoryEditable{Name: "Groceries"}).Data[0]
	created := createTestExpense(suite.T(), owner, v1.ExpenseEditable{
		CategoryID: category.ID,
		Amount:     decimal.NewFromInt(10),
		Date:       time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	id := created.Data[0].ID

	// Foreign owner cannot delete
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", id), "", ownerHeader(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%s", id), "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
