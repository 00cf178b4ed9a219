package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/budgetbook/backend/internal/controllers/v1"
	"github.com/budgetbook/backend/internal/types"
	"github.com/budgetbook/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBudgetsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestBudgetsOptions() {
	id := uuid.New()

	tests := []struct {
		name   string
		path   string
		allow  string
		status int
	}{
		{"Collection", "", "OPTIONS, GET, POST", http.StatusNoContent},
		{"Months", "/months", "OPTIONS, GET", http.StatusNoContent},
		{"Income", fmt.Sprintf("/%s/income", id), "OPTIONS, PATCH", http.StatusNoContent},
		{"Items", fmt.Sprintf("/%s/items", id), "OPTIONS, PUT", http.StatusNoContent},
		{"Income with invalid UUID", "/NotParseableAsUUID/income", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/budgets%s", tt.path)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

// TestBudgetsGetAbsent verifies that a month without a budget returns a
// nil budget and an empty item list, not an error.
func (suite *TestSuiteStandard) TestBudgetsGetAbsent() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=2025-06", "", ownerHeader(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Nil(suite.T(), response.Data.Budget)
	assert.Empty(suite.T(), response.Data.Items)
}

// TestBudgetsCreateAndGet verifies budget creation and retrieval by month.
func (suite *TestSuiteStandard) TestBudgetsCreateAndGet() {
	owner := uuid.New()

	created := createTestBudget(suite.T(), owner, v1.BudgetEditable{
		Month:  types.NewMonth(2025, time.June),
		Income: decimal.NewFromInt(3500),
	})
	require.NotNil(suite.T(), created.Data)
	assert.True(suite.T(), created.Data.Income.Equal(decimal.NewFromInt(3500)))

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets?month=2025-06", "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data.Budget)
	assert.Equal(suite.T(), created.Data.ID, response.Data.Budget.ID)
}

// TestBudgetsCreateConflict verifies that the second budget for a month
// is rejected.
func (suite *TestSuiteStandard) TestBudgetsCreateConflict() {
	owner := uuid.New()
	editable := v1.BudgetEditable{Month: types.NewMonth(2025, time.June)}

	_ = createTestBudget(suite.T(), owner, editable)
	_ = createTestBudget(suite.T(), owner, editable, http.StatusBadRequest)

	// Another owner can budget the same month
	_ = createTestBudget(suite.T(), uuid.New(), editable)
}

// TestBudgetsUpdateIncome verifies the income update endpoint.
func (suite *TestSuiteStandard) TestBudgetsUpdateIncome() {
	owner := uuid.New()
	created := createTestBudget(suite.T(), owner, v1.BudgetEditable{
		Month:  types.NewMonth(2025, time.June),
		Income: decimal.NewFromInt(3500),
	})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s/income", created.Data.ID), v1.IncomeEditable{Income: decimal.NewFromInt(3800)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Income.Equal(decimal.NewFromInt(3800)))

	// A negative income is invalid
	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s/income", created.Data.ID), v1.IncomeEditable{Income: decimal.NewFromInt(-1)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Unknown budget
	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s/income", uuid.New()), v1.IncomeEditable{Income: decimal.NewFromInt(100)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBudgetsSetItem verifies the upsert semantics of the items endpoint.
func (suite *TestSuiteStandard) TestBudgetsSetItem() {
	owner := uuid.New()
	category := createTestCategory(suite.T(), owner, v1.CategoryEditable{Name: "Groceries"}).Data[0]
	budget := createTestBudget(suite.T(), owner, v1.BudgetEditable{Month: types.NewMonth(2025, time.June)})

	path := fmt.Sprintf("http://example.com/v1/budgets/%s/items", budget.Data.ID)

	r := test.Request(suite.T(), http.MethodPut, path, v1.BudgetItemEditable{CategoryID: category.ID, Amount: decimal.NewFromInt(100)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetItemListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].PlannedAmount.Equal(decimal.NewFromInt(100)))
	assert.Equal(suite.T(), "Groceries", response.Data[0].CategoryName)

	// A second call for the same category updates, it never duplicates
	r = test.Request(suite.T(), http.MethodPut, path, v1.BudgetItemEditable{CategoryID: category.ID, Amount: decimal.NewFromInt(150)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.True(suite.T(), response.Data[0].PlannedAmount.Equal(decimal.NewFromInt(150)))

	// Foreign budget
	r = test.Request(suite.T(), http.MethodPut, path, v1.BudgetItemEditable{CategoryID: category.ID, Amount: decimal.NewFromInt(10)}, ownerHeader(uuid.New()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Unknown category
	r = test.Request(suite.T(), http.MethodPut, path, v1.BudgetItemEditable{CategoryID: uuid.New(), Amount: decimal.NewFromInt(10)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBudgetsMonths verifies the available month listing.
func (suite *TestSuiteStandard) TestBudgetsMonths() {
	owner := uuid.New()

	for _, month := range []time.Month{time.March, time.May, time.April} {
		_ = createTestBudget(suite.T(), owner, v1.BudgetEditable{Month: types.NewMonth(2025, month)})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/budgets/months", "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	// Most recent first
	assert.Equal(suite.T(), "2025-05", response.Data[0].String())
	assert.Equal(suite.T(), "2025-04", response.Data[1].String())
	assert.Equal(suite.T(), "2025-03", response.Data[2].String())
}
