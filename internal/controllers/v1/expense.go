package v1

import (
	"net/http"
	"time"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/services"
	"github.com/budgetbook/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List expenses
// @Description	Returns the expenses of one month, most recent first. Defaults to the current month
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Failure		500		{object}	ExpenseListResponse
// @Param			month	query		string	false	"Month in YYYY-MM format"
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var query QueryMonth
	err = c.ShouldBindQuery(&query)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(query.Month)
	if query.Month.IsZero() {
		month = types.MonthOf(time.Now().In(time.UTC))
	}

	expenses, err := services.NewExpenseService(models.DB).ListForMonth(owner, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Create expense
// @Description	Creates a new expense and returns the refreshed list for the month it falls into
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Failure		500		{object}	ExpenseListResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	expenses, err := services.NewExpenseService(models.DB).Create(owner, editable.CategoryID, editable.Amount, editable.Description, editable.Date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ExpenseListResponse{Data: expenses})
}

// @Summary		Update expense
// @Description	Updates category, amount, description and date of an expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Failure		404		{object}	ExpenseListResponse
// @Failure		500		{object}	ExpenseListResponse
// @Param			id		path		URIID			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var editable ExpenseEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	expenses, err := services.NewExpenseService(models.DB).Update(owner, uri.ID.UUID, editable.CategoryID, editable.Amount, editable.Description, editable.Date)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Delete expense
// @Description	Deletes an expense and returns the refreshed list for the current month
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		404	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Param			id	path		URIID	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	expenses, err := services.NewExpenseService(models.DB).Delete(owner, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}
