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

// RegisterBudgetRoutes registers the routes for monthly budgets with
// the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetList)
		r.GET("", GetBudget)
		r.POST("", CreateBudget)
	}

	// Available months
	{
		r.OPTIONS("/months", OptionsBudgetMonths)
		r.GET("/months", GetBudgetMonths)
	}

	// Budget with ID
	{
		r.OPTIONS("/:id/income", OptionsBudgetIncome)
		r.PATCH("/:id/income", UpdateBudgetIncome)
		r.OPTIONS("/:id/items", OptionsBudgetItems)
		r.PUT("/:id/items", SetBudgetItem)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets [options]
func OptionsBudgetList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Router			/v1/budgets/months [options]
func OptionsBudgetMonths(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/budgets/{id}/income [options]
func OptionsBudgetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/budgets/{id}/items [options]
func OptionsBudgetItems(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPut(c)
}

// @Summary		Get budget
// @Description	Returns the budget of one month with its items. Months without a budget return a nil budget and an empty item list
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			month	query		string	false	"Month in YYYY-MM format"
// @Router			/v1/budgets [get]
func GetBudget(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	var query QueryMonth
	err = c.ShouldBindQuery(&query)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(query.Month)
	if query.Month.IsZero() {
		month = types.MonthOf(time.Now().In(time.UTC))
	}

	budget, items, err := services.NewMonthlyBudgetService(models.DB).GetForMonth(owner, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &MonthBudget{
		Budget: budget,
		Items:  items,
	}})
}

// @Summary		Create budget
// @Description	Creates the budget for a month. Only one budget can exist per month
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetCreateResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &s,
		})
		return
	}

	budget, err := services.NewMonthlyBudgetService(models.DB).Create(owner, editable.Month, editable.Income)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, BudgetCreateResponse{Data: &budget})
}

// @Summary		Update income
// @Description	Sets the income of a budget. Planned amounts are untouched
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetCreateResponse
// @Failure		400		{object}	BudgetCreateResponse
// @Failure		404		{object}	BudgetCreateResponse
// @Failure		500		{object}	BudgetCreateResponse
// @Param			id		path		URIID			true	"ID of the budget"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/budgets/{id}/income [patch]
func UpdateBudgetIncome(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetCreateResponse{
			Error: &s,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &s,
		})
		return
	}

	var editable IncomeEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &s,
		})
		return
	}

	budget, err := services.NewMonthlyBudgetService(models.DB).UpdateIncome(owner, uri.ID.UUID, editable.Income)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetCreateResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetCreateResponse{Data: &budget})
}

// @Summary		Set planned amount
// @Description	Sets the planned amount for a category in a budget. Setting the same category twice updates, it never duplicates
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetItemListResponse
// @Failure		400		{object}	BudgetItemListResponse
// @Failure		404		{object}	BudgetItemListResponse
// @Failure		500		{object}	BudgetItemListResponse
// @Param			id		path		URIID				true	"ID of the budget"
// @Param			item	body		BudgetItemEditable	true	"Budget item"
// @Router			/v1/budgets/{id}/items [put]
func SetBudgetItem(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	var editable BudgetItemEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	items, err := services.NewMonthlyBudgetService(models.DB).SetBudgetForCategory(owner, uri.ID.UUID, editable.CategoryID, editable.Amount)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetItemListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BudgetItemListResponse{Data: items})
}

// @Summary		List available months
// @Description	Returns the months that have a budget, most recent first
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	MonthListResponse
// @Failure		400	{object}	MonthListResponse
// @Failure		500	{object}	MonthListResponse
// @Router			/v1/budgets/months [get]
func GetBudgetMonths(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthListResponse{
			Error: &s,
		})
		return
	}

	months, err := services.NewMonthlyBudgetService(models.DB).ListAvailableMonths(owner)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: months})
}
