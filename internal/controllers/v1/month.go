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

// RegisterMonthRoutes registers the routes for the month overview with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsMonth)
	r.GET("", GetMonth)
}

type MonthResponse struct {
	Data  *services.MonthOverview `json:"data"`                                                          // Everything the dashboard renders for one month
	Error *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Month overview
// @Description	Returns summary, savings, per-category status and planned vs. actual comparison for one month. Defaults to the current month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	query		string	false	"Month in YYYY-MM format"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	var query QueryMonth
	err = c.ShouldBindQuery(&query)
	if err != nil {
		s := httputil.ErrInvalidMonth.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &s,
		})
		return
	}

	month := types.MonthOf(query.Month)
	if query.Month.IsZero() {
		month = types.MonthOf(time.Now().In(time.UTC))
	}

	overview, err := services.NewAnalyticsService(models.DB).MonthOverview(owner, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthResponse{Data: &overview})
}
