package v1

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/reports"
	"github.com/budgetbook/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/trend", OptionsTrend)
	r.GET("/trend", GetTrend)
	r.OPTIONS("/breakdown", OptionsBreakdown)
	r.GET("/breakdown", GetBreakdown)
}

type TrendResponse struct {
	Data  []reports.TrendPoint `json:"data"`                                                           // Expense trend, oldest month first
	Error *string              `json:"error" example:"there is no monthly budget matching your query"` // The error, if any occurred
}

type BreakdownResponse struct {
	Data  []reports.BreakdownRow `json:"data"`                                                           // Per-category spend per month, oldest first
	Error *string                `json:"error" example:"there is no monthly budget matching your query"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/trend [options]
func OptionsTrend(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/breakdown [options]
func OptionsBreakdown(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Expense trend
// @Description	Returns total, real and saved amounts for the most recent months that have a budget, oldest first
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	TrendResponse
// @Failure		400		{object}	TrendResponse
// @Failure		500		{object}	TrendResponse
// @Param			months	query		int	false	"Number of months. Defaults to 6"
// @Router			/v1/analytics/trend [get]
func GetTrend(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendResponse{
			Error: &s,
		})
		return
	}

	var query QueryWindow
	_ = c.ShouldBindQuery(&query)

	window := query.Months
	if window <= 0 {
		window = services.DefaultTrendWindow
	}

	points, err := services.NewAnalyticsService(models.DB).Trend(owner, window)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: points})
}

// @Summary		Historical breakdown
// @Description	Returns per-category spend for the most recent months that have a budget, oldest first, with a stable category key set
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	BreakdownResponse
// @Failure		400		{object}	BreakdownResponse
// @Failure		500		{object}	BreakdownResponse
// @Param			months	query		int	false	"Number of months. Defaults to 12"
// @Router			/v1/analytics/breakdown [get]
func GetBreakdown(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{
			Error: &s,
		})
		return
	}

	var query QueryWindow
	_ = c.ShouldBindQuery(&query)

	window := query.Months
	if window <= 0 {
		window = services.DefaultBreakdownWindow
	}

	rows, err := services.NewAnalyticsService(models.DB).Breakdown(owner, window)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BreakdownResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, BreakdownResponse{Data: rows})
}
