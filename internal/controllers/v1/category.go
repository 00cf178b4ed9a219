package v1

import (
	"net/http"

	"github.com/budgetbook/backend/internal/httputil"
	"github.com/budgetbook/backend/internal/models"
	"github.com/budgetbook/backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
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

// @Summary		List categories
// @Description	Returns the active categories of the owner in creation order
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	categories, err := services.NewCategoryService(models.DB).List(owner)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Create category
// @Description	Creates a new category and returns the refreshed list
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryListResponse
// @Failure		400			{object}	CategoryListResponse
// @Failure		500			{object}	CategoryListResponse
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	var editable CategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	categories, err := services.NewCategoryService(models.DB).Create(owner, editable.Name, editable.DefaultBudget, editable.Color)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, CategoryListResponse{Data: categories})
}

// @Summary		Update category
// @Description	Updates name, default budget and color of a category and returns the refreshed list
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryListResponse
// @Failure		400			{object}	CategoryListResponse
// @Failure		404			{object}	CategoryListResponse
// @Failure		500			{object}	CategoryListResponse
// @Param			id			path		URIID				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	var editable CategoryEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	categories, err := services.NewCategoryService(models.DB).Update(owner, uri.ID.UUID, editable.Name, editable.DefaultBudget, editable.Color)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Archive category
// @Description	Archives a category. Expenses referencing it keep their label, the category only disappears from pickers
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		400	{object}	CategoryListResponse
// @Failure		404	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Param			id	path		URIID	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	owner, err := requestOwner(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{
			Error: &s,
		})
		return
	}

	var uri URIID
	err = c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	categories, err := services.NewCategoryService(models.DB).SoftDelete(owner, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}
