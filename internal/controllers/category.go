package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateCategory)

	r.OPTIONS("/getAll", httputil.OptionsGet)
	r.GET("/getAll", GetCategories)

	r.OPTIONS("/update/:id", httputil.OptionsPut)
	r.PUT("/update/:id", UpdateCategory)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeleteCategory)
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			category	body		models.CategoryCreate	true	"Category"
// @Router			/category/create [post]
func CreateCategory(c *gin.Context) {
	var create models.CategoryCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		fail(c, err)
		return
	}

	category, err := models.CreateCategory(models.DB, create)
	if err != nil {
		fail(c, err)
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusCreated, CategoryResponse{
		Success:  true,
		Message:  "Category created successfully!",
		Category: &data,
	})
}

// @Summary		Get categories
// @Description	Returns all categories ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategoryListResponse
// @Failure		500		{object}	httperror.Error
// @Param			match	query		string	false	"Glob pattern for the name"
// @Router			/category/getAll [get]
func GetCategories(c *gin.Context) {
	var filter QueryMatch
	_ = c.ShouldBindQuery(&filter)

	categories, err := models.FindCategories(models.DB)
	if err != nil {
		fail(c, err)
		return
	}

	data := make([]Category, 0, len(categories))
	for _, category := range categories {
		if httputil.Match(filter.Match, category.Name) {
			data = append(data, newCategory(c, category))
		}
	}

	c.JSON(http.StatusOK, CategoryListResponse{
		Success:    true,
		Categories: data,
	})
}

// @Summary		Update category
// @Description	Replaces name and currency of a category. Existing ledger entries keep their currency.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			id			path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	body		models.CategoryCreate	true	"Category"
// @Router			/category/update/{id} [put]
func UpdateCategory(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	var update models.CategoryCreate
	err = httputil.BindData(c, &update)
	if err != nil {
		fail(c, err)
		return
	}

	category, err := models.UpdateCategory(models.DB, uri.ID.UUID, update)
	if err != nil {
		fail(c, err)
		return
	}

	data := newCategory(c, category)
	c.JSON(http.StatusOK, CategoryResponse{
		Success:  true,
		Message:  "Category updated successfully!",
		Category: &data,
	})
}

// @Summary		Delete category
// @Description	Deletes a category with its property information and committee members. Ledger entries of the category are kept and detached from it.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryDeleteResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/category/delete/{id} [delete]
func DeleteCategory(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	detached, err := models.DeleteCategory(models.DB, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	log.Info().Str("category", uri.ID.String()).Int64("detached", detached).Msg("Category deleted")

	c.JSON(http.StatusOK, CategoryDeleteResponse{
		Success:  true,
		Message:  "Category deleted successfully",
		Detached: detached,
	})
}
