package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
)

// RegisterUnitRoutes registers the routes for units with
// the RouterGroup that is passed.
func RegisterUnitRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateUnit)

	r.OPTIONS("/getAll/:categoryId", httputil.OptionsGet)
	r.GET("/getAll/:categoryId", GetUnits)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeleteUnit)
}

// @Summary		Create unit
// @Description	Creates a unit with a generated six digit unit code
// @Tags			Units
// @Accept			json
// @Produce		json
// @Success		201		{object}	UnitResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			unit	body		models.UnitCreate	true	"Unit"
// @Router			/units/create [post]
func CreateUnit(c *gin.Context) {
	var create models.UnitCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		fail(c, err)
		return
	}

	unit, err := models.CreateUnit(models.DB, create)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, UnitResponse{
		Success:  true,
		Message:  "Units created successfully!",
		Property: &unit,
	})
}

// @Summary		Get units
// @Description	Returns the units of a category
// @Tags			Units
// @Produce		json
// @Success		200			{object}	UnitListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	true	"ID of the category"
// @Router			/units/getAll/{categoryId} [get]
func GetUnits(c *gin.Context) {
	var uri URICategoryID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	units, err := models.FindUnits(models.DB, &uri.CategoryID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, UnitListResponse{
		Success:    true,
		Properties: units,
	})
}

// @Summary		Delete unit
// @Description	Deletes a unit
// @Tags			Units
// @Produce		json
// @Success		200	{object}	UnitResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/units/delete/{id} [delete]
func DeleteUnit(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	unit, err := models.DeleteUnit(models.DB, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, UnitResponse{
		Success:  true,
		Message:  "Units deleted successfully",
		Property: &unit,
	})
}
