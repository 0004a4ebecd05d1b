package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
)

// RegisterPropertyInformationRoutes registers the routes for property
// information with the RouterGroup that is passed.
func RegisterPropertyInformationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreatePropertyInformation)

	r.OPTIONS("/getAll/:categoryId", httputil.OptionsGet)
	r.GET("/getAll/:categoryId", GetPropertyInformation)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeletePropertyInformation)
}

// @Summary		Create property information
// @Description	Creates the property information printed on reports of a category
// @Tags			Property Information
// @Accept			json
// @Produce		json
// @Success		201			{object}	PropertyInformationResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			property	body		models.PropertyInformationCreate	true	"Property Information"
// @Router			/property-information/create [post]
func CreatePropertyInformation(c *gin.Context) {
	var create models.PropertyInformationCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		fail(c, err)
		return
	}

	property, err := models.CreatePropertyInformation(models.DB, create)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, PropertyInformationResponse{
		Success:  true,
		Message:  "Property Information created successfully!",
		Property: &property,
	})
}

// @Summary		Get property information
// @Description	Returns the property information of a category
// @Tags			Property Information
// @Produce		json
// @Success		200			{object}	PropertyInformationListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	true	"ID of the category"
// @Router			/property-information/getAll/{categoryId} [get]
func GetPropertyInformation(c *gin.Context) {
	var uri URICategoryID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	properties, err := models.FindPropertyInformation(models.DB, &uri.CategoryID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertyInformationListResponse{
		Success:    true,
		Properties: properties,
	})
}

// @Summary		Delete property information
// @Description	Deletes property information
// @Tags			Property Information
// @Produce		json
// @Success		200	{object}	PropertyInformationResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/property-information/delete/{id} [delete]
func DeletePropertyInformation(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	property, err := models.DeletePropertyInformation(models.DB, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, PropertyInformationResponse{
		Success:  true,
		Message:  "Property Information deleted successfully",
		Property: &property,
	})
}
