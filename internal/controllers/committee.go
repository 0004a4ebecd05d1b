package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
)

// RegisterCommitteeRoutes registers the routes for committee members with
// the RouterGroup that is passed.
func RegisterCommitteeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateCommitteeMember)

	r.OPTIONS("/update/:id", httputil.OptionsPut)
	r.PUT("/update/:id", UpdateCommitteeMember)

	r.OPTIONS("/getAll", httputil.OptionsGet)
	r.GET("/getAll", GetCommitteeMembers)
	r.OPTIONS("/getAll/:categoryId", httputil.OptionsGet)
	r.GET("/getAll/:categoryId", GetCommitteeMembers)

	r.OPTIONS("/get/:id", httputil.OptionsGet)
	r.GET("/get/:id", GetCommitteeMember)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeleteCommitteeMember)
}

// @Summary		Create committee member
// @Description	Creates a committee member
// @Tags			Committee
// @Accept			json
// @Produce		json
// @Success		201		{object}	CommitteeMemberResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			member	body		models.CommitteeMemberCreate	true	"Committee member"
// @Router			/committee/create [post]
func CreateCommitteeMember(c *gin.Context) {
	var create models.CommitteeMemberCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		fail(c, err)
		return
	}

	member, err := models.CreateCommitteeMember(models.DB, create)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, CommitteeMemberResponse{
		Success:  true,
		Message:  "Property Committee created successfully!",
		Property: &member,
	})
}

// @Summary		Update committee member
// @Description	Replaces all fields of a committee member except its category
// @Tags			Committee
// @Accept			json
// @Produce		json
// @Success		200		{object}	CommitteeMemberResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID							true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			member	body		models.CommitteeMemberCreate	true	"Committee member"
// @Router			/committee/update/{id} [put]
func UpdateCommitteeMember(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	var update models.CommitteeMemberCreate
	err = httputil.BindData(c, &update)
	if err != nil {
		fail(c, err)
		return
	}

	member, err := models.UpdateCommitteeMember(models.DB, uri.ID.UUID, update)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CommitteeMemberResponse{
		Success:  true,
		Message:  "Property Committee updated successfully!",
		Property: &member,
	})
}

// @Summary		Get committee members
// @Description	Returns all committee members, or those of a category
// @Tags			Committee
// @Produce		json
// @Success		200			{object}	CommitteeMemberListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	false	"ID of the category"
// @Router			/committee/getAll [get]
// @Router			/committee/getAll/{categoryId} [get]
func GetCommitteeMembers(c *gin.Context) {
	var categoryID *uuid.UUID
	if c.Param("categoryId") != "" {
		var uri URICategoryID
		err := httputil.BindURI(c, &uri)
		if err != nil {
			fail(c, err)
			return
		}

		id := uri.CategoryID.UUID
		categoryID = &id
	}

	members, err := models.FindCommitteeMembers(models.DB, categoryID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CommitteeMemberListResponse{
		Success:    true,
		Properties: members,
	})
}

// @Summary		Get committee member
// @Description	Returns a single committee member
// @Tags			Committee
// @Produce		json
// @Success		200	{object}	CommitteeMemberResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/committee/get/{id} [get]
func GetCommitteeMember(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	member, err := models.FindCommitteeMember(models.DB, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CommitteeMemberResponse{
		Success:  true,
		Property: &member,
	})
}

// @Summary		Delete committee member
// @Description	Deletes a committee member
// @Tags			Committee
// @Produce		json
// @Success		200	{object}	CommitteeMemberResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/committee/delete/{id} [delete]
func DeleteCommitteeMember(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	member, err := models.DeleteCommitteeMember(models.DB, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, CommitteeMemberResponse{
		Success:  true,
		Message:  "Property Committee deleted successfully",
		Property: &member,
	})
}
