package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/internal/types"
)

// RegisterOutcomeRoutes registers the routes for outcome with
// the RouterGroup that is passed.
func RegisterOutcomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateOutcome)

	r.OPTIONS("/update/:id", httputil.OptionsPut)
	r.PUT("/update/:id", UpdateOutcome)

	r.OPTIONS("/getAll", httputil.OptionsGet)
	r.GET("/getAll", GetOutcomes)
	r.OPTIONS("/getAll/:categoryId", httputil.OptionsGet)
	r.GET("/getAll/:categoryId", GetOutcomes)

	r.OPTIONS("/get/:id", httputil.OptionsGet)
	r.GET("/get/:id", GetOutcome)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeleteOutcome)
}

// @Summary		Create outcome
// @Description	Creates an outcome entry
// @Tags			Outcome
// @Accept			json
// @Produce		json
// @Success		201		{object}	LedgerEntryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			outcome	body		OutcomeCreate	true	"Outcome"
// @Router			/outcome/create [post]
func CreateOutcome(c *gin.Context) {
	var create OutcomeCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		fail(c, err)
		return
	}

	entry, err := models.CreateOutcome(models.DB, models.OutcomeCreate{
		Name:          create.Name,
		CategoryID:    create.CategoryID,
		BudgetID:      create.BudgetID,
		PeriodAmounts: create.PeriodAmounts,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondLedgerEntry(c, http.StatusCreated, entry, "created", "Outcome created successfully!")
}

// @Summary		Update outcome
// @Description	Sets the amount spent in one period and records it in the audit log
// @Tags			Outcome
// @Accept			json
// @Produce		json
// @Success		200		{object}	LedgerEntryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			outcome	body		OutcomeUpdate	true	"Period update"
// @Router			/outcome/update/{id} [put]
func UpdateOutcome(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	var update OutcomeUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		fail(c, err)
		return
	}

	entry, placement, err := models.UpdateOutcomePeriod(models.DB, uri.ID.UUID, models.OutcomeUpdate{
		Period: types.Period(update.Month),
		Amount: update.Amount,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondLedgerEntry(c, http.StatusOK, entry, string(placement), "Outcome updated successfully!")
}

// @Summary		List outcome
// @Description	Returns all outcome entries, or those of a category
// @Tags			Outcome
// @Produce		json
// @Success		200			{object}	LedgerEntryListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	false	"ID of the category"
// @Param			match		query		string	false	"Glob pattern for the name"
// @Router			/outcome/getAll [get]
// @Router			/outcome/getAll/{categoryId} [get]
func GetOutcomes(c *gin.Context) {
	getLedgerEntries(c, models.KindOutcome)
}

// @Summary		Get outcome entry
// @Description	Returns a single outcome entry
// @Tags			Outcome
// @Produce		json
// @Success		200	{object}	LedgerEntryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/outcome/get/{id} [get]
func GetOutcome(c *gin.Context) {
	getLedgerEntry(c, models.KindOutcome)
}

// @Summary		Delete outcome
// @Description	Deletes an outcome entry
// @Tags			Outcome
// @Produce		json
// @Success		200	{object}	LedgerEntryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/outcome/delete/{id} [delete]
func DeleteOutcome(c *gin.Context) {
	deleteLedgerEntry(c, models.KindOutcome, "Outcome deleted successfully")
}
