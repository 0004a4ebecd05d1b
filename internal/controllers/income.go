package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/internal/types"
)

// RegisterIncomeRoutes registers the routes for income with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateIncome)

	r.OPTIONS("/update/:id", httputil.OptionsPut)
	r.PUT("/update/:id", UpdateIncome)

	r.OPTIONS("/getAll", httputil.OptionsGet)
	r.GET("/getAll", GetIncomes)
	r.OPTIONS("/getAll/:categoryId", httputil.OptionsGet)
	r.GET("/getAll/:categoryId", GetIncomes)

	r.OPTIONS("/get/:id", httputil.OptionsGet)
	r.GET("/get/:id", GetIncome)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeleteIncome)
}

// @Summary		Create income
// @Description	Creates an income entry for an owner with all twelve months set to zero
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		201		{object}	LedgerEntryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			income	body		IncomeCreate	true	"Income"
// @Router			/income/create [post]
func CreateIncome(c *gin.Context) {
	var create IncomeCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		fail(c, err)
		return
	}

	entry, err := models.CreateIncome(models.DB, models.IncomeCreate{
		OwnerName:    create.OwnerName,
		Email:        create.Email,
		Unit:         create.Unit,
		Contribution: create.Contribution,
		CategoryID:   create.CategoryID,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondLedgerEntry(c, http.StatusCreated, entry, "created", "Income created successfully!")
}

// @Summary		Update income
// @Description	Sets the amount paid and the payment status for one month and records it in the audit log
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		200		{object}	LedgerEntryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeUpdate	true	"Month update"
// @Router			/income/update/{id} [put]
func UpdateIncome(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	var update IncomeUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		fail(c, err)
		return
	}

	// An empty month is reported as a missing field by the store
	var month types.Period
	if update.Month != "" {
		month, err = types.ParseMonth(update.Month)
		if err != nil {
			fail(c, err)
			return
		}
	}

	status, err := models.ParsePaymentStatus(update.Status, models.StatusNormal)
	if err != nil {
		fail(c, err)
		return
	}

	entry, placement, err := models.UpdateIncomeMonth(models.DB, uri.ID.UUID, models.IncomeUpdate{
		Month:  month,
		Amount: update.Amount,
		Status: status,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondLedgerEntry(c, http.StatusOK, entry, string(placement), "Income updated successfully!")
}

// @Summary		List income
// @Description	Returns all income entries, or those of a category
// @Tags			Income
// @Produce		json
// @Success		200			{object}	LedgerEntryListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	false	"ID of the category"
// @Param			match		query		string	false	"Glob pattern for the owner name"
// @Router			/income/getAll [get]
// @Router			/income/getAll/{categoryId} [get]
func GetIncomes(c *gin.Context) {
	getLedgerEntries(c, models.KindIncome)
}

// @Summary		Get income entry
// @Description	Returns a single income entry
// @Tags			Income
// @Produce		json
// @Success		200	{object}	LedgerEntryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/income/get/{id} [get]
func GetIncome(c *gin.Context) {
	getLedgerEntry(c, models.KindIncome)
}

// @Summary		Delete income
// @Description	Deletes an income entry
// @Tags			Income
// @Produce		json
// @Success		200	{object}	LedgerEntryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/income/delete/{id} [delete]
func DeleteIncome(c *gin.Context) {
	deleteLedgerEntry(c, models.KindIncome, "Income deleted successfully")
}
