package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
)

// RegisterBudgetIncomeRoutes registers the routes for budget income with
// the RouterGroup that is passed.
func RegisterBudgetIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateBudgetIncome)

	r.OPTIONS("/update/:id", httputil.OptionsPut)
	r.PUT("/update/:id", UpdateBudgetIncome)

	r.OPTIONS("/getAll", httputil.OptionsGet)
	r.GET("/getAll", GetBudgetIncomes)
	r.OPTIONS("/getAll/:categoryId", httputil.OptionsGet)
	r.GET("/getAll/:categoryId", GetBudgetIncomes)

	r.OPTIONS("/get/:id", httputil.OptionsGet)
	r.GET("/get/:id", GetBudgetIncome)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeleteBudgetIncome)
}

// @Summary		Create budget income
// @Description	Creates a budget income entry. The body can be wrapped in "propertyData".
// @Tags			Budget Income
// @Accept			json
// @Produce		json
// @Success		201		{object}	LedgerEntryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			income	body		BudgetIncomeEditable	true	"Budget Income"
// @Router			/budget-income/create [post]
func CreateBudgetIncome(c *gin.Context) {
	var editable BudgetIncomeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	status, err := models.ParsePaymentStatus(editable.Status, "")
	if err != nil {
		fail(c, err)
		return
	}

	entry, err := models.CreateBudgetIncome(models.DB, models.BudgetIncomeCreate{
		Name:       editable.Name,
		Amount:     editable.Amount,
		CategoryID: editable.CategoryID,
		BudgetID:   editable.BudgetID,
		Document:   editable.Document,
		Status:     status,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondLedgerEntry(c, http.StatusCreated, entry, "created", "Budget Income created successfully!")
}

// @Summary		Update budget income
// @Description	Updates name, amount, document and status of a budget income entry and records the update in its audit log. Repeated updates with the same name amend the same log entry.
// @Tags			Budget Income
// @Accept			json
// @Produce		json
// @Success		200		{object}	LedgerEntryResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		409		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		BudgetIncomeEditable	true	"Budget Income"
// @Router			/budget-income/update/{id} [put]
func UpdateBudgetIncome(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	var editable BudgetIncomeEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		fail(c, err)
		return
	}

	status, err := models.ParsePaymentStatus(editable.Status, models.StatusNotUpdated)
	if err != nil {
		fail(c, err)
		return
	}

	entry, placement, err := models.UpdateBudgetIncome(models.DB, uri.ID.UUID, models.BudgetIncomeUpdate{
		Name:     editable.Name,
		Amount:   editable.Amount,
		Document: editable.Document,
		Status:   status,
	})
	if err != nil {
		fail(c, err)
		return
	}

	respondLedgerEntry(c, http.StatusOK, entry, string(placement), "Budget Income updated successfully!")
}

// @Summary		List budget income
// @Description	Returns all budget income entries, or those of a category
// @Tags			Budget Income
// @Produce		json
// @Success		200			{object}	LedgerEntryListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	false	"ID of the category"
// @Param			match		query		string	false	"Glob pattern for the name"
// @Router			/budget-income/getAll [get]
// @Router			/budget-income/getAll/{categoryId} [get]
func GetBudgetIncomes(c *gin.Context) {
	getLedgerEntries(c, models.KindBudgetIncome)
}

// @Summary		Get budget income entry
// @Description	Returns a single budget income entry
// @Tags			Budget Income
// @Produce		json
// @Success		200	{object}	LedgerEntryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/budget-income/get/{id} [get]
func GetBudgetIncome(c *gin.Context) {
	getLedgerEntry(c, models.KindBudgetIncome)
}

// @Summary		Delete budget income
// @Description	Deletes a budget income entry
// @Tags			Budget Income
// @Produce		json
// @Success		200	{object}	LedgerEntryResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/budget-income/delete/{id} [delete]
func DeleteBudgetIncome(c *gin.Context) {
	deleteLedgerEntry(c, models.KindBudgetIncome, "Budget Income deleted successfully")
}
