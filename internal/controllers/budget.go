package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/metrics"
	"github.com/hoa-ledger/backend/internal/models"
)

// RegisterBudgetRoutes registers the routes for budgets and the budget
// overview with the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/create", httputil.OptionsPost)
	r.POST("/create", CreateBudget)

	r.OPTIONS("/getAll/:categoryId", httputil.OptionsGet)
	r.GET("/getAll/:categoryId", GetBudgets)

	r.OPTIONS("/update/:id", httputil.OptionsPut)
	r.PUT("/update/:id", UpdateBudget)

	r.OPTIONS("/delete/:id", httputil.OptionsDelete)
	r.DELETE("/delete/:id", DeleteBudget)

	r.OPTIONS("/getData/:categoryId", httputil.OptionsGet)
	r.GET("/getData/:categoryId", GetBudgetData)
}

// @Summary		Create budget
// @Description	Creates a budget for a category. Every owner of the category gets a budget income entry with an amount of zero in the new budget.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			budget	body		models.BudgetCreate	true	"Budget"
// @Router			/budget/create [post]
func CreateBudget(c *gin.Context) {
	var create models.BudgetCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		fail(c, err)
		return
	}

	budget, seeded, err := models.CreateBudget(models.DB, create)
	if err != nil {
		fail(c, err)
		return
	}

	metrics.LedgerWrites(string(models.KindBudgetIncome), "seeded", seeded)

	c.JSON(http.StatusCreated, BudgetResponse{
		Success: true,
		Message: "Budget created successfully",
		Budget:  &budget,
		Seeded:  seeded,
	})
}

// @Summary		Get budgets
// @Description	Returns the budgets of a category
// @Tags			Budget
// @Produce		json
// @Success		200			{object}	BudgetListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	true	"ID of the category"
// @Router			/budget/getAll/{categoryId} [get]
func GetBudgets(c *gin.Context) {
	var uri URICategoryID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	budgets, err := models.FindBudgets(models.DB, uri.CategoryID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{
		Success: true,
		Budgets: budgets,
	})
}

// @Summary		Update budget
// @Description	Renames a budget
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			budget	body		models.BudgetCreate	true	"Budget, only the name is used"
// @Router			/budget/update/{id} [put]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	var update models.BudgetCreate
	err = httputil.BindData(c, &update)
	if err != nil {
		fail(c, err)
		return
	}

	budget, err := models.UpdateBudget(models.DB, uri.ID.UUID, update.Name)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		Success: true,
		Message: "Budget updated successfully",
		Budget:  &budget,
	})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Its entries are kept and detached from it.
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetDeleteResponse
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/budget/delete/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	budget, detached, err := models.DeleteBudget(models.DB, uri.ID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetDeleteResponse{
		Success:  true,
		Message:  "Budget deleted successfully",
		Budget:   &budget,
		Detached: detached,
	})
}

// @Summary		Get budget data
// @Description	Returns the budget income and outcome entries of a category with their totals, optionally limited to one budget
// @Tags			Budget
// @Produce		json
// @Success		200			{object}	BudgetDataResponse
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			categoryId	path		string	true	"ID of the category"
// @Param			budgetId	query		string	false	"Only entries of this budget"
// @Router			/budget/getData/{categoryId} [get]
func GetBudgetData(c *gin.Context) {
	var uri URICategoryID
	err := httputil.BindURI(c, &uri)
	if err != nil {
		fail(c, err)
		return
	}

	var query QueryBudget
	err = httputil.BindQuery(c, &query)
	if err != nil {
		fail(c, err)
		return
	}

	_, err = models.FindCategory(models.DB, uri.CategoryID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	overview, err := models.FindBudgetOverview(models.DB, uri.CategoryID.UUID, query.BudgetID.Ptr())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, BudgetDataResponse{
		Success: true,
		Message: "Budget data fetched successfully",
		Data: BudgetData{
			Income:       newLedgerEntries(c, overview.Income, ""),
			Outcome:      newLedgerEntries(c, overview.Outcome, ""),
			IncomeTotal:  overview.IncomeTotal,
			OutcomeTotal: overview.OutcomeTotal,
			Balance:      overview.Balance,
		},
	})
}
