package models_test

import (
	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetCreateSeedsOwners() {
	category := suite.createTestCategory(models.CategoryCreate{Currency: "EUR"})
	other := suite.createTestCategory(models.CategoryCreate{Name: "Other"})

	suite.createTestIncome(models.IncomeCreate{OwnerName: "Alice", CategoryID: &category.ID})
	suite.createTestIncome(models.IncomeCreate{OwnerName: "Bob", CategoryID: &category.ID})
	suite.createTestIncome(models.IncomeCreate{OwnerName: "Carol", CategoryID: &other.ID})

	budget, seeded, err := models.CreateBudget(models.DB, models.BudgetCreate{Name: " Budget 2024 ", CategoryID: &category.ID})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Budget 2024", budget.Name)
	assert.Equal(suite.T(), "EUR", budget.Currency)
	assert.Equal(suite.T(), 2, seeded)

	overview, err := models.FindBudgetOverview(models.DB, category.ID, &budget.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), overview.Income, 2)
	for _, entry := range overview.Income {
		assert.True(suite.T(), entry.TotalAmount.IsZero())
		assert.Equal(suite.T(), "EUR", entry.Currency)
		require.NotNil(suite.T(), entry.BudgetID)
		assert.Equal(suite.T(), budget.ID, *entry.BudgetID)
		assert.Len(suite.T(), entry.UpdateLog, 1, "seeded entries have a seed audit entry")
	}

	budgets, err := models.FindBudgets(models.DB, category.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), budgets, 1)
}

func (suite *TestSuiteStandard) TestBudgetCreateFails() {
	_, _, err := models.CreateBudget(models.DB, models.BudgetCreate{})
	assert.ErrorIs(suite.T(), err, models.ErrMissingFields)

	unknown := uuid.New()
	_, _, err = models.CreateBudget(models.DB, models.BudgetCreate{Name: "Budget", CategoryID: &unknown})
	assert.ErrorIs(suite.T(), err, models.ErrReferenceNotFound)

	entries, err := models.FindLedgerEntries(models.DB, models.KindBudgetIncome, nil)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), entries, 0)
}

func (suite *TestSuiteStandard) TestBudgetOverviewFilter() {
	category := suite.createTestCategory(models.CategoryCreate{})
	budget, _, err := models.CreateBudget(models.DB, models.BudgetCreate{Name: "Budget 2024", CategoryID: &category.ID})
	require.Nil(suite.T(), err)

	_, err = models.CreateOutcome(models.DB, models.OutcomeCreate{Name: "Gardening", CategoryID: &category.ID, BudgetID: &budget.ID, PeriodAmounts: models.PeriodAmounts{"Q1": decimalFromFloat(30)}})
	require.Nil(suite.T(), err)
	suite.createTestOutcome(models.OutcomeCreate{CategoryID: &category.ID, PeriodAmounts: models.PeriodAmounts{"Q1": decimalFromFloat(20)}})

	all, err := models.FindBudgetOverview(models.DB, category.ID, nil)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), all.OutcomeTotal.Equal(decimalFromFloat(50)))

	filtered, err := models.FindBudgetOverview(models.DB, category.ID, &budget.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), filtered.Outcome, 1)
	assert.True(suite.T(), filtered.OutcomeTotal.Equal(decimalFromFloat(30)))
}

func (suite *TestSuiteStandard) TestBudgetOutcomeUnknownBudget() {
	unknown := uuid.New()
	_, err := models.CreateOutcome(models.DB, models.OutcomeCreate{Name: "Gardening", BudgetID: &unknown})
	assert.ErrorIs(suite.T(), err, models.ErrReferenceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	category := suite.createTestCategory(models.CategoryCreate{})
	budget, _, err := models.CreateBudget(models.DB, models.BudgetCreate{Name: "Budget 2024", CategoryID: &category.ID})
	require.Nil(suite.T(), err)

	updated, err := models.UpdateBudget(models.DB, budget.ID, "Budget 2025")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Budget 2025", updated.Name)

	_, err = models.UpdateBudget(models.DB, budget.ID, " ")
	assert.ErrorIs(suite.T(), err, models.ErrMissingFields)

	_, err = models.UpdateBudget(models.DB, uuid.New(), "Nope")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetDeleteDetaches() {
	category := suite.createTestCategory(models.CategoryCreate{})
	suite.createTestIncome(models.IncomeCreate{OwnerName: "Alice", CategoryID: &category.ID})

	budget, _, err := models.CreateBudget(models.DB, models.BudgetCreate{Name: "Budget 2024", CategoryID: &category.ID})
	require.Nil(suite.T(), err)

	deleted, detached, err := models.DeleteBudget(models.DB, budget.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), budget.ID, deleted.ID)
	assert.Equal(suite.T(), int64(1), detached)

	entries, err := models.FindLedgerEntries(models.DB, models.KindBudgetIncome, &category.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 1, "entries of a deleted budget are kept")
	assert.Nil(suite.T(), entries[0].BudgetID)

	_, _, err = models.DeleteBudget(models.DB, budget.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDeleteRemovesBudgetsAndUnits() {
	category := suite.createTestCategory(models.CategoryCreate{})
	suite.createTestIncome(models.IncomeCreate{OwnerName: "Alice", CategoryID: &category.ID})

	budget, _, err := models.CreateBudget(models.DB, models.BudgetCreate{Name: "Budget 2024", CategoryID: &category.ID})
	require.Nil(suite.T(), err)

	_, err = models.CreateUnit(models.DB, models.UnitCreate{Type: "Studio", Fee: nullDecimal(80), CategoryID: &category.ID})
	require.Nil(suite.T(), err)

	_, err = models.DeleteCategory(models.DB, category.ID)
	require.Nil(suite.T(), err)

	_, err = models.FindBudget(models.DB, budget.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	units, err := models.FindUnits(models.DB, nil)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), units, 0)

	entries, err := models.FindLedgerEntries(models.DB, models.KindBudgetIncome, nil)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), entries, 1)
	assert.Nil(suite.T(), entries[0].BudgetID)
	assert.Nil(suite.T(), entries[0].CategoryID)
}
