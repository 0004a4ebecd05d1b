package models_test

import (
	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	category := suite.createTestCategory(models.CategoryCreate{Name: "  Harbor View ", Currency: " eur"})
	assert.Equal(suite.T(), "Harbor View", category.Name)
	assert.Equal(suite.T(), "EUR", category.Currency)

	_, err := models.CreateCategory(models.DB, models.CategoryCreate{Currency: "USD"})
	assert.ErrorIs(suite.T(), err, models.ErrMissingFields)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	category := suite.createTestCategory(models.CategoryCreate{Currency: "USD"})

	updated, err := models.UpdateCategory(models.DB, category.ID, models.CategoryCreate{Name: "Renamed", Currency: "CHF"})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Renamed", updated.Name)

	categories, err := models.FindCategories(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), categories, 1)
	assert.Equal(suite.T(), "CHF", categories[0].Currency)

	_, err = models.UpdateCategory(models.DB, uuid.New(), models.CategoryCreate{Name: "Nope"})
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDeleteDetaches() {
	category := suite.createTestCategory(models.CategoryCreate{})
	other := suite.createTestCategory(models.CategoryCreate{Name: "Other"})

	detached := suite.createTestBudgetIncome("Alice", 10, &category.ID)
	suite.createTestIncome(models.IncomeCreate{CategoryID: &category.ID})
	kept := suite.createTestBudgetIncome("Bob", 10, &other.ID)

	_, err := models.CreateCommitteeMember(models.DB, models.CommitteeMemberCreate{
		Name: "Bob", Position: "Treasurer", Phone: "1", Email: "bob@example.com", Account: "1", Currency: "USD", CategoryID: &category.ID,
	})
	require.Nil(suite.T(), err)

	count, err := models.DeleteCategory(models.DB, category.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)

	found, err := models.FindLedgerEntry(models.DB, models.KindBudgetIncome, detached.ID)
	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), found.CategoryID)

	found, err = models.FindLedgerEntry(models.DB, models.KindBudgetIncome, kept.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), other.ID, *found.CategoryID)

	members, err := models.FindCommitteeMembers(models.DB, &category.ID)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), members, 0)

	_, err = models.DeleteCategory(models.DB, category.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
