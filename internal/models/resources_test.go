package models_test

import (
	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCommitteeMember() {
	category := suite.createTestCategory(models.CategoryCreate{})
	create := models.CommitteeMemberCreate{
		Name:       "Bob Miller",
		Position:   "Treasurer",
		Phone:      "+1 555 0100",
		Email:      "bob@example.com",
		Account:    "DE02120300000000202051",
		Currency:   "USD",
		Signature:  &models.Document{PublicID: "sig/1", URL: "https://files.example.com/sig/1.png"},
		CategoryID: &category.ID,
	}

	member, err := models.CreateCommitteeMember(models.DB, create)
	require.Nil(suite.T(), err)

	update := create
	update.Position = "Chair"
	update.CategoryID = nil
	member, err = models.UpdateCommitteeMember(models.DB, member.ID, update)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Chair", member.Position)
	assert.Equal(suite.T(), category.ID, *member.CategoryID, "the category must not change on update")

	found, err := models.FindCommitteeMember(models.DB, member.ID)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "Chair", found.Position)
	assert.Equal(suite.T(), "sig/1", found.Signature.PublicID)

	_, err = models.DeleteCommitteeMember(models.DB, member.ID)
	require.Nil(suite.T(), err)

	_, err = models.FindCommitteeMember(models.DB, member.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCommitteeMemberMissingFields() {
	_, err := models.CreateCommitteeMember(models.DB, models.CommitteeMemberCreate{Name: "Bob"})
	assert.ErrorIs(suite.T(), err, models.ErrMissingFields)
	assert.Contains(suite.T(), err.Error(), "position, phone, email, account, currency")

	_, err = models.UpdateCommitteeMember(models.DB, uuid.New(), models.CommitteeMemberCreate{Name: "Bob"})
	assert.ErrorIs(suite.T(), err, models.ErrMissingFields)
}

func (suite *TestSuiteStandard) TestPropertyInformation() {
	category := suite.createTestCategory(models.CategoryCreate{})

	property, err := models.CreatePropertyInformation(models.DB, models.PropertyInformationCreate{
		Name:       "Sunset Gardens",
		Address:    "12 Harbor Road",
		Currency:   "usd",
		CategoryID: &category.ID,
	})
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), "USD", property.Currency)

	properties, err := models.FindPropertyInformation(models.DB, &category.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), properties, 1)
	assert.Equal(suite.T(), "12 Harbor Road", properties[0].Address)

	_, err = models.CreatePropertyInformation(models.DB, models.PropertyInformationCreate{Name: "No currency"})
	assert.ErrorIs(suite.T(), err, models.ErrMissingFields)

	_, err = models.DeletePropertyInformation(models.DB, property.ID)
	require.Nil(suite.T(), err)

	_, err = models.DeletePropertyInformation(models.DB, property.ID)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestBudgetOverview() {
	category := suite.createTestCategory(models.CategoryCreate{})
	suite.createTestBudgetIncome("Alice", 100, &category.ID)
	suite.createTestBudgetIncome("Bob", 50, &category.ID)
	suite.createTestIncome(models.IncomeCreate{CategoryID: &category.ID})
	suite.createTestOutcome(models.OutcomeCreate{CategoryID: &category.ID, PeriodAmounts: models.PeriodAmounts{"Q1": decimalFromFloat(30)}})

	overview, err := models.FindBudgetOverview(models.DB, category.ID, nil)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), overview.Income, 2)
	assert.Len(suite.T(), overview.Outcome, 1)
	assert.True(suite.T(), overview.IncomeTotal.Equal(decimalFromFloat(150)))
	assert.True(suite.T(), overview.Balance.Equal(decimalFromFloat(120)))
}
