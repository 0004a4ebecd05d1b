package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOutcome() {
	category := suite.createTestCategory(models.CategoryCreate{})
	outcome := suite.createTestOutcome(controllers.OutcomeCreate{
		Name:       "Gardening",
		CategoryID: &category.ID,
		PeriodAmounts: models.PeriodAmounts{
			"Q1": decimal.NewFromInt(100),
		},
	})

	suite.Assert().Equal(models.KindOutcome, outcome.Kind)
	suite.Assert().True(decimal.NewFromInt(100).Equal(outcome.TotalAmount))
	suite.Require().Len(outcome.UpdateLog, 1)
	suite.Assert().Equal("Gardening Outcome", outcome.UpdateLog[0].Operation)
	suite.Assert().Nil(outcome.Contribution)

	r := suite.update("outcome", outcome.ID, controllers.OutcomeUpdate{Month: "Q2", Amount: amount(20.5)}, http.StatusOK)
	suite.Assert().Equal("Outcome updated successfully!", r.Message)
	suite.Assert().True(decimal.NewFromFloat(120.5).Equal(r.Property.TotalAmount))
	suite.Require().Len(r.Property.UpdateLog, 2)
	suite.Assert().Equal("Gardening Q2 Outcome updated", r.Property.UpdateLog[1].Operation)

	r = suite.update("outcome", outcome.ID, controllers.OutcomeUpdate{Month: " Q2 ", Amount: amount(0)}, http.StatusOK)
	suite.Require().Len(r.Property.UpdateLog, 2)
	suite.Assert().True(decimal.NewFromInt(100).Equal(r.Property.TotalAmount))
	suite.Assert().True(r.Property.PeriodAmounts["Q2"].IsZero())

	r = suite.update("outcome", outcome.ID, controllers.OutcomeUpdate{Amount: amount(1)}, http.StatusBadRequest)
	suite.Assert().Contains(r.Message, "missing: month")

	suite.update("outcome", uuid.New(), controllers.OutcomeUpdate{Month: "Q3", Amount: amount(1)}, http.StatusNotFound)

	del := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/outcome/delete/%s", outcome.ID), "")
	test.AssertHTTPStatus(suite.T(), &del, http.StatusOK)
	var response controllers.LedgerEntryResponse
	test.DecodeResponse(suite.T(), &del, &response)
	suite.Assert().Equal("Outcome deleted successfully", response.Message)
}

func (suite *TestSuiteStandard) TestOutcomeCreateFails() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/outcome/create", controllers.OutcomeCreate{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "missing: name")

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/outcome/create", `{"name": "Gardening", "periodAmounts": {" ": 10}}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), models.ErrPeriodEmpty.Error())
}

func (suite *TestSuiteStandard) TestOutcomeList() {
	suite.createTestOutcome(controllers.OutcomeCreate{Name: "Gardening"})
	suite.createTestOutcome(controllers.OutcomeCreate{Name: "Garbage"})
	suite.createTestOutcome(controllers.OutcomeCreate{Name: "Insurance"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/outcome/getAll?match=gar*", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list controllers.LedgerEntryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Properties, 2)
}
