package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/internal/types"
	"github.com/hoa-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeCreate() {
	category := suite.createTestCategory(models.CategoryCreate{Currency: "INR"})
	income := suite.createTestIncome(controllers.IncomeCreate{
		OwnerName:    "  Alice ",
		Email:        "alice@example.com",
		Unit:         "A-12",
		Contribution: decimal.NewFromInt(50),
		CategoryID:   &category.ID,
	})

	suite.Assert().Equal(models.KindIncome, income.Kind)
	suite.Assert().Equal("Alice", income.Name)
	suite.Assert().Equal("Alice", income.OwnerName)
	suite.Assert().Equal("A-12", income.Unit)
	suite.Assert().Equal("INR", income.Currency)
	suite.Require().NotNil(income.Contribution)
	suite.Assert().True(decimal.NewFromInt(50).Equal(*income.Contribution))
	suite.Assert().Nil(income.Amount, "income entries do not have a single amount")

	suite.Require().Len(income.PeriodAmounts, 12)
	for _, m := range types.Months {
		suite.Assert().True(income.PeriodAmounts[m].IsZero(), "%s must be zero", m)
	}
	suite.Assert().True(income.TotalAmount.IsZero())

	suite.Require().Len(income.UpdateLog, 1)
	suite.Assert().Equal("Alice Income", income.UpdateLog[0].Operation)
	suite.Assert().Equal(models.OperationCreated, income.UpdateLog[0].Kind)
}

func (suite *TestSuiteStandard) TestIncomeCreateFails() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/income/create", controllers.IncomeCreate{Email: "nobody@example.com"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "missing: ownerName")

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/income/create", `{"ownerName": "Alice", "contribution": "a lot"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/income/create", controllers.IncomeCreate{OwnerName: "Alice", CategoryID: uuidPtr(uuid.New())})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), models.ErrReferenceNotFound.Error())
}

func (suite *TestSuiteStandard) TestIncomeUpdateMonth() {
	income := suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Alice", Contribution: decimal.NewFromInt(50)})

	r := suite.update("income", income.ID, controllers.IncomeUpdate{Month: "march", Amount: amount(50), Status: "late-paid"}, http.StatusOK)
	suite.Assert().Equal("Income updated successfully!", r.Message)
	suite.Assert().True(decimal.NewFromInt(50).Equal(r.Property.PeriodAmounts["March"]))
	suite.Assert().Equal(models.StatusLatePaid, r.Property.Statuses["March"])
	suite.Assert().True(decimal.NewFromInt(50).Equal(r.Property.TotalAmount))
	suite.Require().Len(r.Property.UpdateLog, 2)
	suite.Assert().Equal("Alice March Income updated", r.Property.UpdateLog[1].Operation)
	suite.Assert().Equal(types.Period("March"), r.Property.UpdateLog[1].Period)

	// Same month again amends the entry, the status defaults to normal
	r = suite.update("income", income.ID, controllers.IncomeUpdate{Month: "3", Amount: amount(40)}, http.StatusOK)
	suite.Require().Len(r.Property.UpdateLog, 2)
	suite.Assert().True(decimal.NewFromInt(40).Equal(r.Property.UpdateLog[1].Amount))
	suite.Assert().Equal(models.StatusNormal, r.Property.Statuses["March"])

	// A different month appends
	r = suite.update("income", income.ID, controllers.IncomeUpdate{Month: "2024-04", Amount: amount(60), Status: "pay in advance"}, http.StatusOK)
	suite.Require().Len(r.Property.UpdateLog, 3)
	suite.Assert().Equal("Alice April Income updated", r.Property.UpdateLog[2].Operation)
	suite.Assert().True(decimal.NewFromInt(100).Equal(r.Property.TotalAmount))
	suite.Assert().Len(r.Property.PeriodAmounts, 12)
	suite.Assert().Equal(uint(3), r.Property.Version)
}

func (suite *TestSuiteStandard) TestIncomeUpdateFails() {
	income := suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Alice"})

	tests := []struct {
		name    string
		id      string
		body    any
		status  int
		message string
	}{
		{"Invalid month", income.ID.String(), controllers.IncomeUpdate{Month: "Smarch", Amount: amount(1)}, http.StatusBadRequest, types.ErrInvalidMonth.Error()},
		{"Month 13", income.ID.String(), controllers.IncomeUpdate{Month: "13", Amount: amount(1)}, http.StatusBadRequest, types.ErrInvalidMonth.Error()},
		{"No month", income.ID.String(), controllers.IncomeUpdate{Amount: amount(1)}, http.StatusBadRequest, "missing: month"},
		{"No amount", income.ID.String(), controllers.IncomeUpdate{Month: "May"}, http.StatusBadRequest, "missing: amount"},
		{"Invalid status", income.ID.String(), controllers.IncomeUpdate{Month: "May", Amount: amount(1), Status: "sometime"}, http.StatusBadRequest, models.ErrInvalidStatus.Error()},
		{"Not found", uuid.NewString(), controllers.IncomeUpdate{Month: "May", Amount: amount(1)}, http.StatusNotFound, "there is no"},
		{"Invalid UUID", "123", controllers.IncomeUpdate{Month: "May", Amount: amount(1)}, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/income/update/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, r.Body.String(), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestIncomeListAndDelete() {
	category := suite.createTestCategory(models.CategoryCreate{})
	alice := suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Alice", CategoryID: &category.ID})
	suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Bob", CategoryID: &category.ID})
	suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Carol"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/income/getAll/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var list controllers.LedgerEntryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Properties, 2)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/income/getAll", "")
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Properties, 3)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/income/delete/%s", alice.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var response controllers.LedgerEntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Income deleted successfully", response.Message)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/income/getAll/%s", category.ID), "")
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Properties, 1)
	suite.Assert().Equal("Bob", list.Properties[0].OwnerName)

	// Income cannot be deleted through the budget income endpoint
	bob := list.Properties[0]
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/budget-income/delete/%s", bob.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
