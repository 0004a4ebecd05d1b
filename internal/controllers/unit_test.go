package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/test"
)

func (suite *TestSuiteStandard) createTestUnit(u models.UnitCreate, expectedStatus ...int) models.Unit {
	if u.Type == "" {
		u.Type = "Two bedroom apartment"
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/units/create", u)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response controllers.UnitResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if response.Property == nil {
		return models.Unit{}
	}
	return *response.Property
}

func (suite *TestSuiteStandard) TestUnit() {
	category := suite.createTestCategory(models.CategoryCreate{Currency: "EUR"})
	other := suite.createTestCategory(models.CategoryCreate{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/units/create", models.UnitCreate{Type: "Studio", Fee: amount(80), CategoryID: &category.ID})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	var response controllers.UnitResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Units created successfully!", response.Message)
	suite.Require().NotNil(response.Property)
	suite.Assert().Len(response.Property.UnitCode, 6)
	suite.Assert().Equal("EUR", response.Property.Currency)

	suite.createTestUnit(models.UnitCreate{Fee: amount(120), CategoryID: &other.ID})

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/units/getAll/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	var list controllers.UnitListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Properties, 1, "units of other categories are not listed")
	suite.Assert().Equal("Studio", list.Properties[0].Type)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/units/delete/%s", response.Property.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Units deleted successfully", response.Message)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/units/delete/%s", response.Property.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUnitCreateFails() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/units/create", models.UnitCreate{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "missing: type, fee")

	suite.createTestUnit(models.UnitCreate{Fee: amount(80), CategoryID: uuidPtr(uuid.New())}, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/units/getAll/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
