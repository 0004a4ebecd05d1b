package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	category := suite.createTestCategory(models.CategoryCreate{Name: " Sunset Gardens ", Currency: "eur"})

	suite.Assert().Equal("Sunset Gardens", category.Name)
	suite.Assert().Equal("EUR", category.Currency)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/income/getAll/%s", category.ID), category.Links.Income)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/budget/getData/%s", category.ID), category.Links.Budget)

	suite.createTestCategory(models.CategoryCreate{Name: " "}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryList() {
	suite.createTestCategory(models.CategoryCreate{Name: "Sunset Gardens"})
	suite.createTestCategory(models.CategoryCreate{Name: "Harbor View"})
	suite.createTestCategory(models.CategoryCreate{Name: "Sunrise Towers"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/category/getAll", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Categories, 3)
	suite.Assert().Equal("Harbor View", response.Categories[0].Name, "categories are sorted by name")

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/category/getAll?match=sun*", "")
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Categories, 2)
}

func (suite *TestSuiteStandard) TestCategoryUpdate() {
	category := suite.createTestCategory(models.CategoryCreate{Name: "Sunset Gardens"})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/category/update/%s", category.ID), models.CategoryCreate{Name: "Sunset Gardens II", Currency: "chf"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Category updated successfully!", response.Message)
	suite.Assert().Equal("Sunset Gardens II", response.Category.Name)
	suite.Assert().Equal("CHF", response.Category.Currency)

	// New entries use the new currency
	entry := suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1), CategoryID: &category.ID})
	suite.Assert().Equal("CHF", entry.Currency)

	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/category/update/%s", uuid.New()), models.CategoryCreate{Name: "Nothing"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/category/update/%s", category.ID), models.CategoryCreate{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestCategoryDelete verifies that deleting a category keeps its ledger
// entries and removes property information and committee members.
func (suite *TestSuiteStandard) TestCategoryDelete() {
	category := suite.createTestCategory(models.CategoryCreate{Name: "Sunset Gardens"})
	other := suite.createTestCategory(models.CategoryCreate{Name: "Harbor View"})

	income := suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Alice", CategoryID: &category.ID})
	suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Bob", Amount: amount(10), CategoryID: &category.ID})
	suite.createTestOutcome(controllers.OutcomeCreate{Name: "Gardening", CategoryID: &category.ID})
	suite.createTestOutcome(controllers.OutcomeCreate{Name: "Insurance", CategoryID: &other.ID})
	suite.createTestPropertyInformation(models.PropertyInformationCreate{CategoryID: &category.ID})
	suite.createTestCommitteeMember(models.CommitteeMemberCreate{CategoryID: &category.ID})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/category/delete/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.CategoryDeleteResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Category deleted successfully", response.Message)
	suite.Assert().Equal(int64(3), response.Detached)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/income/getAll", "")
	var list controllers.LedgerEntryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Properties, 1)
	suite.Assert().Equal(income.ID, list.Properties[0].ID)
	suite.Assert().Nil(list.Properties[0].CategoryID)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/outcome/getAll/%s", other.ID), "")
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Assert().Len(list.Properties, 1, "entries of other categories must not be detached")

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/property-information/getAll/%s", category.ID), "")
	var properties controllers.PropertyInformationListResponse
	test.DecodeResponse(suite.T(), &r, &properties)
	suite.Assert().Len(properties.Properties, 0)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/committee/getAll/%s", category.ID), "")
	var members controllers.CommitteeMemberListResponse
	test.DecodeResponse(suite.T(), &r, &members)
	suite.Assert().Len(members.Properties, 0)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/category/delete/%s", category.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCategoryDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/category/getAll", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
