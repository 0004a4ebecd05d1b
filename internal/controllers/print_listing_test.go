package controllers_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPrintPropertyListing() {
	recorder := suite.useRecorder()

	category := suite.createTestCategory(models.CategoryCreate{Name: "Sunset Gardens"})
	suite.createTestPropertyInformation(models.PropertyInformationCreate{
		Name:          "Sunset Gardens Residences",
		Address:       "12 Harbor Road",
		Location:      "Springfield",
		OwnerTitle:    "Owners Association",
		NumberOfUnits: "24",
		CategoryID:    &category.ID,
	})
	other := suite.createTestCategory(models.CategoryCreate{})
	suite.createTestPropertyInformation(models.PropertyInformationCreate{Name: "Harbor View", CategoryID: &other.ID})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/print/propertyinformation", "")
	suite.assertPDF(&r, "properties.pdf")
	suite.Require().NotNil(recorder.doc.Listing)
	suite.Assert().Equal("Property Details", recorder.doc.Title)
	suite.Assert().Len(recorder.doc.Listing.Rows, 2)
	suite.Assert().Empty(recorder.doc.Header.PropertyName, "listings of all categories have no header")

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/print/propertyinformation?categoryId=%s", category.ID), "")
	suite.assertPDF(&r, "properties.pdf")
	suite.Assert().Equal([]string{"Sr No.", "Property Name", "Address", "Ownership Title", "Units"}, recorder.doc.Listing.Columns)
	suite.Assert().Equal([][]string{{"1", "Sunset Gardens Residences", "12 Harbor Road Springfield", "Owners Association", "24"}}, recorder.doc.Listing.Rows)
	suite.Assert().Equal("Sunset Gardens Residences", recorder.doc.Header.PropertyName)
}

func (suite *TestSuiteStandard) TestPrintCommitteeListing() {
	recorder := suite.useRecorder()

	category := suite.createTestCategory(models.CategoryCreate{})
	suite.createTestCommitteeMember(models.CommitteeMemberCreate{Name: "Bob Miller", CategoryID: &category.ID})
	suite.createTestCommitteeMember(models.CommitteeMemberCreate{Name: "Carol Jones", Position: "Chair", CategoryID: &category.ID})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/print/commiti?categoryId=%s", category.ID), "")
	suite.assertPDF(&r, "property_committee.pdf")

	listing := recorder.doc.Listing
	suite.Require().NotNil(listing)
	suite.Assert().Equal([]string{"Order", "Full Name", "Position", "Phone", "Email"}, listing.Columns)
	suite.Require().Len(listing.Rows, 2)
	suite.Assert().Equal([]string{"1", "2"}, []string{listing.Rows[0][0], listing.Rows[1][0]})
	suite.Assert().ElementsMatch([]string{"Bob Miller", "Carol Jones"}, []string{listing.Rows[0][1], listing.Rows[1][1]})
	suite.Assert().Equal("+1 555 0100", listing.Rows[0][3])
}

func (suite *TestSuiteStandard) TestPrintUnitListing() {
	recorder := suite.useRecorder()

	category := suite.createTestCategory(models.CategoryCreate{Currency: "EUR"})
	unit := suite.createTestUnit(models.UnitCreate{Type: "Studio", Fee: amount(120.5), CategoryID: &category.ID})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/print/units?categoryId=%s", category.ID), "")
	suite.assertPDF(&r, "units.pdf")

	suite.Require().NotNil(recorder.doc.Listing)
	suite.Assert().Equal([][]string{{unit.UnitCode, "Studio", "120.50 EUR"}}, recorder.doc.Listing.Rows)
}

func (suite *TestSuiteStandard) TestPrintOwnerListing() {
	recorder := suite.useRecorder()

	category := suite.createTestCategory(models.CategoryCreate{})
	suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Alice", Email: "alice@example.com", Unit: "A-12", Contribution: decimal.NewFromInt(50), CategoryID: &category.ID})
	suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Bob", Amount: amount(400), CategoryID: &category.ID})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/print/owner?categoryId=%s", category.ID), "")
	suite.assertPDF(&r, "owners.pdf")

	suite.Require().NotNil(recorder.doc.Listing)
	suite.Assert().Equal([][]string{{"Alice", "alice@example.com", "A-12", "50.00 USD"}}, recorder.doc.Listing.Rows, "budget income entries are not owners")
}

func (suite *TestSuiteStandard) TestPrintListingFails() {
	category := suite.createTestCategory(models.CategoryCreate{})

	tests := []struct {
		name    string
		query   string
		status  int
		message string
	}{
		{"No properties", "propertyinformation", http.StatusNotFound, "there is no data to print"},
		{"No committee members", fmt.Sprintf("commiti?categoryId=%s", category.ID), http.StatusNotFound, "there is no data to print"},
		{"No units", "units", http.StatusNotFound, "there is no data to print"},
		{"No owners", fmt.Sprintf("owner?categoryId=%s", category.ID), http.StatusNotFound, "there is no data to print"},
		{"Unknown category", fmt.Sprintf("units?categoryId=%s", uuid.New()), http.StatusNotFound, "there is no category"},
		{"Invalid category", "commiti?categoryId=nope", http.StatusBadRequest, "not a valid UUID"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/print/%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.True(t, strings.HasPrefix(r.Header().Get("Content-Type"), "text/plain"), "errors must be plain text")
			assert.Contains(t, r.Body.String(), tt.message)
		})
	}
}
