package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestBudgetIncomeAuditLog verifies the audit log placement of repeated
// updates: updates with the same name amend one entry, a new name appends.
func (suite *TestSuiteStandard) TestBudgetIncomeAuditLog() {
	category := suite.createTestCategory(models.CategoryCreate{Currency: "eur"})
	created := suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{
		Name:       "Alice",
		Amount:     amount(100),
		CategoryID: &category.ID,
	})

	suite.Require().Len(created.UpdateLog, 1)
	suite.Assert().Equal("Alice Budget Income", created.UpdateLog[0].Operation)
	suite.Assert().Equal("EUR", created.Currency)
	suite.Assert().True(decimal.NewFromFloat(100).Equal(created.TotalAmount))

	r := suite.update("budget-income", created.ID, controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(150)}, http.StatusOK)
	suite.Assert().True(r.Success)
	suite.Assert().Equal("Budget Income updated successfully!", r.Message)
	suite.Require().Len(r.Property.UpdateLog, 2)
	suite.Assert().Equal("Alice Budget Income updated", r.Property.UpdateLog[1].Operation)

	r = suite.update("budget-income", created.ID, controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(200)}, http.StatusOK)
	suite.Require().Len(r.Property.UpdateLog, 2, "an update with the same name must amend the log entry")
	suite.Assert().True(decimal.NewFromFloat(200).Equal(r.Property.UpdateLog[1].Amount))
	suite.Assert().Equal(models.StatusNotUpdated, r.Property.UpdateLog[1].Status)
	suite.Assert().Equal(models.StatusNotUpdated, r.Property.Status)

	r = suite.update("budget-income", created.ID, controllers.BudgetIncomeEditable{Name: "Bob", Amount: amount(50), Status: "late paid"}, http.StatusOK)
	suite.Require().Len(r.Property.UpdateLog, 3)
	suite.Assert().Equal("Bob Budget Income updated", r.Property.UpdateLog[2].Operation)
	suite.Assert().Equal("Bob", r.Property.Name)
	suite.Assert().Equal(models.StatusLatePaid, r.Property.Status)
	suite.Assert().True(decimal.NewFromFloat(50).Equal(r.Property.TotalAmount))
	suite.Assert().True(decimal.NewFromFloat(50).Equal(*r.Property.Amount))
	suite.Assert().Equal(uint(3), r.Property.Version)
}

// TestBudgetIncomeWrappedBody verifies that bodies wrapped in propertyData
// are accepted.
func (suite *TestSuiteStandard) TestBudgetIncomeWrappedBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/budget-income/create", `{"propertyData": {"name": "Alice", "amount": 0}}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response controllers.LedgerEntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Alice", response.Property.Name)
	suite.Assert().True(response.Property.TotalAmount.IsZero())
	suite.Assert().Equal("USD", response.Property.Currency, "entries without category use the default currency")
	suite.Assert().Equal(fmt.Sprintf("http://example.com/budget-income/get/%s", response.Property.ID), response.Property.Links.Self)
}

func (suite *TestSuiteStandard) TestBudgetIncomeCreateFails() {
	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"No name", controllers.BudgetIncomeEditable{Amount: amount(10)}, http.StatusBadRequest, "missing: name"},
		{"No amount", controllers.BudgetIncomeEditable{Name: "Alice"}, http.StatusBadRequest, "missing: amount"},
		{"Nothing", `{}`, http.StatusBadRequest, "missing: name, amount"},
		{"Empty body", "", http.StatusBadRequest, "must not be empty"},
		{"Broken JSON", `{"name": "Alice", "amount"`, http.StatusBadRequest, "invalid or un-parseable"},
		{"Invalid status", controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1), Status: "whenever"}, http.StatusBadRequest, "payment status"},
		{"Category does not exist", controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1), CategoryID: uuidPtr(uuid.New())}, http.StatusBadRequest, "reference to another resource"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/budget-income/create", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response controllers.LedgerEntryResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Success)
			assert.Contains(t, r.Body.String(), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetIncomeUpdateFails() {
	created := suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(100)})

	tests := []struct {
		name   string
		id     string
		body   any
		status int
	}{
		{"Not a valid UUID", "NotParseableAsUUID", controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1)}, http.StatusBadRequest},
		{"Does not exist", uuid.NewString(), controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1)}, http.StatusNotFound},
		{"No amount", created.ID.String(), controllers.BudgetIncomeEditable{Name: "Alice"}, http.StatusBadRequest},
		{"No name", created.ID.String(), controllers.BudgetIncomeEditable{Amount: amount(5)}, http.StatusBadRequest},
		{"Wrong kind", suite.createTestIncome(controllers.IncomeCreate{}).ID.String(), controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, fmt.Sprintf("http://example.com/budget-income/update/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Failed updates must not touch the entry
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/budget-income/getAll", "")
	var list controllers.LedgerEntryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Properties, 1)
	suite.Assert().Len(list.Properties[0].UpdateLog, 1)
	suite.Assert().Equal(uint(0), list.Properties[0].Version)
}

func (suite *TestSuiteStandard) TestBudgetIncomeList() {
	a := suite.createTestCategory(models.CategoryCreate{})
	b := suite.createTestCategory(models.CategoryCreate{})

	suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1), CategoryID: &a.ID})
	suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Alan", Amount: amount(2), CategoryID: &a.ID})
	suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Bob", Amount: amount(3), CategoryID: &b.ID})
	suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Carol", CategoryID: &a.ID})

	tests := []struct {
		name string
		path string
		len  int
	}{
		{"All", "/budget-income/getAll", 3},
		{"Category A", fmt.Sprintf("/budget-income/getAll/%s", a.ID), 2},
		{"Category B", fmt.Sprintf("/budget-income/getAll/%s", b.ID), 1},
		{"Unknown category", fmt.Sprintf("/budget-income/getAll/%s", uuid.New()), 0},
		{"Match", fmt.Sprintf("/budget-income/getAll/%s?match=al*", a.ID), 2},
		{"Match exact", "/budget-income/getAll?match=Bob", 1},
		{"No match", "/budget-income/getAll?match=Carol", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.LedgerEntryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.True(t, response.Success)
			assert.Len(t, response.Properties, tt.len)
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/budget-income/getAll/NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestBudgetIncomeDelete() {
	created := suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(100)})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/budget-income/delete/%s", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.LedgerEntryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Budget Income deleted successfully", response.Message)
	suite.Assert().Equal(created.ID, response.Property.ID)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/budget-income/delete/%s", created.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/budget-income/update/%s", created.ID), controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1)})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestBudgetIncomeDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestBudgetIncomeDBClosed() {
	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"Create", http.MethodPost, "/budget-income/create", controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1)}},
		{"List", http.MethodGet, "/budget-income/getAll", ""},
		{"Update", http.MethodPut, fmt.Sprintf("/budget-income/update/%s", uuid.New()), controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(1)}},
		{"Delete", http.MethodDelete, fmt.Sprintf("/budget-income/delete/%s", uuid.New()), ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			r := test.Request(t, tt.method, "http://example.com"+tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Contains(t, r.Body.String(), models.ErrGeneral.Error())
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetIncomeOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/budget-income/create", "OPTIONS, POST"},
		{"/budget-income/getAll", "OPTIONS, GET"},
		{fmt.Sprintf("/budget-income/update/%s", uuid.New()), "OPTIONS, PUT"},
		{fmt.Sprintf("/budget-income/delete/%s", uuid.New()), "OPTIONS, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
