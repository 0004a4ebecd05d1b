package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestLedgerEntrySelfLink verifies that the self link of every kind of
// entry resolves to the entry.
func (suite *TestSuiteStandard) TestLedgerEntrySelfLink() {
	entries := []controllers.LedgerEntry{
		suite.createTestBudgetIncome(controllers.BudgetIncomeEditable{Name: "Alice", Amount: amount(10)}),
		suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Bob"}),
		suite.createTestOutcome(controllers.OutcomeCreate{Name: "Gardening"}),
	}

	for _, entry := range entries {
		suite.T().Run(string(entry.Kind), func(t *testing.T) {
			r := test.Request(t, http.MethodGet, entry.Links.Self, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response controllers.LedgerEntryResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, entry.ID, response.Property.ID)
			assert.Equal(t, entry.Kind, response.Property.Kind)
			assert.Equal(t, entry.Links.Self, response.Property.Links.Self)
		})
	}
}

func (suite *TestSuiteStandard) TestLedgerEntryGetFails() {
	income := suite.createTestIncome(controllers.IncomeCreate{OwnerName: "Bob"})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Unknown ID", fmt.Sprintf("income/get/%s", uuid.New()), http.StatusNotFound},
		{"Other kind", fmt.Sprintf("outcome/get/%s", income.ID), http.StatusNotFound},
		{"Invalid ID", "budget-income/get/nope", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
