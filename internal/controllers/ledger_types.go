package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type LedgerEntryLinks struct {
	Self string `json:"self" example:"https://example.com/api/income/get/65392deb-5e92-4268-b114-297faad6cdce"` // The entry itself
}

// LedgerEntry is the API representation of a ledger entry.
type LedgerEntry struct {
	models.DefaultModel
	Kind          models.LedgerKind    `json:"kind" example:"income"`                                     // Kind of the entry
	Name          string               `json:"name" example:"Alice"`                                      // Owner name for income, label otherwise
	OwnerName     string               `json:"ownerName,omitempty" example:"Alice"`                       // Owner name, income only
	Email         string               `json:"email,omitempty" example:"alice@example.com"`               // Owner email, income only
	Unit          string               `json:"unit,omitempty" example:"A-12"`                             // Unit of the owner, income only
	Amount        *decimal.Decimal     `json:"amount,omitempty" example:"150"`                            // Amount, budget income only
	PeriodAmounts models.PeriodAmounts `json:"periodAmounts"`                                             // Amounts per period
	Contribution  *decimal.Decimal     `json:"contribution,omitempty" example:"50"`                       // Expected amount per month, income only
	TotalAmount   decimal.Decimal      `json:"totalAmount" example:"150"`                                 // Sum of all period amounts
	Statuses      models.Statuses      `json:"statuses"`                                                  // Payment status per period
	Status        models.PaymentStatus `json:"status,omitempty" example:"Not Updated"`                    // Payment status, budget income only
	Currency      string               `json:"currency" example:"USD"`                                    // ISO 4217 code
	UpdateLog     models.AuditLog      `json:"updateLog"`                                                 // Audit log of all mutations
	CategoryID    *uuid.UUID           `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category, null if it was deleted
	BudgetID      *uuid.UUID           `json:"budgetId" example:"5c1a5a3e-8a8e-4b51-9a38-52b7b8f2de3c"`   // ID of the budget, null if the entry is not part of one
	Document      *models.Document     `json:"document"`                                                  // Attached document
	Version       uint                 `json:"version" example:"3"`                                       // Incremented on every update
	Links         LedgerEntryLinks     `json:"links"`                                                     // Links for the entry
}

func newLedgerEntry(c *gin.Context, model models.LedgerEntry) LedgerEntry {
	url := c.GetString(string(models.DBContextURL))

	e := LedgerEntry{
		DefaultModel:  model.DefaultModel,
		Kind:          model.Kind,
		Name:          model.Name,
		PeriodAmounts: model.PeriodAmounts,
		TotalAmount:   model.TotalAmount,
		Statuses:      model.Statuses,
		Status:        model.Status,
		Currency:      model.Currency,
		UpdateLog:     model.UpdateLog,
		CategoryID:    model.CategoryID,
		BudgetID:      model.BudgetID,
		Document:      model.Document,
		Version:       model.Version,
		Links: LedgerEntryLinks{
			Self: fmt.Sprintf("%s/%s/get/%s", url, model.Kind, model.ID),
		},
	}

	switch model.Kind {
	case models.KindIncome:
		contribution := model.Contribution
		e.OwnerName = model.Name
		e.Email = model.Email
		e.Unit = model.Unit
		e.Contribution = &contribution
	case models.KindBudgetIncome:
		amount := model.Amount()
		e.Amount = &amount
	}

	// Never send null for the maps and the log
	if e.PeriodAmounts == nil {
		e.PeriodAmounts = models.PeriodAmounts{}
	}
	if e.Statuses == nil {
		e.Statuses = models.Statuses{}
	}
	if e.UpdateLog == nil {
		e.UpdateLog = models.AuditLog{}
	}

	return e
}

func newLedgerEntries(c *gin.Context, list []models.LedgerEntry, match string) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(list))
	for _, model := range list {
		if !httputil.Match(match, model.Name) {
			continue
		}
		entries = append(entries, newLedgerEntry(c, model))
	}
	return entries
}

type LedgerEntryResponse struct {
	Success  bool         `json:"success" example:"true"`                                   // If the request was successful
	Message  string       `json:"message,omitempty" example:"Income updated successfully!"` // Human readable result
	Property *LedgerEntry `json:"property,omitempty"`                                       // The ledger entry
}

type LedgerEntryListResponse struct {
	Success    bool          `json:"success" example:"true"` // If the request was successful
	Properties []LedgerEntry `json:"properties"`             // List of ledger entries
}

// BudgetIncomeEditable is the body to create or update budget income.
type BudgetIncomeEditable struct {
	Name       string              `json:"name" example:"Alice"`                                      // Name of the owner
	Amount     decimal.NullDecimal `json:"amount" swaggertype:"number" example:"150"`                 // Amount, required. Zero is allowed
	CategoryID *uuid.UUID          `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category, ignored on update
	BudgetID   *uuid.UUID          `json:"budgetId" example:"5c1a5a3e-8a8e-4b51-9a38-52b7b8f2de3c"`   // ID of the budget, ignored on update
	Document   *models.Document    `json:"document"`                                                  // Attached document
	Status     string              `json:"status" example:"late paid"`                                // Payment status
}

// IncomeCreate is the body to create an income entry.
type IncomeCreate struct {
	OwnerName    string          `json:"ownerName" example:"Alice"`                                 // Name of the owner, required
	Email        string          `json:"email" example:"alice@example.com"`                         // Email of the owner
	Unit         string          `json:"unit" example:"A-12"`                                       // Unit of the owner
	Contribution decimal.Decimal `json:"contribution" swaggertype:"number" example:"50"`            // Expected amount per month
	CategoryID   *uuid.UUID      `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
}

// IncomeUpdate sets the amount paid in one month.
type IncomeUpdate struct {
	Month  string              `json:"month" example:"March"`                    // Month name, number or YYYY-MM
	Amount decimal.NullDecimal `json:"amount" swaggertype:"number" example:"50"` // Amount paid, required
	Status string              `json:"status" example:"pay in advance"`          // Payment status, defaults to normal
}

// OutcomeCreate is the body to create an outcome entry.
type OutcomeCreate struct {
	Name          string               `json:"name" example:"Gardening"`                                  // Name of the expense, required
	CategoryID    *uuid.UUID           `json:"categoryId" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // ID of the category
	BudgetID      *uuid.UUID           `json:"budgetId" example:"5c1a5a3e-8a8e-4b51-9a38-52b7b8f2de3c"`   // ID of the budget
	PeriodAmounts models.PeriodAmounts `json:"periodAmounts"`                                             // Initial amounts per period
}

// OutcomeUpdate sets the amount spent in one period.
type OutcomeUpdate struct {
	Month  string              `json:"month" example:"Q2"`                        // Period, free form
	Amount decimal.NullDecimal `json:"amount" swaggertype:"number" example:"120"` // Amount spent, required
}

// BudgetData is the budget of a category.
type BudgetData struct {
	Income       []LedgerEntry   `json:"income"`                    // Budget income entries
	Outcome      []LedgerEntry   `json:"outcome"`                   // Outcome entries
	IncomeTotal  decimal.Decimal `json:"incomeTotal" example:"900"` // Sum of all budget income
	OutcomeTotal decimal.Decimal `json:"outcomeTotal" example:"650"`
	Balance      decimal.Decimal `json:"balance" example:"250"` // IncomeTotal minus OutcomeTotal
}

type BudgetDataResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"Budget data fetched successfully"`
	Data    BudgetData `json:"data"`
}
