package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetOverview is the budget of a category: all budget income and
// outcome entries with their totals.
type BudgetOverview struct {
	Income       []LedgerEntry
	Outcome      []LedgerEntry
	IncomeTotal  decimal.Decimal
	OutcomeTotal decimal.Decimal
	Balance      decimal.Decimal // IncomeTotal - OutcomeTotal
}

// FindBudgetOverview returns the budget overview for a category. If
// budgetID is not nil, only entries of that budget are part of it.
func FindBudgetOverview(db *gorm.DB, categoryID uuid.UUID, budgetID *uuid.UUID) (BudgetOverview, error) {
	income, err := findLedgerEntries(db, KindBudgetIncome, &categoryID, budgetID)
	if err != nil {
		return BudgetOverview{}, err
	}

	outcome, err := findLedgerEntries(db, KindOutcome, &categoryID, budgetID)
	if err != nil {
		return BudgetOverview{}, err
	}

	o := BudgetOverview{
		Income:       income,
		Outcome:      outcome,
		IncomeTotal:  sumTotals(income),
		OutcomeTotal: sumTotals(outcome),
	}
	o.Balance = o.IncomeTotal.Sub(o.OutcomeTotal)

	return o, nil
}

func sumTotals(entries []LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.TotalAmount)
	}
	return total
}
