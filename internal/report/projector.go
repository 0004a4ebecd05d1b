// Package report projects ledger entries into printable tables and renders
// them.
//
// Projections only read ledger entries, they never modify them.
package report

import (
	"time"

	"github.com/hoa-ledger/backend/internal/models"
	"github.com/hoa-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Row is one line of a report table.
type Row struct {
	SrNo      int                  `json:"srNo" example:"1"`
	Label     string               `json:"label" example:"Alice"` // Owner name or month, depending on the report
	Paid      decimal.Decimal      `json:"paidAmount" example:"50"`
	Remaining decimal.Decimal      `json:"remainingAmount" example:"0"`
	Status    models.PaymentStatus `json:"status,omitempty" example:"pay in advance"`
}

// Table is a projected list of rows with totals over all rows.
type Table struct {
	LabelColumn    string          `json:"labelColumn" example:"Owner Name"`
	Rows           []Row           `json:"rows"`
	TotalPaid      decimal.Decimal `json:"totalPaid" example:"220"`
	TotalRemaining decimal.Decimal `json:"totalRemaining" example:"30"`
}

func newTable(labelColumn string) Table {
	return Table{
		LabelColumn:    labelColumn,
		Rows:           []Row{},
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
}

func (t *Table) add(label string, paid, remaining decimal.Decimal, status models.PaymentStatus) {
	t.Rows = append(t.Rows, Row{
		SrNo:      len(t.Rows) + 1,
		Label:     label,
		Paid:      paid,
		Remaining: remaining,
		Status:    status,
	})

	t.TotalPaid = t.TotalPaid.Add(paid)
	t.TotalRemaining = t.TotalRemaining.Add(remaining)
}

// Remaining returns the amount still owed for a period.
//
// A settled period owes nothing, regardless of what was paid.
func Remaining(contribution, paid decimal.Decimal, status models.PaymentStatus) decimal.Decimal {
	if status.Settled() {
		return decimal.Zero
	}
	return contribution.Sub(paid)
}

// CreatedIn returns the entries created in the year. The input is not
// modified.
func CreatedIn(entries []models.LedgerEntry, year int) []models.LedgerEntry {
	return slices.DeleteFunc(slices.Clone(entries), func(e models.LedgerEntry) bool {
		return e.CreatedAt.Year() != year
	})
}

// Month projects one row per entry for a single month.
func Month(entries []models.LedgerEntry, month types.Period) Table {
	t := newTable("Owner Name")

	for _, e := range entries {
		paid := e.PeriodAmounts.Get(month)
		status := e.Statuses.Get(month)
		t.add(e.Name, paid, Remaining(e.Contribution, paid, status), status)
	}

	return t
}

// YearToDate projects one row per entry with the amounts paid and
// remaining from January through the given month.
func YearToDate(entries []models.LedgerEntry, through time.Month) Table {
	t := newTable("Owner Name")
	months := types.MonthsThrough(through)

	for _, e := range entries {
		paid := decimal.Zero
		remaining := decimal.Zero

		for _, m := range months {
			p := e.PeriodAmounts.Get(m)
			paid = paid.Add(p)
			remaining = remaining.Add(Remaining(e.Contribution, p, e.Statuses.Get(m)))
		}

		t.add(e.Name, paid, remaining, "")
	}

	return t
}

// Owner projects one row per month of the year for a single entry.
func Owner(entry models.LedgerEntry) Table {
	t := newTable("Month")

	for _, m := range types.Months {
		paid := entry.PeriodAmounts.Get(m)
		status := entry.Statuses.Get(m)
		t.add(m.String(), paid, Remaining(entry.Contribution, paid, status), status)
	}

	return t
}
