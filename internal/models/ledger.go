package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum LedgerKind
type LedgerKind string

const (
	KindIncome       LedgerKind = "income"
	KindBudgetIncome LedgerKind = "budget-income"
	KindOutcome      LedgerKind = "outcome"
)

// budgetIncomePeriod is the only period of budget income entries.
const budgetIncomePeriod types.Period = "amount"

// defaultCurrency is used when the category does not define one.
const defaultCurrency = "USD"

// LedgerEntry tracks the amounts paid or spent per period for one owner
// or expense in a category.
//
// TotalAmount is derived from PeriodAmounts. It is recomputed by the
// store on every write and never taken from input.
type LedgerEntry struct {
	DefaultModel
	Kind          LedgerKind      `gorm:"index"`
	Name          string          // Owner name for income, label for budget income and outcome
	Email         string          // Income only
	Unit          string          // Income only
	PeriodAmounts PeriodAmounts   `gorm:"serializer:lenient"`
	Contribution  decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Expected amount per period, income only
	TotalAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Statuses      Statuses        `gorm:"serializer:lenient"`
	Status        PaymentStatus   // Entry level status, budget income only
	Currency      string
	UpdateLog     AuditLog   `gorm:"serializer:lenient"`
	CategoryID    *uuid.UUID `gorm:"index"` // Nil when the category was deleted
	Category      *Category
	BudgetID      *uuid.UUID `gorm:"index"` // Nil when the entry is not part of a budget
	Budget        *Budget
	Document      *Document `gorm:"serializer:lenient"`
	Version       uint      `gorm:"not null;default:0"` // Incremented on every update
}

func (e LedgerEntry) Self() string {
	return "Ledger Entry"
}

// BeforeSave trims whitespace from string fields.
func (e *LedgerEntry) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Unit = strings.TrimSpace(e.Unit)
	return nil
}

// AfterFind ensures that the maps and the log are never nil.
func (e *LedgerEntry) AfterFind(tx *gorm.DB) error {
	err := e.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	if e.PeriodAmounts == nil {
		e.PeriodAmounts = PeriodAmounts{}
	}

	if e.Statuses == nil {
		e.Statuses = Statuses{}
	}

	if e.UpdateLog == nil {
		e.UpdateLog = AuditLog{}
	}

	return nil
}

// Amount returns the amount of a budget income entry.
func (e LedgerEntry) Amount() decimal.Decimal {
	return e.PeriodAmounts.Get(budgetIncomePeriod)
}

// updateLabel returns the operation label for updates of this entry.
func (e LedgerEntry) updateLabel(subject string, period types.Period) string {
	switch e.Kind {
	case KindIncome:
		return fmt.Sprintf("%s %s Income updated", subject, period)
	case KindOutcome:
		return fmt.Sprintf("%s %s Outcome updated", subject, period)
	default:
		return fmt.Sprintf("%s Budget Income updated", subject)
	}
}

// seedLabel returns the operation label for the creation of an entry.
func seedLabel(kind LedgerKind, name string) string {
	switch kind {
	case KindIncome:
		return fmt.Sprintf("%s Income", name)
	case KindOutcome:
		return fmt.Sprintf("%s Outcome", name)
	default:
		return fmt.Sprintf("%s Budget Income", name)
	}
}
