package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hoa-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetIncomeCreate holds the values to create a budget income entry.
type BudgetIncomeCreate struct {
	Name       string
	Amount     decimal.NullDecimal
	CategoryID *uuid.UUID
	BudgetID   *uuid.UUID
	Document   *Document
	Status     PaymentStatus
}

// BudgetIncomeUpdate holds the values to update a budget income entry.
type BudgetIncomeUpdate struct {
	Name     string
	Amount   decimal.NullDecimal
	Document *Document
	Status   PaymentStatus // StatusNotUpdated if empty
}

// IncomeCreate holds the values to create an income entry.
type IncomeCreate struct {
	OwnerName    string
	Email        string
	Unit         string
	Contribution decimal.Decimal
	CategoryID   *uuid.UUID
}

// IncomeUpdate sets the amount paid in one month.
type IncomeUpdate struct {
	Month  types.Period
	Amount decimal.NullDecimal
	Status PaymentStatus // StatusNormal if empty
}

// OutcomeCreate holds the values to create an outcome entry.
type OutcomeCreate struct {
	Name          string
	CategoryID    *uuid.UUID
	BudgetID      *uuid.UUID
	PeriodAmounts PeriodAmounts
}

// OutcomeUpdate sets the amount spent in one period.
type OutcomeUpdate struct {
	Period types.Period
	Amount decimal.NullDecimal
}

func missing(fields ...string) error {
	return fmt.Errorf("%w, missing: %s", ErrMissingFields, strings.Join(fields, ", "))
}

// CreateBudgetIncome creates a budget income entry with a single seed
// audit entry.
func CreateBudgetIncome(db *gorm.DB, create BudgetIncomeCreate) (LedgerEntry, error) {
	var absent []string
	if strings.TrimSpace(create.Name) == "" {
		absent = append(absent, "name")
	}
	if !create.Amount.Valid {
		absent = append(absent, "amount")
	}
	if len(absent) > 0 {
		return LedgerEntry{}, missing(absent...)
	}

	currency, err := categoryCurrency(db, create.CategoryID)
	if err != nil {
		return LedgerEntry{}, err
	}

	name := strings.TrimSpace(create.Name)
	entry := LedgerEntry{
		Kind:          KindBudgetIncome,
		Name:          name,
		PeriodAmounts: PeriodAmounts{budgetIncomePeriod: create.Amount.Decimal},
		Statuses:      Statuses{},
		Status:        create.Status,
		Currency:      currency,
		CategoryID:    create.CategoryID,
		BudgetID:      create.BudgetID,
		Document:      create.Document,
		UpdateLog: AuditLog{
			seedEntry(seedLabel(KindBudgetIncome, name), name, create.Amount.Decimal, currency, db.NowFunc()),
		},
	}

	err = createLedgerEntry(db, &entry)
	return entry, err
}

// CreateIncome creates an income entry with all twelve months set to zero.
func CreateIncome(db *gorm.DB, create IncomeCreate) (LedgerEntry, error) {
	if strings.TrimSpace(create.OwnerName) == "" {
		return LedgerEntry{}, missing("ownerName")
	}

	currency, err := categoryCurrency(db, create.CategoryID)
	if err != nil {
		return LedgerEntry{}, err
	}

	name := strings.TrimSpace(create.OwnerName)
	entry := LedgerEntry{
		Kind:          KindIncome,
		Name:          name,
		Email:         create.Email,
		Unit:          create.Unit,
		PeriodAmounts: zeroMonths(),
		Contribution:  create.Contribution,
		Statuses:      Statuses{},
		Currency:      currency,
		CategoryID:    create.CategoryID,
		UpdateLog: AuditLog{
			seedEntry(seedLabel(KindIncome, name), name, decimal.Zero, currency, db.NowFunc()),
		},
	}

	err = createLedgerEntry(db, &entry)
	return entry, err
}

// CreateOutcome creates an outcome entry.
func CreateOutcome(db *gorm.DB, create OutcomeCreate) (LedgerEntry, error) {
	if strings.TrimSpace(create.Name) == "" {
		return LedgerEntry{}, missing("name")
	}

	amounts := PeriodAmounts{}
	for period, amount := range create.PeriodAmounts {
		if strings.TrimSpace(string(period)) == "" {
			return LedgerEntry{}, ErrPeriodEmpty
		}
		amounts[period] = amount
	}

	currency, err := categoryCurrency(db, create.CategoryID)
	if err != nil {
		return LedgerEntry{}, err
	}

	name := strings.TrimSpace(create.Name)
	entry := LedgerEntry{
		Kind:          KindOutcome,
		Name:          name,
		PeriodAmounts: amounts,
		Statuses:      Statuses{},
		Currency:      currency,
		CategoryID:    create.CategoryID,
		BudgetID:      create.BudgetID,
		UpdateLog: AuditLog{
			seedEntry(seedLabel(KindOutcome, name), name, amounts.Sum(), currency, db.NowFunc()),
		},
	}

	err = createLedgerEntry(db, &entry)
	return entry, err
}

// FindLedgerEntry returns the entry of the given kind with the ID.
func FindLedgerEntry(db *gorm.DB, kind LedgerKind, id uuid.UUID) (LedgerEntry, error) {
	var entry LedgerEntry
	err := db.Where("kind = ?", kind).First(&entry, "id = ?", id).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	return entry, nil
}

// FindLedgerEntries returns all entries of a kind. If categoryID is not nil,
// only entries of that category are returned.
//
// Entries are ordered by creation time, callers must not rely on it.
func FindLedgerEntries(db *gorm.DB, kind LedgerKind, categoryID *uuid.UUID) ([]LedgerEntry, error) {
	return findLedgerEntries(db, kind, categoryID, nil)
}

func findLedgerEntries(db *gorm.DB, kind LedgerKind, categoryID, budgetID *uuid.UUID) ([]LedgerEntry, error) {
	q := db.Where("kind = ?", kind).Order("created_at ASC, id ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if budgetID != nil {
		q = q.Where("budget_id = ?", *budgetID)
	}

	var entries []LedgerEntry
	err := q.Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// UpdateBudgetIncome applies an update to a budget income entry and
// records it in the audit log.
//
// The log entry label is built from the new name. Updates with an
// unchanged name collapse into one log entry, see AuditLog.Record.
func UpdateBudgetIncome(db *gorm.DB, id uuid.UUID, update BudgetIncomeUpdate) (LedgerEntry, Placement, error) {
	var absent []string
	if strings.TrimSpace(update.Name) == "" {
		absent = append(absent, "name")
	}
	if !update.Amount.Valid {
		absent = append(absent, "amount")
	}
	if len(absent) > 0 {
		return LedgerEntry{}, "", missing(absent...)
	}

	entry, err := FindLedgerEntry(db, KindBudgetIncome, id)
	if err != nil {
		return LedgerEntry{}, "", err
	}

	status := update.Status
	if status == "" {
		status = StatusNotUpdated
	}

	name := strings.TrimSpace(update.Name)
	log, placement := entry.UpdateLog.Record(Mutation{
		Label:    entry.updateLabel(name, ""),
		Subject:  name,
		Amount:   update.Amount.Decimal,
		Status:   status,
		Currency: entry.currency(),
	}, db.NowFunc())

	entry.UpdateLog = log
	entry.Name = name
	entry.PeriodAmounts = PeriodAmounts{budgetIncomePeriod: update.Amount.Decimal}
	entry.Document = update.Document
	entry.Status = status

	err = saveLedgerEntry(db, &entry)
	if err != nil {
		return LedgerEntry{}, "", err
	}

	return entry, placement, nil
}

// UpdateIncomeMonth sets the paid amount and payment status of one month
// of an income entry and records it in the audit log.
func UpdateIncomeMonth(db *gorm.DB, id uuid.UUID, update IncomeUpdate) (LedgerEntry, Placement, error) {
	var absent []string
	if update.Month == "" {
		absent = append(absent, "month")
	}
	if !update.Amount.Valid {
		absent = append(absent, "amount")
	}
	if len(absent) > 0 {
		return LedgerEntry{}, "", missing(absent...)
	}

	if !update.Month.IsMonth() {
		return LedgerEntry{}, "", types.ErrInvalidMonth
	}

	entry, err := FindLedgerEntry(db, KindIncome, id)
	if err != nil {
		return LedgerEntry{}, "", err
	}

	status := update.Status
	if status == "" {
		status = StatusNormal
	}

	log, placement := entry.UpdateLog.Record(Mutation{
		Label:    entry.updateLabel(entry.Name, update.Month),
		Subject:  entry.Name,
		Period:   update.Month,
		Amount:   update.Amount.Decimal,
		Status:   status,
		Currency: entry.currency(),
	}, db.NowFunc())

	entry.UpdateLog = log
	entry.PeriodAmounts[update.Month] = update.Amount.Decimal
	entry.Statuses[update.Month] = status

	err = saveLedgerEntry(db, &entry)
	if err != nil {
		return LedgerEntry{}, "", err
	}

	return entry, placement, nil
}

// UpdateOutcomePeriod sets the amount spent in one period of an outcome
// entry and records it in the audit log.
func UpdateOutcomePeriod(db *gorm.DB, id uuid.UUID, update OutcomeUpdate) (LedgerEntry, Placement, error) {
	period := types.Period(strings.TrimSpace(string(update.Period)))

	var absent []string
	if period == "" {
		absent = append(absent, "month")
	}
	if !update.Amount.Valid {
		absent = append(absent, "amount")
	}
	if len(absent) > 0 {
		return LedgerEntry{}, "", missing(absent...)
	}

	entry, err := FindLedgerEntry(db, KindOutcome, id)
	if err != nil {
		return LedgerEntry{}, "", err
	}

	log, placement := entry.UpdateLog.Record(Mutation{
		Label:    entry.updateLabel(entry.Name, period),
		Subject:  entry.Name,
		Period:   period,
		Amount:   update.Amount.Decimal,
		Currency: entry.currency(),
	}, db.NowFunc())

	entry.UpdateLog = log
	entry.PeriodAmounts[period] = update.Amount.Decimal

	err = saveLedgerEntry(db, &entry)
	if err != nil {
		return LedgerEntry{}, "", err
	}

	return entry, placement, nil
}

// DeleteLedgerEntry hard deletes an entry and returns it.
func DeleteLedgerEntry(db *gorm.DB, kind LedgerKind, id uuid.UUID) (LedgerEntry, error) {
	entry, err := FindLedgerEntry(db, kind, id)
	if err != nil {
		return LedgerEntry{}, err
	}

	err = db.Delete(&entry).Error
	if err != nil {
		return LedgerEntry{}, err
	}

	return entry, nil
}

// DetachCategory removes the category reference from all ledger entries
// of the category. It returns the number of detached entries.
func DetachCategory(db *gorm.DB, categoryID uuid.UUID) (int64, error) {
	result := db.Model(&LedgerEntry{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil)

	return result.RowsAffected, result.Error
}

// createLedgerEntry recomputes the total and creates the entry.
func createLedgerEntry(db *gorm.DB, entry *LedgerEntry) error {
	entry.Recompute()
	return db.Omit("Category", "Budget").Create(entry).Error
}

// saveLedgerEntry recomputes the total and writes all fields of the entry.
//
// The write only succeeds if the entry has not been updated since it was
// read. Otherwise, ErrConflict is returned.
func saveLedgerEntry(db *gorm.DB, entry *LedgerEntry) error {
	entry.Recompute()

	read := entry.Version
	entry.Version++

	result := db.Model(entry).
		Where("version = ?", read).
		Select("*").
		Omit("CreatedAt", "Category", "Budget").
		Updates(entry)
	if result.Error != nil {
		entry.Version = read
		return result.Error
	}

	if result.RowsAffected == 0 {
		entry.Version = read

		var count int64
		err := db.Model(&LedgerEntry{}).Where("id = ?", entry.ID).Count(&count).Error
		if err != nil {
			return err
		}

		if count == 0 {
			return fmt.Errorf("%w ledger entry matching your query", ErrResourceNotFound)
		}
		return ErrConflict
	}

	return nil
}

// categoryCurrency returns the currency of the category, the default
// currency if the category does not set one or no category is given.
func categoryCurrency(db *gorm.DB, categoryID *uuid.UUID) (string, error) {
	if categoryID == nil {
		return defaultCurrency, nil
	}

	var category Category
	err := db.First(&category, "id = ?", *categoryID).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return "", ErrReferenceNotFound
		}
		return "", err
	}

	return category.EffectiveCurrency(), nil
}

func (e LedgerEntry) currency() string {
	if e.Currency == "" {
		return defaultCurrency
	}
	return e.Currency
}
