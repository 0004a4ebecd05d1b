package models

import (
	"time"

	"github.com/hoa-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// swagger:enum OperationKind
type OperationKind string

const (
	OperationCreated OperationKind = "created"
	OperationUpdated OperationKind = "updated"
)

// Placement is how a mutation was recorded in the audit log.
type Placement string

const (
	PlacementAppended Placement = "appended"
	PlacementAmended  Placement = "amended"
)

// AuditLogEntry records a mutation of a ledger entry.
//
// Kind, Subject and Period form the correlation key of the entry. An update
// with the same key amends the entry instead of appending a new one.
type AuditLogEntry struct {
	Date      time.Time       `json:"date" example:"2024-05-03T08:12:44Z"`             // Time of the last mutation recorded in this entry
	Amount    decimal.Decimal `json:"amount" example:"150"`                            // Amount recorded by the mutation
	Operation string          `json:"operation" example:"Alice Budget Income updated"` // Human readable description
	Status    PaymentStatus   `json:"status,omitempty" example:"late paid"`            // Payment status at the time of the mutation
	Currency  string          `json:"currency,omitempty" example:"USD"`                // Currency at the time of the mutation
	Period    types.Period    `json:"period,omitempty" example:"March"`                // The period the mutation affected, if any
	Kind      OperationKind   `json:"kind" example:"updated"`                          // Kind of operation
	Subject   string          `json:"subject" example:"Alice"`                         // Name the operation was recorded for
}

// AuditLog is the ordered list of audit entries of a ledger entry.
type AuditLog []AuditLogEntry

// Mutation describes a change to record in an audit log.
type Mutation struct {
	Label    string // The operation label used when a new entry is appended
	Subject  string
	Period   types.Period
	Amount   decimal.Decimal
	Status   PaymentStatus
	Currency string
}

// seedEntry returns the audit entry recorded when a ledger entry is created.
func seedEntry(label, subject string, amount decimal.Decimal, currency string, now time.Time) AuditLogEntry {
	return AuditLogEntry{
		Date:      now,
		Amount:    amount,
		Operation: label,
		Currency:  currency,
		Kind:      OperationCreated,
		Subject:   subject,
	}
}

// Record records a mutation in the log.
//
// If an update entry with the same subject and period exists, it is
// overwritten in place: its date becomes now and amount, status and
// currency are replaced, the operation label stays. Otherwise a new
// entry is appended. Seed entries never match, so the first update
// after creation always appends.
func (l AuditLog) Record(m Mutation, now time.Time) (AuditLog, Placement) {
	for i, entry := range l {
		if entry.Kind != OperationUpdated || entry.Subject != m.Subject || entry.Period != m.Period {
			continue
		}

		l[i].Date = now
		l[i].Amount = m.Amount
		l[i].Status = m.Status
		l[i].Currency = m.Currency
		return l, PlacementAmended
	}

	return append(l, AuditLogEntry{
		Date:      now,
		Amount:    m.Amount,
		Operation: m.Label,
		Status:    m.Status,
		Currency:  m.Currency,
		Period:    m.Period,
		Kind:      OperationUpdated,
		Subject:   m.Subject,
	}), PlacementAppended
}
