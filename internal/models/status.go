package models

import (
	"strings"

	"github.com/hoa-ledger/backend/internal/types"
)

// swagger:enum PaymentStatus
type PaymentStatus string

const (
	StatusNormal        PaymentStatus = "normal"
	StatusLatePaid      PaymentStatus = "late paid"
	StatusPaidInAdvance PaymentStatus = "pay in advance"
	StatusNotUpdated    PaymentStatus = "Not Updated"
)

// Settled reports if a payment with this status counts as fully paid
// in reports, regardless of the amount.
func (s PaymentStatus) Settled() bool {
	return s == StatusLatePaid || s == StatusPaidInAdvance
}

// ParsePaymentStatus parses a payment status. Case, dashes and
// underscores are ignored. An empty string parses to def.
func ParsePaymentStatus(s string, def PaymentStatus) (PaymentStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", " ", "_", " ").Replace(normalized)

	switch normalized {
	case "":
		return def, nil
	case "normal":
		return StatusNormal, nil
	case "late paid", "late", "paid late":
		return StatusLatePaid, nil
	case "pay in advance", "paid in advance", "advance":
		return StatusPaidInAdvance, nil
	case "not updated":
		return StatusNotUpdated, nil
	}

	return "", ErrInvalidStatus
}

// Statuses maps periods to the payment status recorded for them.
type Statuses map[types.Period]PaymentStatus

// Get returns the status for a period, StatusNormal if none is recorded.
func (s Statuses) Get(period types.Period) PaymentStatus {
	status, ok := s[period]
	if !ok || status == "" {
		return StatusNormal
	}
	return status
}
