package models

import (
	"encoding/json"

	"github.com/hoa-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PeriodAmounts maps periods to the amount paid or spent in them.
type PeriodAmounts map[types.Period]decimal.Decimal

// Sum returns the sum of all amounts.
func (p PeriodAmounts) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range p {
		total = total.Add(amount)
	}
	return total
}

// Get returns the amount for a period, zero if it is not set.
func (p PeriodAmounts) Get(period types.Period) decimal.Decimal {
	return p[period]
}

// UnmarshalJSON decodes period amounts leniently.
//
// Stored data is not always clean: values that are null, strings that do
// not parse as numbers or any other JSON type decode as zero. A value
// that is not an object decodes as an empty map.
func (p *PeriodAmounts) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*p = PeriodAmounts{}
		return nil
	}

	amounts := make(PeriodAmounts, len(raw))
	for key, value := range raw {
		amounts[types.Period(key)] = coerceAmount(value)
	}

	*p = amounts
	return nil
}

func coerceAmount(value json.RawMessage) decimal.Decimal {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(value); err != nil {
		return decimal.Zero
	}
	return d
}

// zeroMonths returns period amounts with all twelve months set to zero.
func zeroMonths() PeriodAmounts {
	amounts := make(PeriodAmounts, len(types.Months))
	for _, m := range types.Months {
		amounts[m] = decimal.Zero
	}
	return amounts
}
