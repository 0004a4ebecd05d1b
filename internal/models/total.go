package models

// Recompute sets TotalAmount to the sum of all period amounts.
//
// The store calls it before every write. Code that writes ledger entries
// without going through the store must call it itself.
func (e *LedgerEntry) Recompute() {
	e.TotalAmount = e.PeriodAmounts.Sum()
}
