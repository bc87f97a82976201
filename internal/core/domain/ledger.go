package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType tags a ledger entry as money in or money out.
type EntryType string

const (
	Deposit    EntryType = "deposit"
	Withdrawal EntryType = "withdrawal"
)

// LedgerEntry represents one deposit or withdrawal event tied to an account.
type LedgerEntry struct {
	EntryID     int64           `json:"entryID"`
	AccountID   int64           `json:"accountID"`
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // always positive; Type carries the sign
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	AuditFields
}

// SignedAmount returns the amount with the sign implied by the entry type,
// positive for deposits and negative for withdrawals.
func (e LedgerEntry) SignedAmount() decimal.Decimal {
	if e.Type == Withdrawal {
		return e.Amount.Neg()
	}
	return e.Amount
}
