package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database representation of one deposit/withdrawal event.
type LedgerEntry struct {
	EntryID     int64           `db:"entry_id"`
	AccountID   int64           `db:"account_id"`
	Type        string          `db:"entry_type"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"entry_date"`
	Description string          `db:"description"`
	AuditFields
}
