package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillRecord is the database representation of one uploaded medical bill.
type BillRecord struct {
	BillID      int64           `db:"bill_id"`
	AccountID   int64           `db:"account_id"`
	DocumentRef string          `db:"document_ref"`
	Date        time.Time       `db:"bill_date"`
	Amount      decimal.Decimal `db:"amount"`
	Status      string          `db:"status"`
	AuditFields
}
