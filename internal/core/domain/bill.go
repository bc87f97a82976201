package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the review state of an uploaded medical bill.
type BillStatus string

const (
	BillPending  BillStatus = "pending"
	BillApproved BillStatus = "approved"
	BillRejected BillStatus = "rejected"
)

// Valid reports whether s is one of the known bill statuses.
func (s BillStatus) Valid() bool {
	switch s {
	case BillPending, BillApproved, BillRejected:
		return true
	}
	return false
}

// BillRecord represents one uploaded medical bill tied to an account.
type BillRecord struct {
	BillID      int64           `json:"billID"`
	AccountID   int64           `json:"accountID"`
	DocumentRef string          `json:"documentRef"` // reference to the uploaded document
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      BillStatus      `json:"status"`
	AuditFields
}
