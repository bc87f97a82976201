package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Account is the database representation of a registered user.
// The card_* columns are NULL until an instrument is issued.
type Account struct {
	AccountID   int64           `db:"account_id"`
	Email       string          `db:"email"`
	Password    string          `db:"password"`
	FullName    string          `db:"full_name"`
	CreditScore int             `db:"credit_score"`
	CardNumber  sql.NullString  `db:"card_number"`
	CardExpiry  sql.NullString  `db:"card_expiry"`
	CardCVV     sql.NullString  `db:"card_cvv"`
	CardStatus  sql.NullString  `db:"card_status"`
	Balance     decimal.Decimal `db:"balance"`
	Documents   []string        `db:"documents"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}

// AuditFields holds standard audit columns shared by all tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
