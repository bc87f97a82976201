package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CardStatus is the lifecycle state of an account's payment instrument.
type CardStatus string

const (
	CardActive CardStatus = "active"
	CardFrozen CardStatus = "frozen"
)

// Card holds the synthetic payment instrument issued to an account.
// The fields are either all set (instrument issued) or all empty.
type Card struct {
	Number string     `json:"cardNumber"` // four space-separated 4-digit groups
	Expiry string     `json:"cardExpiry"` // MM/YY
	CVV    string     `json:"-"`
	Status CardStatus `json:"cardStatus"`
}

// Issued reports whether the instrument fields have been populated.
func (c Card) Issued() bool {
	return c.Number != "" && c.Expiry != "" && c.CVV != ""
}

// Account represents a registered TrustMed user within the core domain.
// This is the primary representation used by services; the session
// snapshot is a cached copy of one of these.
type Account struct {
	AccountID   int64           `json:"accountID"` // Primary key, assigned by the store
	Email       string          `json:"email"`     // Unique across all accounts
	Password    string          `json:"-"`         // Stored and compared as plain text; known gap
	FullName    string          `json:"fullName"`
	CreditScore int             `json:"creditScore"` // Assigned once at signup, read-only after
	Card        Card            `json:"card"`
	Balance     decimal.Decimal `json:"balance"`
	Documents   []string        `json:"documents"` // data-URI base64 blobs, append-only
	AuditFields

	// Refresh token fields for the API auth surface.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
}
