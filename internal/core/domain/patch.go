package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountPatch is a typed partial update for one account. Each field
// group is optional; nil means "leave unchanged". Using explicit field
// groups instead of an open-ended map keeps partial updates
// compile-time safe.
type AccountPatch struct {
	// Card replaces the full instrument field group (issue/regenerate).
	Card *Card
	// CardStatus toggles the freeze state without touching the other
	// instrument fields.
	CardStatus *CardStatus
	// Balance replaces the stored balance.
	Balance *decimal.Decimal
	// AppendDocuments is appended atomically to the end of the
	// account's document list.
	AppendDocuments []string
}

// Empty reports whether the patch would change nothing.
func (p AccountPatch) Empty() bool {
	return p.Card == nil && p.CardStatus == nil && p.Balance == nil && len(p.AppendDocuments) == 0
}

// LedgerFilter narrows a ledger entry listing.
type LedgerFilter struct {
	Type      *EntryType
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken string // opaque cursor from a previous page
}
