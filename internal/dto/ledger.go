package dto

import (
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// RecordEntryRequest creates one deposit/withdrawal event.
type RecordEntryRequest struct {
	Type        string  `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"` // YYYY-MM-DD
	Description string  `json:"description" binding:"required"`
}

// ListEntriesParams defines query parameters for listing ledger entries.
type ListEntriesParams struct {
	Type      string `form:"type" binding:"omitempty,oneof=deposit withdrawal"`
	From      string `form:"from"` // YYYY-MM-DD, inclusive
	To        string `form:"to"`   // YYYY-MM-DD, inclusive
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// LedgerEntryResponse is the externally visible shape of a ledger entry.
type LedgerEntryResponse struct {
	EntryID     int64  `json:"entryID"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ListEntriesResponse wraps a page of ledger entries.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken string                `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain LedgerEntry to its DTO
func ToLedgerEntryResponse(e domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     e.EntryID,
		Type:        string(e.Type),
		Amount:      e.Amount.String(),
		Date:        e.Date.Format("2006-01-02"),
		Description: e.Description,
	}
}

// ToListEntriesResponse converts a page of domain entries to the list DTO
func ToListEntriesResponse(entries []domain.LedgerEntry, nextToken string) ListEntriesResponse {
	resp := ListEntriesResponse{
		Entries:   make([]LedgerEntryResponse, len(entries)),
		NextToken: nextToken,
	}
	for i, e := range entries {
		resp.Entries[i] = ToLedgerEntryResponse(e)
	}
	return resp
}
