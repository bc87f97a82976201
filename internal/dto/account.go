package dto

import (
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
)

// AccountResponse is the externally visible shape of an account.
type AccountResponse struct {
	AccountID   int64    `json:"accountID"`
	Email       string   `json:"email"`
	FullName    string   `json:"fullName"`
	CreditScore int      `json:"creditScore"`
	CardNumber  string   `json:"cardNumber,omitempty"`
	CardExpiry  string   `json:"cardExpiry,omitempty"`
	CardCVV     string   `json:"cardCvv,omitempty"`
	CardStatus  string   `json:"cardStatus,omitempty"`
	Balance     string   `json:"balance"`
	Documents   []string `json:"documents"`
}

// ToAccountResponse converts a domain Account to an AccountResponse DTO
func ToAccountResponse(a *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:   a.AccountID,
		Email:       a.Email,
		FullName:    a.FullName,
		CreditScore: a.CreditScore,
		Balance:     a.Balance.String(),
		Documents:   a.Documents,
	}
	if a.Card.Issued() {
		resp.CardNumber = a.Card.Number
		resp.CardExpiry = a.Card.Expiry
		resp.CardCVV = a.Card.CVV
		resp.CardStatus = string(a.Card.Status)
	}
	if resp.Documents == nil {
		resp.Documents = []string{}
	}
	return resp
}

// UpdateCardStatusRequest toggles the freeze state of the instrument.
type UpdateCardStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active frozen"`
}
