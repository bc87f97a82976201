package mapping

import (
	"database/sql"

	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	"github.com/Shalini-Dasari/TrustMed/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:   d.AccountID,
		Email:       d.Email,
		Password:    d.Password,
		FullName:    d.FullName,
		CreditScore: d.CreditScore,
		Balance:     d.Balance,
		Documents:   d.Documents,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.Card.Issued() {
		m.CardNumber = sql.NullString{String: d.Card.Number, Valid: true}
		m.CardExpiry = sql.NullString{String: d.Card.Expiry, Valid: true}
		m.CardCVV = sql.NullString{String: d.Card.CVV, Valid: true}
		m.CardStatus = sql.NullString{String: string(d.Card.Status), Valid: true}
	}
	if d.RefreshTokenHash != "" {
		m.RefreshTokenHash = sql.NullString{String: d.RefreshTokenHash, Valid: true}
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:   m.AccountID,
		Email:       m.Email,
		Password:    m.Password,
		FullName:    m.FullName,
		CreditScore: m.CreditScore,
		Balance:     m.Balance,
		Documents:   m.Documents,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.CardNumber.Valid {
		d.Card = domain.Card{
			Number: m.CardNumber.String,
			Expiry: m.CardExpiry.String,
			CVV:    m.CardCVV.String,
			Status: domain.CardStatus(m.CardStatus.String),
		}
	}
	if m.RefreshTokenHash.Valid {
		d.RefreshTokenHash = m.RefreshTokenHash.String
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	if d.Documents == nil {
		d.Documents = []string{}
	}
	return d
}
