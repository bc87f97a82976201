package mapping

import (
	"github.com/Shalini-Dasari/TrustMed/internal/core/domain"
	"github.com/Shalini-Dasari/TrustMed/internal/models"
)

// ToModelBillRecord converts a domain BillRecord to a model BillRecord
func ToModelBillRecord(d domain.BillRecord) models.BillRecord {
	return models.BillRecord{
		BillID:      d.BillID,
		AccountID:   d.AccountID,
		DocumentRef: d.DocumentRef,
		Date:        d.Date,
		Amount:      d.Amount,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBillRecord converts a model BillRecord to a domain BillRecord
func ToDomainBillRecord(m models.BillRecord) domain.BillRecord {
	return domain.BillRecord{
		BillID:      m.BillID,
		AccountID:   m.AccountID,
		DocumentRef: m.DocumentRef,
		Date:        m.Date,
		Amount:      m.Amount,
		Status:      domain.BillStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBillRecordSlice converts a slice of model bills to domain bills
func ToDomainBillRecordSlice(ms []models.BillRecord) []domain.BillRecord {
	ds := make([]domain.BillRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBillRecord(m)
	}
	return ds
}
