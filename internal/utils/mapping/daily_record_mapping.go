package mapping

import (
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	"github.com/Raular78/taxi-cash-register-sub000/internal/models"
)

// ToModelDailyRecord converts a domain DailyRecord to a model DailyRecord
func ToModelDailyRecord(d domain.DailyRecord) models.DailyRecord {
	return models.DailyRecord{
		RecordID:      d.RecordID,
		DriverID:      d.DriverID,
		RecordDate:    d.Date,
		Kilometers:    d.Kilometers,
		CashIncome:    d.CashIncome,
		CardIncome:    d.CardIncome,
		InvoiceIncome: d.InvoiceIncome,
		FuelExpense:   d.FuelExpense,
		OtherExpenses: d.OtherExpenses,
		Notes:         d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainDailyRecord converts a model DailyRecord to a domain DailyRecord
func ToDomainDailyRecord(m models.DailyRecord) domain.DailyRecord {
	return domain.DailyRecord{
		RecordID:      m.RecordID,
		DriverID:      m.DriverID,
		Date:          m.RecordDate,
		Kilometers:    m.Kilometers,
		CashIncome:    m.CashIncome,
		CardIncome:    m.CardIncome,
		InvoiceIncome: m.InvoiceIncome,
		FuelExpense:   m.FuelExpense,
		OtherExpenses: m.OtherExpenses,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainDailyRecordSlice converts a slice of model DailyRecords to domain DailyRecords
func ToDomainDailyRecordSlice(modelRecords []models.DailyRecord) []domain.DailyRecord {
	domainRecords := make([]domain.DailyRecord, len(modelRecords))
	for i, m := range modelRecords {
		domainRecords[i] = ToDomainDailyRecord(m)
	}
	return domainRecords
}
