package mapping

import (
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	"github.com/Raular78/taxi-cash-register-sub000/internal/models"
)

// ToModelFuelExpense converts a domain FuelExpense to a model FuelExpense
func ToModelFuelExpense(d domain.FuelExpense) models.FuelExpense {
	return models.FuelExpense{
		FuelExpenseID: d.FuelExpenseID,
		ExpenseDate:   d.Date,
		Liters:        d.Liters,
		Amount:        d.Amount,
		Station:       d.Station,
		Notes:         d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainFuelExpense converts a model FuelExpense to a domain FuelExpense
func ToDomainFuelExpense(m models.FuelExpense) domain.FuelExpense {
	return domain.FuelExpense{
		FuelExpenseID: m.FuelExpenseID,
		Date:          m.ExpenseDate,
		Liters:        m.Liters,
		Amount:        m.Amount,
		Station:       m.Station,
		Notes:         m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainFuelExpenseSlice converts a slice of model FuelExpenses to domain FuelExpenses
func ToDomainFuelExpenseSlice(modelFuels []models.FuelExpense) []domain.FuelExpense {
	domainFuels := make([]domain.FuelExpense, len(modelFuels))
	for i, m := range modelFuels {
		domainFuels[i] = ToDomainFuelExpense(m)
	}
	return domainFuels
}
