package mapping

import (
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	"github.com/Raular78/taxi-cash-register-sub000/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:        d.ExpenseID,
		ExpenseDate:      d.Date,
		Category:         d.Category,
		Description:      d.Description,
		Amount:           d.Amount,
		Status:           models.ExpenseStatus(d.Status),
		IsRecurring:      d.IsRecurring,
		Frequency:        string(d.Frequency),
		NextDueDate:      d.NextDueDate,
		IsPaid:           d.IsPaid,
		PaymentDate:      d.PaymentDate,
		Notes:            d.Notes,
		SourceTemplateID: d.SourceTemplateID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:        m.ExpenseID,
		Date:             m.ExpenseDate,
		Category:         m.Category,
		Description:      m.Description,
		Amount:           m.Amount,
		Status:           domain.ExpenseStatus(m.Status),
		IsRecurring:      m.IsRecurring,
		Frequency:        domain.Frequency(m.Frequency),
		NextDueDate:      m.NextDueDate,
		IsPaid:           m.IsPaid,
		PaymentDate:      m.PaymentDate,
		Notes:            m.Notes,
		SourceTemplateID: m.SourceTemplateID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(modelExpenses []models.Expense) []domain.Expense {
	domainExpenses := make([]domain.Expense, len(modelExpenses))
	for i, m := range modelExpenses {
		domainExpenses[i] = ToDomainExpense(m)
	}
	return domainExpenses
}
