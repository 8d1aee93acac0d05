package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// GenerationNotificationResponse is the per-expense notification payload
// returned to the caller of the generation endpoint.
type GenerationNotificationResponse struct {
	TemplateID  string          `json:"templateID"`
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     string          `json:"dueDate"`
}

// GenerateRecurringResponse is the result of one generation run.
type GenerateRecurringResponse struct {
	Success       bool                             `json:"success"`
	Generated     int                              `json:"generated"`
	Expenses      []ExpenseResponse                `json:"expenses"`
	Notifications []GenerationNotificationResponse `json:"notifications"`
}

// PendingRecurringResponse lists templates due within the look-ahead window.
type PendingRecurringResponse struct {
	Pending  int               `json:"pending"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToGenerateRecurringResponse converts a domain generation result to its DTO.
func ToGenerateRecurringResponse(result *domain.GenerationResult) GenerateRecurringResponse {
	notifications := make([]GenerationNotificationResponse, len(result.Notifications))
	for i, n := range result.Notifications {
		notifications[i] = GenerationNotificationResponse{
			TemplateID:  n.TemplateID,
			ExpenseID:   n.ExpenseID,
			Category:    n.Category,
			Description: n.Description,
			Amount:      n.Amount,
			DueDate:     n.DueDate.Format(dateLayout),
		}
	}
	return GenerateRecurringResponse{
		Success:       true,
		Generated:     len(result.Generated),
		Expenses:      ToListExpenseResponse(result.Generated),
		Notifications: notifications,
	}
}

// ToPendingRecurringResponse converts the pending-templates list to its DTO.
func ToPendingRecurringResponse(templates []domain.Expense) PendingRecurringResponse {
	return PendingRecurringResponse{
		Pending:  len(templates),
		Expenses: ToListExpenseResponse(templates),
	}
}
