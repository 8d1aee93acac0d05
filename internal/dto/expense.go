package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to create a new expense entry
// or recurring template.
type CreateExpenseRequest struct {
	Date        time.Time        `json:"date" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	IsRecurring bool             `json:"isRecurring"`
	Frequency   domain.Frequency `json:"frequency" binding:"omitempty,frequency"`
	NextDueDate *time.Time       `json:"nextDueDate"` // Required for templates, validated in service
	IsPaid      bool             `json:"isPaid"`
	PaymentDate *time.Time       `json:"paymentDate"`
	Notes       string           `json:"notes"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateExpenseRequest struct {
	Date        *time.Time       `json:"date"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Frequency   *string          `json:"frequency" binding:"omitempty"`
	NextDueDate *time.Time       `json:"nextDueDate"`
	IsPaid      *bool            `json:"isPaid"`
	PaymentDate *time.Time       `json:"paymentDate"`
	Notes       *string          `json:"notes"`
}

// ExpenseResponse defines the data returned for an expense. Mirrors domain.Expense.
type ExpenseResponse struct {
	ExpenseID        string           `json:"expenseID"`
	Date             string           `json:"date"`
	Category         string           `json:"category"`
	Description      string           `json:"description"`
	Amount           decimal.Decimal  `json:"amount"`
	Status           string           `json:"status"`
	IsRecurring      bool             `json:"isRecurring"`
	Frequency        domain.Frequency `json:"frequency,omitempty"`
	NextDueDate      string           `json:"nextDueDate,omitempty"`
	IsPaid           bool             `json:"isPaid"`
	PaymentDate      string           `json:"paymentDate,omitempty"`
	Notes            string           `json:"notes,omitempty"`
	SourceTemplateID string           `json:"sourceTemplateID,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
}

const dateLayout = "2006-01-02"

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ExpenseID:        e.ExpenseID,
		Date:             e.Date.Format(dateLayout),
		Category:         e.Category,
		Description:      e.Description,
		Amount:           e.Amount,
		Status:           string(e.Status),
		IsRecurring:      e.IsRecurring,
		Frequency:        e.Frequency,
		IsPaid:           e.IsPaid,
		Notes:            e.Notes,
		SourceTemplateID: e.SourceTemplateID,
		CreatedAt:        e.CreatedAt,
		LastUpdatedAt:    e.LastUpdatedAt,
	}
	if e.NextDueDate != nil {
		resp.NextDueDate = e.NextDueDate.Format(dateLayout)
	}
	if e.PaymentDate != nil {
		resp.PaymentDate = e.PaymentDate.Format(dateLayout)
	}
	return resp
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs.
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	From      string `form:"from" binding:"required"`
	To        string `form:"to" binding:"required"`
	Limit     int    `form:"limit,default=50"`
	NextToken string `form:"nextToken"`
}

// ListExpensesResponse wraps a page of expenses with its continuation token.
type ListExpensesResponse struct {
	Expenses  []ExpenseResponse `json:"expenses"`
	NextToken string            `json:"nextToken,omitempty"`
}
