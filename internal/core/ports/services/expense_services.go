package services

import (
	"context"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
)

// ExpenseSvcFacade defines CRUD operations over the expense ledger.
type ExpenseSvcFacade interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error)
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
}
