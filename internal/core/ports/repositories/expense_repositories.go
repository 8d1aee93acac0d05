package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expense rows, covering
// both one-off entries and recurring templates.
type ExpenseRepository interface {
	// SaveExpense inserts a new expense row.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenseByID retrieves an expense by its ID.
	// Returns apperrors.ErrNotFound when no row matches.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// UpdateExpense rewrites the mutable fields of an expense row.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense row.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpenses returns expenses dated within [from, to], newest first,
	// using keyset pagination. nextToken is empty for the first page; the
	// returned token is empty when no further page exists.
	ListExpenses(ctx context.Context, from, to time.Time, limit int, nextToken string) ([]domain.Expense, string, error)

	// FindDueTemplates returns recurring templates with a next due date at or
	// before dueBefore. Templates with a NULL next_due_date are included so
	// the caller can log and skip them.
	FindDueTemplates(ctx context.Context, dueBefore time.Time) ([]domain.Expense, error)

	// FindGeneratedExpense looks up a non-recurring expense matching the
	// template's category and amount, with a description starting with
	// descriptionPrefix and a date within [monthStart, monthEnd).
	// Returns apperrors.ErrNotFound when no such row exists.
	FindGeneratedExpense(ctx context.Context, category, descriptionPrefix string, amount decimal.Decimal, monthStart, monthEnd time.Time) (*domain.Expense, error)

	// UpdateNextDueDate persists the advanced next due date onto a template.
	UpdateNextDueDate(ctx context.Context, expenseID string, next time.Time, userID string, now time.Time) error

	// FindFixedExpenses returns expenses in [from, to] that are recurring or
	// whose category is in the given allow-list.
	FindFixedExpenses(ctx context.Context, from, to time.Time, categories []string) ([]domain.Expense, error)

	// SumVariableExpenses sums non-recurring expenses in [from, to] whose
	// category is not in excludedCategories.
	SumVariableExpenses(ctx context.Context, from, to time.Time, excludedCategories []string) (decimal.Decimal, error)
}
