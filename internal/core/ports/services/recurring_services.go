package services

import (
	"context"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// RecurringExpenseSvc runs the recurring-expense generation batch and its
// companion pending-templates read.
type RecurringExpenseSvc interface {
	// GenerateDueExpenses materializes every due template into a concrete
	// expense (guarding against duplicates) and advances each template's next
	// due date. Per-item failures are logged and skipped; a run that
	// generates nothing is a valid outcome.
	GenerateDueExpenses(ctx context.Context, userID string) (*domain.GenerationResult, error)

	// ListPendingTemplates returns templates due within the look-ahead
	// window, without materializing anything.
	ListPendingTemplates(ctx context.Context) ([]domain.Expense, error)
}
