package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
)

// lookAheadWindow is how far ahead of today a template counts as due.
// A template can be re-selected on consecutive days inside this window;
// idempotence is enforced by the duplicate guard, not by selection.
const lookAheadWindow = 7 * 24 * time.Hour

// recurringExpenseService implements the RecurringExpenseSvc interface.
type recurringExpenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
	notifier    portssvc.ExpenseNotifier
	now         func() time.Time
}

// RecurringExpenseServiceOption is a functional option for configuring the service.
type RecurringExpenseServiceOption func(*recurringExpenseService)

// WithNotifier sets the notifier used for generated-expense events.
func WithNotifier(notifier portssvc.ExpenseNotifier) RecurringExpenseServiceOption {
	return func(s *recurringExpenseService) {
		s.notifier = notifier
	}
}

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) RecurringExpenseServiceOption {
	return func(s *recurringExpenseService) {
		s.now = now
	}
}

// NewRecurringExpenseService creates the recurring-expense generator service.
func NewRecurringExpenseService(repo portsrepo.ExpenseRepository, options ...RecurringExpenseServiceOption) portssvc.RecurringExpenseSvc {
	svc := &recurringExpenseService{
		expenseRepo: repo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecurringExpenseSvc = (*recurringExpenseService)(nil)

// GenerateDueExpenses materializes due templates into concrete expenses.
// Each template is processed independently: a malformed template or a failed
// create is logged and skipped, prior creations in the same run stand.
func (s *recurringExpenseService) GenerateDueExpenses(ctx context.Context, userID string) (*domain.GenerationResult, error) {
	now := s.now()
	dueBefore := now.Add(lookAheadWindow)

	templates, err := s.expenseRepo.FindDueTemplates(ctx, dueBefore)
	if err != nil {
		s.LogError(ctx, err, "Failed to select due templates")
		return nil, fmt.Errorf("failed to select due templates: %w", err)
	}

	s.LogInfo(ctx, "Processing recurring expense templates",
		slog.Int("selected", len(templates)),
		slog.String("due_before", dueBefore.Format("2006-01-02")))

	result := &domain.GenerationResult{
		Generated:     []domain.Expense{},
		Notifications: []domain.GenerationNotification{},
	}

	for _, tmpl := range templates {
		if tmpl.NextDueDate == nil {
			s.LogWarn(ctx, "Skipping template with no next due date",
				slog.String("template_id", tmpl.ExpenseID),
				slog.String("category", tmpl.Category))
			continue
		}
		due := *tmpl.NextDueDate

		// Duplicate guard: an instance for the calendar month of the due date
		// already exists. Matching is by value (category, description prefix,
		// amount), not by template reference, so an edited template will not
		// recognize instances generated before the edit.
		monthStart := time.Date(due.Year(), due.Month(), 1, 0, 0, 0, 0, due.Location())
		monthEnd := monthStart.AddDate(0, 1, 0)
		existing, err := s.expenseRepo.FindGeneratedExpense(ctx, tmpl.Category, tmpl.Description, tmpl.Amount, monthStart, monthEnd)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			// Cannot tell whether the period was generated; skip rather than
			// risk a double entry.
			s.LogError(ctx, err, "Duplicate check failed, skipping template",
				slog.String("template_id", tmpl.ExpenseID))
			continue
		}
		if existing != nil {
			s.LogDebug(ctx, "Expense already generated for this period",
				slog.String("template_id", tmpl.ExpenseID),
				slog.String("existing_id", existing.ExpenseID))
			continue
		}

		expense := s.materialize(tmpl, due, userID, now)
		if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
			s.LogError(ctx, err, "Failed to create expense from template",
				slog.String("template_id", tmpl.ExpenseID),
				slog.String("category", tmpl.Category))
			continue
		}

		// Advance from the prior due date, never from today. Month-end days
		// clamp to the target month's last day instead of overflowing into
		// the following month.
		next := tmpl.Frequency.NextOccurrence(due)
		if err := s.expenseRepo.UpdateNextDueDate(ctx, tmpl.ExpenseID, next, userID, now); err != nil {
			s.LogError(ctx, err, "Failed to advance template next due date",
				slog.String("template_id", tmpl.ExpenseID),
				slog.String("next_due_date", next.Format("2006-01-02")))
			// The expense was created; the duplicate guard covers the re-run.
		}

		notification := domain.GenerationNotification{
			TemplateID:  tmpl.ExpenseID,
			ExpenseID:   expense.ExpenseID,
			Category:    expense.Category,
			Description: expense.Description,
			Amount:      expense.Amount,
			DueDate:     due,
		}
		if s.notifier != nil {
			if err := s.notifier.ExpenseGenerated(ctx, notification); err != nil {
				s.LogWarn(ctx, "Failed to publish generated-expense notification",
					slog.String("expense_id", expense.ExpenseID),
					slog.String("error", err.Error()))
			}
		}

		result.Generated = append(result.Generated, expense)
		result.Notifications = append(result.Notifications, notification)

		s.LogInfo(ctx, "Generated expense from template",
			slog.String("template_id", tmpl.ExpenseID),
			slog.String("expense_id", expense.ExpenseID),
			slog.String("category", expense.Category),
			slog.String("amount", expense.Amount.String()))
	}

	s.LogInfo(ctx, "Recurring expense generation complete",
		slog.Int("generated", len(result.Generated)),
		slog.Int("selected", len(templates)))
	return result, nil
}

// materialize builds the concrete expense row for one template period.
func (s *recurringExpenseService) materialize(tmpl domain.Expense, due time.Time, userID string, now time.Time) domain.Expense {
	return domain.Expense{
		ExpenseID:        uuid.NewString(),
		Date:             due,
		Category:         tmpl.Category,
		Description:      fmt.Sprintf("%s - %s", tmpl.Description, due.Format("January 2006")),
		Amount:           tmpl.Amount,
		Status:           domain.ExpenseApproved,
		IsRecurring:      false,
		Notes:            fmt.Sprintf("Generated automatically from template ID: %s", tmpl.ExpenseID),
		SourceTemplateID: tmpl.ExpenseID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
}

// ListPendingTemplates returns templates due within the look-ahead window,
// same selection predicate as generation minus the materialization. Templates
// without a next due date can never materialize, so they are not reported as
// pending; the generator logs them on its own runs.
func (s *recurringExpenseService) ListPendingTemplates(ctx context.Context) ([]domain.Expense, error) {
	dueBefore := s.now().Add(lookAheadWindow)

	templates, err := s.expenseRepo.FindDueTemplates(ctx, dueBefore)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending templates")
		return nil, fmt.Errorf("failed to list pending templates: %w", err)
	}

	pending := make([]domain.Expense, 0, len(templates))
	for _, tmpl := range templates {
		if tmpl.NextDueDate == nil {
			continue
		}
		pending = append(pending, tmpl)
	}
	return pending, nil
}
