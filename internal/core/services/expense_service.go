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
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
)

// expenseService implements the ExpenseSvcFacade interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates the expense CRUD service.
func NewExpenseService(repo portsrepo.ExpenseRepository) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if req.IsRecurring {
		if !req.Frequency.IsValid() {
			return nil, fmt.Errorf("%w: recurring expense requires a valid frequency", apperrors.ErrValidation)
		}
		if req.NextDueDate == nil {
			return nil, fmt.Errorf("%w: recurring expense requires a next due date", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:   uuid.NewString(),
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      domain.ExpensePending,
		IsRecurring: req.IsRecurring,
		Frequency:   req.Frequency,
		NextDueDate: req.NextDueDate,
		IsPaid:      req.IsPaid,
		PaymentDate: req.PaymentDate,
		Notes:       req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID), slog.Bool("is_recurring", expense.IsRecurring))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) (*dto.ListExpensesResponse, error) {
	from, err := time.Parse("2006-01-02", params.From)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid from date", apperrors.ErrValidation)
	}
	to, err := time.Parse("2006-01-02", params.To)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid to date", apperrors.ErrValidation)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}

	limit := params.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	expenses, nextToken, err := s.expenseRepo.ListExpenses(ctx, from, to, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &dto.ListExpensesResponse{
		Expenses:  dto.ToListExpenseResponse(expenses),
		NextToken: nextToken,
	}, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, userID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Frequency != nil {
		freq := domain.Frequency(*req.Frequency)
		if !freq.IsValid() {
			return nil, fmt.Errorf("%w: invalid frequency", apperrors.ErrValidation)
		}
		expense.Frequency = freq
	}
	if req.NextDueDate != nil {
		expense.NextDueDate = req.NextDueDate
	}
	if req.IsPaid != nil {
		expense.IsPaid = *req.IsPaid
	}
	if req.PaymentDate != nil {
		expense.PaymentDate = req.PaymentDate
	}
	if req.Notes != nil {
		expense.Notes = *req.Notes
	}
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}
	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
