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

// fuelExpenseService implements the FuelExpenseSvcFacade interface.
type fuelExpenseService struct {
	BaseService
	fuelRepo portsrepo.FuelExpenseRepository
}

// NewFuelExpenseService creates the fuel ledger service.
func NewFuelExpenseService(repo portsrepo.FuelExpenseRepository) portssvc.FuelExpenseSvcFacade {
	return &fuelExpenseService{fuelRepo: repo}
}

var _ portssvc.FuelExpenseSvcFacade = (*fuelExpenseService)(nil)

func (s *fuelExpenseService) CreateFuelExpense(ctx context.Context, req dto.CreateFuelExpenseRequest, userID string) (*domain.FuelExpense, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if req.Liters.IsNegative() {
		return nil, fmt.Errorf("%w: liters must not be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	fuel := domain.FuelExpense{
		FuelExpenseID: uuid.NewString(),
		Date:          req.Date,
		Liters:        req.Liters,
		Amount:        req.Amount,
		Station:       req.Station,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.fuelRepo.SaveFuelExpense(ctx, fuel); err != nil {
		s.LogError(ctx, err, "Failed to save fuel expense", slog.String("fuel_expense_id", fuel.FuelExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Fuel expense created", slog.String("fuel_expense_id", fuel.FuelExpenseID))
	return &fuel, nil
}

func (s *fuelExpenseService) GetFuelExpenseByID(ctx context.Context, fuelExpenseID string) (*domain.FuelExpense, error) {
	fuel, err := s.fuelRepo.FindFuelExpenseByID(ctx, fuelExpenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fuel expense", slog.String("fuel_expense_id", fuelExpenseID))
		}
		return nil, err
	}
	return fuel, nil
}

func (s *fuelExpenseService) ListFuelExpenses(ctx context.Context, from, to time.Time) ([]domain.FuelExpense, error) {
	if from.After(to) {
		return nil, fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	fuels, err := s.fuelRepo.ListFuelExpenses(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fuel expenses")
		return nil, fmt.Errorf("failed to list fuel expenses: %w", err)
	}
	return fuels, nil
}

func (s *fuelExpenseService) DeleteFuelExpense(ctx context.Context, fuelExpenseID string) error {
	if err := s.fuelRepo.DeleteFuelExpense(ctx, fuelExpenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete fuel expense", slog.String("fuel_expense_id", fuelExpenseID))
		}
		return err
	}
	s.LogInfo(ctx, "Fuel expense deleted", slog.String("fuel_expense_id", fuelExpenseID))
	return nil
}
