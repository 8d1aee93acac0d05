package services

import (
	"context"
	"time"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
)

// FuelExpenseSvcFacade defines operations over the fuel-purchase ledger.
type FuelExpenseSvcFacade interface {
	CreateFuelExpense(ctx context.Context, req dto.CreateFuelExpenseRequest, userID string) (*domain.FuelExpense, error)
	GetFuelExpenseByID(ctx context.Context, fuelExpenseID string) (*domain.FuelExpense, error)
	ListFuelExpenses(ctx context.Context, from, to time.Time) ([]domain.FuelExpense, error)
	DeleteFuelExpense(ctx context.Context, fuelExpenseID string) error
}
