package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// FuelExpenseRepository defines persistence operations for the dedicated
// fuel-purchase ledger. This source is optional: callers must tolerate its
// failure (missing table, older deployments) and degrade to zero.
type FuelExpenseRepository interface {
	SaveFuelExpense(ctx context.Context, fuel domain.FuelExpense) error

	// FindFuelExpenseByID returns apperrors.ErrNotFound when no row matches.
	FindFuelExpenseByID(ctx context.Context, fuelExpenseID string) (*domain.FuelExpense, error)

	DeleteFuelExpense(ctx context.Context, fuelExpenseID string) error

	// ListFuelExpenses returns ledger entries dated within [from, to], newest first.
	ListFuelExpenses(ctx context.Context, from, to time.Time) ([]domain.FuelExpense, error)

	// SumFuelExpenses sums ledger amounts within [from, to].
	SumFuelExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
