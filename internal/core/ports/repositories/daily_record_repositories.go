package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// DailyRecordRepository defines persistence operations for driver shift records.
type DailyRecordRepository interface {
	SaveDailyRecord(ctx context.Context, record domain.DailyRecord) error

	// FindDailyRecordByID returns apperrors.ErrNotFound when no row matches.
	FindDailyRecordByID(ctx context.Context, recordID string) (*domain.DailyRecord, error)

	UpdateDailyRecord(ctx context.Context, record domain.DailyRecord) error

	DeleteDailyRecord(ctx context.Context, recordID string) error

	// ListDailyRecords returns records dated within [from, to], newest first.
	ListDailyRecords(ctx context.Context, from, to time.Time) ([]domain.DailyRecord, error)

	// SumOperationalExpenses sums fuel_expense + other_expenses across all
	// records in [from, to].
	SumOperationalExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumIncome totals the three income channels across [from, to].
	SumIncome(ctx context.Context, from, to time.Time) (*domain.IncomeTotals, error)
}
