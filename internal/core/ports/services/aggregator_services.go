package services

import (
	"context"
	"time"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// ExpenseAggregatorSvc merges the three disjoint expense sources (fixed
// ledger rows, daily-record embedded fields, fuel ledger) into category
// buckets over a date range. Read-only; produces no persisted state.
type ExpenseAggregatorSvc interface {
	UnifiedExpenses(ctx context.Context, from, to time.Time) (*domain.UnifiedExpenseReport, error)
}
