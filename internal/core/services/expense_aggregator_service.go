package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
)

// expenseAggregatorService implements the ExpenseAggregatorSvc interface.
type expenseAggregatorService struct {
	BaseService
	expenseRepo     portsrepo.ExpenseRepository
	dailyRecordRepo portsrepo.DailyRecordRepository
	fuelExpenseRepo portsrepo.FuelExpenseRepository
}

// NewExpenseAggregatorService creates the unified expense aggregator.
func NewExpenseAggregatorService(
	expenseRepo portsrepo.ExpenseRepository,
	dailyRecordRepo portsrepo.DailyRecordRepository,
	fuelExpenseRepo portsrepo.FuelExpenseRepository,
) portssvc.ExpenseAggregatorSvc {
	return &expenseAggregatorService{
		expenseRepo:     expenseRepo,
		dailyRecordRepo: dailyRecordRepo,
		fuelExpenseRepo: fuelExpenseRepo,
	}
}

var _ portssvc.ExpenseAggregatorSvc = (*expenseAggregatorService)(nil)

// UnifiedExpenses merges fixed, operational and variable expense sources over
// [from, to] into one breakdown. The fuel ledger and the daily-record sums
// are optional sources: their failure contributes zero with a logged warning.
// Failures on the expense table itself are surfaced to the caller.
func (s *expenseAggregatorService) UnifiedExpenses(ctx context.Context, from, to time.Time) (*domain.UnifiedExpenseReport, error) {
	// Bucket 1: fixed expenses, classified per subcategory.
	fixedRows, err := s.expenseRepo.FindFixedExpenses(ctx, from, to, domain.FixedCategories)
	if err != nil {
		s.LogError(ctx, err, "Failed to query fixed expenses")
		return nil, fmt.Errorf("failed to query fixed expenses: %w", err)
	}

	var fixed domain.FixedExpenseBreakdown
	for _, e := range fixedRows {
		fixed.Add(e.Category, e.Amount)
	}

	// Bucket 2: operational spend. The dedicated fuel ledger and the
	// daily-record embedded fields are additive sources; they represent
	// genuinely different data and are assumed never to overlap.
	operational := decimal.Zero

	fuelSum, err := s.fuelExpenseRepo.SumFuelExpenses(ctx, from, to)
	if err != nil {
		s.LogWarn(ctx, "Fuel ledger unavailable, contributing zero",
			slog.String("error", err.Error()))
	} else {
		operational = operational.Add(fuelSum)
	}

	dailySum, err := s.dailyRecordRepo.SumOperationalExpenses(ctx, from, to)
	if err != nil {
		s.LogWarn(ctx, "Daily-record expense sum unavailable, contributing zero",
			slog.String("error", err.Error()))
	} else {
		operational = operational.Add(dailySum)
	}

	// Bucket 3: variable expenses. Fuel is excluded here because it is
	// already counted in the operational bucket.
	excluded := make([]string, 0, len(domain.FixedCategories)+1)
	excluded = append(excluded, domain.FixedCategories...)
	excluded = append(excluded, domain.CategoryFuel)

	variable, err := s.expenseRepo.SumVariableExpenses(ctx, from, to, excluded)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum variable expenses")
		return nil, fmt.Errorf("failed to sum variable expenses: %w", err)
	}

	totalFixed := fixed.Total()
	report := &domain.UnifiedExpenseReport{
		From:             from,
		To:               to,
		Fixed:            fixed,
		DailyOperational: operational,
		Variable:         variable,
		Total:            totalFixed.Add(operational).Add(variable),
		// NetProfit stays zero: the caller combines the total with
		// independently fetched income and commission figures.
		NetProfit: decimal.Zero,
	}

	s.LogInfo(ctx, "Unified expense aggregation complete",
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
		slog.String("total_fixed", totalFixed.String()),
		slog.String("operational", operational.String()),
		slog.String("variable", variable.String()),
		slog.String("total", report.Total.String()))
	return report, nil
}
