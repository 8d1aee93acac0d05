package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, from, to time.Time, limit int, nextToken string) ([]domain.Expense, string, error) {
	args := m.Called(ctx, from, to, limit, nextToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Expense), args.String(1), args.Error(2)
}

func (m *MockExpenseRepository) FindDueTemplates(ctx context.Context, dueBefore time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, dueBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindGeneratedExpense(ctx context.Context, category, descriptionPrefix string, amount decimal.Decimal, monthStart, monthEnd time.Time) (*domain.Expense, error) {
	args := m.Called(ctx, category, descriptionPrefix, amount, monthStart, monthEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) UpdateNextDueDate(ctx context.Context, expenseID string, next time.Time, userID string, now time.Time) error {
	args := m.Called(ctx, expenseID, next, userID, now)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindFixedExpenses(ctx context.Context, from, to time.Time, categories []string) ([]domain.Expense, error) {
	args := m.Called(ctx, from, to, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) SumVariableExpenses(ctx context.Context, from, to time.Time, excludedCategories []string) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to, excludedCategories)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portsrepo.ExpenseRepository = (*MockExpenseRepository)(nil)

// --- Mock DailyRecordRepository ---
type MockDailyRecordRepository struct {
	mock.Mock
}

func (m *MockDailyRecordRepository) SaveDailyRecord(ctx context.Context, record domain.DailyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDailyRecordRepository) FindDailyRecordByID(ctx context.Context, recordID string) (*domain.DailyRecord, error) {
	args := m.Called(ctx, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyRecord), args.Error(1)
}

func (m *MockDailyRecordRepository) UpdateDailyRecord(ctx context.Context, record domain.DailyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockDailyRecordRepository) DeleteDailyRecord(ctx context.Context, recordID string) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func (m *MockDailyRecordRepository) ListDailyRecords(ctx context.Context, from, to time.Time) ([]domain.DailyRecord, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRecord), args.Error(1)
}

func (m *MockDailyRecordRepository) SumOperationalExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDailyRecordRepository) SumIncome(ctx context.Context, from, to time.Time) (*domain.IncomeTotals, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeTotals), args.Error(1)
}

var _ portsrepo.DailyRecordRepository = (*MockDailyRecordRepository)(nil)

// --- Mock FuelExpenseRepository ---
type MockFuelExpenseRepository struct {
	mock.Mock
}

func (m *MockFuelExpenseRepository) SaveFuelExpense(ctx context.Context, fuel domain.FuelExpense) error {
	args := m.Called(ctx, fuel)
	return args.Error(0)
}

func (m *MockFuelExpenseRepository) FindFuelExpenseByID(ctx context.Context, fuelExpenseID string) (*domain.FuelExpense, error) {
	args := m.Called(ctx, fuelExpenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FuelExpense), args.Error(1)
}

func (m *MockFuelExpenseRepository) DeleteFuelExpense(ctx context.Context, fuelExpenseID string) error {
	args := m.Called(ctx, fuelExpenseID)
	return args.Error(0)
}

func (m *MockFuelExpenseRepository) ListFuelExpenses(ctx context.Context, from, to time.Time) ([]domain.FuelExpense, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FuelExpense), args.Error(1)
}

func (m *MockFuelExpenseRepository) SumFuelExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portsrepo.FuelExpenseRepository = (*MockFuelExpenseRepository)(nil)

// --- Mock ExpenseNotifier ---
type MockExpenseNotifier struct {
	mock.Mock
}

func (m *MockExpenseNotifier) ExpenseGenerated(ctx context.Context, notification domain.GenerationNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

var _ portssvc.ExpenseNotifier = (*MockExpenseNotifier)(nil)
