package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/dto"
)

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExpenseRepository
	service  portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.service = services.NewExpenseService(suite.mockRepo)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// --- Test Cases ---

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC),
		Category:    "Reparaciones",
		Description: "Cambio de pastillas de freno",
		Amount:      decimal.NewFromInt(180),
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == req.Category &&
			e.Status == domain.ExpensePending &&
			e.CreatedBy == "user-raul" &&
			e.ExpenseID != ""
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req, "user-raul")

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.Equal("Reparaciones", expense.Category)
	suite.False(expense.IsRecurring)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NegativeAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        time.Now(),
		Category:    "Reparaciones",
		Description: "whoops",
		Amount:      decimal.NewFromInt(-5),
	}

	expense, err := suite.service.CreateExpense(ctx, req, "user-raul")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RecurringRequiresFrequency() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        time.Now(),
		Category:    "Seguros",
		Description: "Seguro de flota",
		Amount:      decimal.NewFromInt(100),
		IsRecurring: true,
		NextDueDate: timePtr(time.Now().AddDate(0, 1, 0)),
	}

	expense, err := suite.service.CreateExpense(ctx, req, "user-raul")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RecurringRequiresNextDueDate() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Date:        time.Now(),
		Category:    "Seguros",
		Description: "Seguro de flota",
		Amount:      decimal.NewFromInt(100),
		IsRecurring: true,
		Frequency:   domain.FrequencyMonthly,
	}

	expense, err := suite.service.CreateExpense(ctx, req, "user-raul")

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RecurringTemplate() {
	ctx := context.Background()
	nextDue := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	req := dto.CreateExpenseRequest{
		Date:        time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Category:    "Seguros",
		Description: "Seguro de flota",
		Amount:      decimal.NewFromInt(100),
		IsRecurring: true,
		Frequency:   domain.FrequencyMonthly,
		NextDueDate: &nextDue,
	}

	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.IsRecurring &&
			e.Frequency == domain.FrequencyMonthly &&
			e.NextDueDate != nil && e.NextDueDate.Equal(nextDue)
	})).Return(nil).Once()

	expense, err := suite.service.CreateExpense(ctx, req, "user-raul")

	suite.Require().NoError(err)
	suite.True(expense.IsRecurring)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_InvalidRange() {
	ctx := context.Background()

	_, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{
		From: "2025-03-31",
		To:   "2025-01-01",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListExpenses",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_DefaultsLimit() {
	ctx := context.Background()
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("ListExpenses", ctx, from, to, 50, "").
		Return([]domain.Expense{}, "", nil).Once()

	resp, err := suite.service.ListExpenses(ctx, dto.ListExpensesParams{
		From:  "2025-01-01",
		To:    "2025-03-31",
		Limit: 0,
	})

	suite.Require().NoError(err)
	suite.Empty(resp.Expenses)
	suite.Empty(resp.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RejectsInvalidFrequency() {
	ctx := context.Background()
	existing := &domain.Expense{
		ExpenseID:   "exp-1",
		Category:    "Seguros",
		Amount:      decimal.NewFromInt(100),
		IsRecurring: true,
		Frequency:   domain.FrequencyMonthly,
	}
	badFreq := "weekly"

	suite.mockRepo.On("FindExpenseByID", ctx, "exp-1").Return(existing, nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, "exp-1", dto.UpdateExpenseRequest{
		Frequency: &badFreq,
	}, "user-raul")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_AppliesProvidedFields() {
	ctx := context.Background()
	existing := &domain.Expense{
		ExpenseID:   "exp-1",
		Category:    "Seguros",
		Description: "Seguro de flota",
		Amount:      decimal.NewFromInt(100),
	}
	newAmount := decimal.NewFromInt(120)
	isPaid := true

	suite.mockRepo.On("FindExpenseByID", ctx, "exp-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Amount.Equal(newAmount) &&
			e.IsPaid &&
			e.Description == "Seguro de flota" &&
			e.LastUpdatedBy == "user-raul"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateExpense(ctx, "exp-1", dto.UpdateExpenseRequest{
		Amount: &newAmount,
		IsPaid: &isPaid,
	}, "user-raul")

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindExpenseByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateExpense(ctx, "missing", dto.UpdateExpenseRequest{}, "user-raul")

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_PassesThroughNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteExpense", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteExpense(ctx, "missing")

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
