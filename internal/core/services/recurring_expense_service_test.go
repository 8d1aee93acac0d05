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
)

// --- Test Suite ---
type RecurringExpenseServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockExpenseRepository
	mockNotifier *MockExpenseNotifier
	service      portssvc.RecurringExpenseSvc
	now          time.Time
}

func (suite *RecurringExpenseServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExpenseRepository)
	suite.mockNotifier = new(MockExpenseNotifier)
	suite.now = time.Date(2025, time.February, 26, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewRecurringExpenseService(
		suite.mockRepo,
		services.WithNotifier(suite.mockNotifier),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func (suite *RecurringExpenseServiceTestSuite) monthlyTemplate(nextDue time.Time) domain.Expense {
	return domain.Expense{
		ExpenseID:   "tmpl-seguros",
		Date:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Category:    "Seguros",
		Description: "Seguro de flota",
		Amount:      decimal.NewFromInt(100),
		Status:      domain.ExpenseApproved,
		IsRecurring: true,
		Frequency:   domain.FrequencyMonthly,
		NextDueDate: &nextDue,
	}
}

// --- Test Cases ---

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_MaterializesDueTemplate() {
	ctx := context.Background()
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	tmpl := suite.monthlyTemplate(due)

	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{tmpl}, nil).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Seguros", "Seguro de flota", tmpl.Amount, monthStart, monthEnd).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Date.Equal(due) &&
			e.Category == "Seguros" &&
			e.Description == "Seguro de flota - March 2025" &&
			e.Amount.Equal(decimal.NewFromInt(100)) &&
			e.Status == domain.ExpenseApproved &&
			!e.IsRecurring &&
			e.SourceTemplateID == "tmpl-seguros" &&
			e.CreatedBy == "user-1"
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateNextDueDate", ctx, "tmpl-seguros", time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "user-1", suite.now).
		Return(nil).Once()
	suite.mockNotifier.On("ExpenseGenerated", ctx, mock.MatchedBy(func(n domain.GenerationNotification) bool {
		return n.TemplateID == "tmpl-seguros" && n.DueDate.Equal(due)
	})).Return(nil).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(result.Generated, 1)
	suite.Require().Len(result.Notifications, 1)
	suite.Equal("Seguro de flota - March 2025", result.Generated[0].Description)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_SecondRunIsIdempotent() {
	ctx := context.Background()
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	tmpl := suite.monthlyTemplate(due)
	alreadyGenerated := &domain.Expense{ExpenseID: "expense-prev", Category: "Seguros"}

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{tmpl}, nil).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Seguros", "Seguro de flota", tmpl.Amount, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(alreadyGenerated, nil).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Empty(result.Generated)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateNextDueDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_SkipsTemplateWithoutNextDueDate() {
	ctx := context.Background()
	tmpl := suite.monthlyTemplate(time.Time{})
	tmpl.NextDueDate = nil

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{tmpl}, nil).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Empty(result.Generated)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_SkipsOnDuplicateCheckError() {
	ctx := context.Background()
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	tmpl := suite.monthlyTemplate(due)

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{tmpl}, nil).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Seguros", "Seguro de flota", tmpl.Amount, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Empty(result.Generated)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_AdvancesFromPriorDueDateNotToday() {
	ctx := context.Background()
	// Template overdue by two weeks; the advance must come out of the old
	// due date, not out of the run date.
	due := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	tmpl := suite.monthlyTemplate(due)
	tmpl.Frequency = domain.FrequencyQuarterly

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{tmpl}, nil).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Seguros", "Seguro de flota", tmpl.Amount, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockRepo.On("UpdateNextDueDate", ctx, "tmpl-seguros", time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC), "user-1", suite.now).
		Return(nil).Once()
	suite.mockNotifier.On("ExpenseGenerated", ctx, mock.AnythingOfType("domain.GenerationNotification")).Return(nil).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Len(result.Generated, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_MonthEndDueDateClampsToShorterMonth() {
	ctx := context.Background()
	// A monthly template due Jan 31 must advance into February, not skip it:
	// unclamped month arithmetic would land on Mar 3 and February would never
	// get an expense.
	due := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	tmpl := suite.monthlyTemplate(due)

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{tmpl}, nil).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Seguros", "Seguro de flota", tmpl.Amount, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Date.Equal(due) && e.Description == "Seguro de flota - January 2025"
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateNextDueDate", ctx, "tmpl-seguros", time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), "user-1", suite.now).
		Return(nil).Once()
	suite.mockNotifier.On("ExpenseGenerated", ctx, mock.AnythingOfType("domain.GenerationNotification")).Return(nil).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Len(result.Generated, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_SaveFailureDoesNotAbortRun() {
	ctx := context.Background()
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	failing := suite.monthlyTemplate(due)
	working := suite.monthlyTemplate(due)
	working.ExpenseID = "tmpl-gestoria"
	working.Category = "Gestoría"
	working.Description = "Asesoría fiscal"
	working.Amount = decimal.NewFromInt(80)

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{failing, working}, nil).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Seguros", "Seguro de flota", failing.Amount, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Gestoría", "Asesoría fiscal", working.Amount, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == "Seguros"
	})).Return(assert.AnError).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == "Gestoría"
	})).Return(nil).Once()
	suite.mockRepo.On("UpdateNextDueDate", ctx, "tmpl-gestoria", mock.AnythingOfType("time.Time"), "user-1", suite.now).
		Return(nil).Once()
	suite.mockNotifier.On("ExpenseGenerated", ctx, mock.AnythingOfType("domain.GenerationNotification")).Return(nil).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(result.Generated, 1)
	suite.Equal("Gestoría", result.Generated[0].Category)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_NotifierFailureIsBestEffort() {
	ctx := context.Background()
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	tmpl := suite.monthlyTemplate(due)

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{tmpl}, nil).Once()
	suite.mockRepo.On("FindGeneratedExpense", ctx, "Seguros", "Seguro de flota", tmpl.Amount, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()
	suite.mockRepo.On("UpdateNextDueDate", ctx, "tmpl-seguros", mock.AnythingOfType("time.Time"), "user-1", suite.now).
		Return(nil).Once()
	suite.mockNotifier.On("ExpenseGenerated", ctx, mock.AnythingOfType("domain.GenerationNotification")).
		Return(assert.AnError).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().NoError(err)
	suite.Len(result.Generated, 1)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestGenerateDueExpenses_SelectionError() {
	ctx := context.Background()

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	result, err := suite.service.GenerateDueExpenses(ctx, "user-1")

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestListPendingTemplates_UsesLookAheadWindow() {
	ctx := context.Background()
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	tmpl := suite.monthlyTemplate(due)

	suite.mockRepo.On("FindDueTemplates", ctx, mock.MatchedBy(func(dueBefore time.Time) bool {
		return dueBefore.Equal(suite.now.Add(7 * 24 * time.Hour))
	})).Return([]domain.Expense{tmpl}, nil).Once()

	templates, err := suite.service.ListPendingTemplates(ctx)

	suite.Require().NoError(err)
	suite.Len(templates, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestListPendingTemplates_ExcludesTemplatesWithoutDueDate() {
	ctx := context.Background()
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	valid := suite.monthlyTemplate(due)
	malformed := suite.monthlyTemplate(due)
	malformed.ExpenseID = "tmpl-sin-fecha"
	malformed.NextDueDate = nil

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense{valid, malformed}, nil).Once()

	templates, err := suite.service.ListPendingTemplates(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(templates, 1)
	suite.Equal("tmpl-seguros", templates[0].ExpenseID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecurringExpenseServiceTestSuite) TestListPendingTemplates_EmptyResult() {
	ctx := context.Background()

	suite.mockRepo.On("FindDueTemplates", ctx, mock.AnythingOfType("time.Time")).
		Return([]domain.Expense(nil), nil).Once()

	templates, err := suite.service.ListPendingTemplates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(templates)
	suite.Empty(templates)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestRecurringExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecurringExpenseServiceTestSuite))
}
