package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/services"
)

// --- Mock ExpenseAggregatorSvc ---
type MockAggregatorSvc struct {
	mock.Mock
}

func (m *MockAggregatorSvc) UnifiedExpenses(ctx context.Context, from, to time.Time) (*domain.UnifiedExpenseReport, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnifiedExpenseReport), args.Error(1)
}

var _ portssvc.ExpenseAggregatorSvc = (*MockAggregatorSvc)(nil)

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockRecordRepo *MockDailyRecordRepository
	mockAggregator *MockAggregatorSvc
	service        portssvc.ReportSvc
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRecordRepo = new(MockDailyRecordRepository)
	suite.mockAggregator = new(MockAggregatorSvc)
	suite.service = services.NewReportService(suite.mockRecordRepo, suite.mockAggregator)
}

func (suite *ReportServiceTestSuite) quarterOneFixtures() (time.Time, time.Time) {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	income := &domain.IncomeTotals{
		Cash:    decimal.NewFromInt(6000),
		Card:    decimal.NewFromInt(3000),
		Invoice: decimal.NewFromInt(1000),
	}
	expenses := &domain.UnifiedExpenseReport{
		From:             from,
		To:               to,
		Fixed:            domain.FixedExpenseBreakdown{Seguros: decimal.NewFromInt(300)},
		DailyOperational: decimal.NewFromInt(1500),
		Variable:         decimal.NewFromInt(200),
		Total:            decimal.NewFromInt(2000),
	}

	suite.mockRecordRepo.On("SumIncome", mock.Anything, from, to).Return(income, nil).Once()
	suite.mockAggregator.On("UnifiedExpenses", mock.Anything, from, to).Return(expenses, nil).Once()
	return from, to
}

// --- Test Cases ---

func (suite *ReportServiceTestSuite) TestQuarterlySummary_Success() {
	from, to := suite.quarterOneFixtures()

	report, err := suite.service.QuarterlySummary(context.Background(), 2025, 1)

	suite.Require().NoError(err)
	suite.Equal(2025, report.Year)
	suite.Equal(1, report.Quarter)
	suite.True(report.From.Equal(from))
	suite.True(report.To.Equal(to))
	suite.True(report.Income.Total().Equal(decimal.NewFromInt(10000)))
	suite.True(report.GrossMargin.Equal(decimal.NewFromInt(8000)))
	suite.mockRecordRepo.AssertExpectations(suite.T())
	suite.mockAggregator.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestQuarterlySummary_RejectsBadQuarter() {
	report, err := suite.service.QuarterlySummary(context.Background(), 2025, 5)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecordRepo.AssertNotCalled(suite.T(), "SumIncome", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestQuarterlySummary_RejectsBadYear() {
	report, err := suite.service.QuarterlySummary(context.Background(), 1999, 1)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportServiceTestSuite) TestQuarterlySummary_IncomeError() {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)

	suite.mockRecordRepo.On("SumIncome", mock.Anything, from, to).Return(nil, assert.AnError).Once()

	report, err := suite.service.QuarterlySummary(context.Background(), 2025, 1)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.mockAggregator.AssertNotCalled(suite.T(), "UnifiedExpenses", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestExportQuarterlyXLSX_ProducesWorkbook() {
	suite.quarterOneFixtures()

	data, err := suite.service.ExportQuarterlyXLSX(context.Background(), 2025, 1)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	suite.Require().NoError(err, "Export should be a readable workbook")
	defer f.Close()

	suite.Equal("Resumen Trimestral", f.GetSheetName(0))

	title, err := f.GetCellValue("Resumen Trimestral", "A1")
	suite.Require().NoError(err)
	suite.Equal("Resumen Trimestral 1T 2025", title)

	totalIncome, err := f.GetCellValue("Resumen Trimestral", "B8")
	suite.Require().NoError(err)
	suite.Equal("10000", totalIncome)
}

func (suite *ReportServiceTestSuite) TestExportQuarterlyXLSX_PropagatesSummaryError() {
	data, err := suite.service.ExportQuarterlyXLSX(context.Background(), 2025, 0)

	suite.Require().Error(err)
	suite.Nil(data)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
