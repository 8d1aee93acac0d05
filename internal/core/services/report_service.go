package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
)

// reportService implements the ReportSvc interface. It layers quarterly
// income totals on top of the unified expense aggregation.
type reportService struct {
	BaseService
	recordRepo portsrepo.DailyRecordRepository
	aggregator portssvc.ExpenseAggregatorSvc
}

// NewReportService creates the quarterly reporting service.
func NewReportService(recordRepo portsrepo.DailyRecordRepository, aggregator portssvc.ExpenseAggregatorSvc) portssvc.ReportSvc {
	return &reportService{recordRepo: recordRepo, aggregator: aggregator}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) QuarterlySummary(ctx context.Context, year, quarter int) (*domain.QuarterlyReport, error) {
	if quarter < 1 || quarter > 4 {
		return nil, fmt.Errorf("%w: quarter must be between 1 and 4", apperrors.ErrValidation)
	}
	if year < 2000 || year > 2100 {
		return nil, fmt.Errorf("%w: year out of range", apperrors.ErrValidation)
	}

	from, to := domain.QuarterBounds(year, quarter)

	income, err := s.recordRepo.SumIncome(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum quarterly income", slog.Int("year", year), slog.Int("quarter", quarter))
		return nil, fmt.Errorf("failed to sum quarterly income: %w", err)
	}

	expenses, err := s.aggregator.UnifiedExpenses(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate quarterly expenses", slog.Int("year", year), slog.Int("quarter", quarter))
		return nil, fmt.Errorf("failed to aggregate quarterly expenses: %w", err)
	}

	report := &domain.QuarterlyReport{
		Year:        year,
		Quarter:     quarter,
		From:        from,
		To:          to,
		Income:      *income,
		Expenses:    *expenses,
		GrossMargin: income.Total().Sub(expenses.Total),
	}

	s.LogInfo(ctx, "Quarterly summary built",
		slog.Int("year", year),
		slog.Int("quarter", quarter),
		slog.String("income_total", income.Total().String()),
		slog.String("expense_total", expenses.Total.String()))
	return report, nil
}

func (s *reportService) ExportQuarterlyXLSX(ctx context.Context, year, quarter int) ([]byte, error) {
	report, err := s.QuarterlySummary(ctx, year, quarter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, "Resumen Trimestral"); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	sheet = "Resumen Trimestral"

	setCell := func(cell string, value interface{}) {
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			s.LogWarn(ctx, "Failed to set cell value", slog.String("cell", cell), slog.String("error", err.Error()))
		}
	}

	setCell("A1", fmt.Sprintf("Resumen Trimestral %dT %d", report.Quarter, report.Year))
	setCell("A2", fmt.Sprintf("Periodo: %s a %s", report.From.Format("02/01/2006"), report.To.Format("02/01/2006")))

	setCell("A4", "Ingresos")
	setCell("A5", "Efectivo")
	setCell("B5", report.Income.Cash.InexactFloat64())
	setCell("A6", "Tarjeta")
	setCell("B6", report.Income.Card.InexactFloat64())
	setCell("A7", "Facturación")
	setCell("B7", report.Income.Invoice.InexactFloat64())
	setCell("A8", "Total ingresos")
	setCell("B8", report.Income.Total().InexactFloat64())

	setCell("A10", "Gastos fijos")
	setCell("A11", "Seguridad Social")
	setCell("B11", report.Expenses.Fixed.SeguridadSocial.InexactFloat64())
	setCell("A12", "Cuota Autónomo")
	setCell("B12", report.Expenses.Fixed.CuotaAutonomo.InexactFloat64())
	setCell("A13", "Cuota Agrupación")
	setCell("B13", report.Expenses.Fixed.CuotaAgrupacion.InexactFloat64())
	setCell("A14", "Gestoría")
	setCell("B14", report.Expenses.Fixed.Gestoria.InexactFloat64())
	setCell("A15", "Seguros")
	setCell("B15", report.Expenses.Fixed.Seguros.InexactFloat64())
	setCell("A16", "Suministros")
	setCell("B16", report.Expenses.Fixed.Suministros.InexactFloat64())
	setCell("A17", "Otros fijos")
	setCell("B17", report.Expenses.Fixed.Otros.InexactFloat64())
	setCell("A18", "Total fijos")
	setCell("B18", report.Expenses.Fixed.Total().InexactFloat64())

	setCell("A20", "Gastos operativos diarios")
	setCell("B20", report.Expenses.DailyOperational.InexactFloat64())
	setCell("A21", "Gastos variables")
	setCell("B21", report.Expenses.Variable.InexactFloat64())
	setCell("A22", "Total gastos")
	setCell("B22", report.Expenses.Total.InexactFloat64())

	setCell("A24", "Margen bruto")
	setCell("B24", report.GrossMargin.InexactFloat64())

	if err := f.SetColWidth(sheet, "A", "A", 28); err != nil {
		s.LogWarn(ctx, "Failed to set column width", slog.String("error", err.Error()))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize workbook")
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
