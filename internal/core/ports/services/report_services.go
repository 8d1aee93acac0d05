package services

import (
	"context"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// ReportSvc builds quarterly accounting summaries for the gestoría.
type ReportSvc interface {
	// QuarterlySummary combines income totals and the unified expense
	// breakdown for one calendar quarter.
	QuarterlySummary(ctx context.Context, year, quarter int) (*domain.QuarterlyReport, error)

	// ExportQuarterlyXLSX renders the quarterly summary as an Excel workbook.
	ExportQuarterlyXLSX(ctx context.Context, year, quarter int) ([]byte, error)
}
