package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// IncomeTotalsResponse holds income sums split by payment channel.
type IncomeTotalsResponse struct {
	Cash    decimal.Decimal `json:"cash"`
	Card    decimal.Decimal `json:"card"`
	Invoice decimal.Decimal `json:"invoice"`
	Total   decimal.Decimal `json:"total"`
}

// QuarterlyReportResponse is the JSON form of the quarterly summary.
type QuarterlyReportResponse struct {
	Year        int                     `json:"year"`
	Quarter     int                     `json:"quarter"`
	From        string                  `json:"from"`
	To          string                  `json:"to"`
	Income      IncomeTotalsResponse    `json:"income"`
	Expenses    UnifiedExpensesResponse `json:"expenses"`
	GrossMargin decimal.Decimal         `json:"grossMargin"`
}

// ToQuarterlyReportResponse converts a domain quarterly report to its DTO.
func ToQuarterlyReportResponse(report *domain.QuarterlyReport) QuarterlyReportResponse {
	return QuarterlyReportResponse{
		Year:    report.Year,
		Quarter: report.Quarter,
		From:    report.From.Format(dateLayout),
		To:      report.To.Format(dateLayout),
		Income: IncomeTotalsResponse{
			Cash:    report.Income.Cash,
			Card:    report.Income.Card,
			Invoice: report.Income.Invoice,
			Total:   report.Income.Total(),
		},
		Expenses:    ToUnifiedExpensesResponse(&report.Expenses),
		GrossMargin: report.GrossMargin,
	}
}
