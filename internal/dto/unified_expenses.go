package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// FixedBreakdownResponse holds the per-subcategory sums of the fixed bucket.
type FixedBreakdownResponse struct {
	SeguridadSocial decimal.Decimal `json:"seguridadSocial"`
	CuotaAutonomo   decimal.Decimal `json:"cuotaAutonomo"`
	CuotaAgrupacion decimal.Decimal `json:"cuotaAgrupacion"`
	Gestoria        decimal.Decimal `json:"gestoria"`
	Seguros         decimal.Decimal `json:"seguros"`
	Suministros     decimal.Decimal `json:"suministros"`
	Otros           decimal.Decimal `json:"otros"`
	Total           decimal.Decimal `json:"total"`
}

// UnifiedExpensesResponse is the aggregation result for a date range.
// NetProfit is always zero here: the UI combines TotalExpenses with
// independently fetched income and commission figures.
type UnifiedExpensesResponse struct {
	From                     string                 `json:"from"`
	To                       string                 `json:"to"`
	MonthlyFixedExpenses     FixedBreakdownResponse `json:"monthlyFixedExpenses"`
	DailyOperationalExpenses decimal.Decimal        `json:"dailyOperationalExpenses"`
	VariableExpenses         decimal.Decimal        `json:"variableExpenses"`
	TotalExpenses            decimal.Decimal        `json:"totalExpenses"`
	NetProfit                decimal.Decimal        `json:"netProfit"`
}

// ToUnifiedExpensesResponse converts a domain report to its DTO.
func ToUnifiedExpensesResponse(report *domain.UnifiedExpenseReport) UnifiedExpensesResponse {
	return UnifiedExpensesResponse{
		From: report.From.Format(dateLayout),
		To:   report.To.Format(dateLayout),
		MonthlyFixedExpenses: FixedBreakdownResponse{
			SeguridadSocial: report.Fixed.SeguridadSocial,
			CuotaAutonomo:   report.Fixed.CuotaAutonomo,
			CuotaAgrupacion: report.Fixed.CuotaAgrupacion,
			Gestoria:        report.Fixed.Gestoria,
			Seguros:         report.Fixed.Seguros,
			Suministros:     report.Fixed.Suministros,
			Otros:           report.Fixed.Otros,
			Total:           report.Fixed.Total(),
		},
		DailyOperationalExpenses: report.DailyOperational,
		VariableExpenses:         report.Variable,
		TotalExpenses:            report.Total,
		NetProfit:                report.NetProfit,
	}
}
