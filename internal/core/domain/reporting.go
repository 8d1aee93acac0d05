package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FixedCategories is the allow-list of structurally "fixed" expense
// categories. An expense whose category matches one of these (case
// insensitive) lands in the fixed bucket even when it is not recurring.
var FixedCategories = []string{
	"Seguridad Social",
	"Cuota Autónomo",
	"Cuota Agrupación",
	"Gestoría",
	"Seguros",
	"Suministros",
}

// CategoryFuel is counted in the operational bucket and must therefore be
// excluded from the variable bucket to avoid double counting.
const CategoryFuel = "Combustible"

// FixedExpenseBreakdown holds the per-subcategory sums of the fixed bucket.
// Every category string lands in exactly one field; Otros is the catch-all.
type FixedExpenseBreakdown struct {
	SeguridadSocial decimal.Decimal `json:"seguridadSocial"`
	CuotaAutonomo   decimal.Decimal `json:"cuotaAutonomo"`
	CuotaAgrupacion decimal.Decimal `json:"cuotaAgrupacion"`
	Gestoria        decimal.Decimal `json:"gestoria"`
	Seguros         decimal.Decimal `json:"seguros"`
	Suministros     decimal.Decimal `json:"suministros"`
	Otros           decimal.Decimal `json:"otros"`
}

// Add classifies category (case insensitive, accent-tolerant) into its
// subcategory bucket and adds amount to it.
func (b *FixedExpenseBreakdown) Add(category string, amount decimal.Decimal) {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "seguridad social":
		b.SeguridadSocial = b.SeguridadSocial.Add(amount)
	case "cuota autónomo", "cuota autonomo":
		b.CuotaAutonomo = b.CuotaAutonomo.Add(amount)
	case "cuota agrupación", "cuota agrupacion":
		b.CuotaAgrupacion = b.CuotaAgrupacion.Add(amount)
	case "gestoría", "gestoria":
		b.Gestoria = b.Gestoria.Add(amount)
	case "seguros":
		b.Seguros = b.Seguros.Add(amount)
	case "suministros":
		b.Suministros = b.Suministros.Add(amount)
	default:
		b.Otros = b.Otros.Add(amount)
	}
}

// Total sums all subcategory buckets including Otros.
func (b FixedExpenseBreakdown) Total() decimal.Decimal {
	return b.SeguridadSocial.
		Add(b.CuotaAutonomo).
		Add(b.CuotaAgrupacion).
		Add(b.Gestoria).
		Add(b.Seguros).
		Add(b.Suministros).
		Add(b.Otros)
}

// UnifiedExpenseReport merges the three disjoint expense sources over a date
// range. NetProfit is deliberately zero: the caller combines TotalExpenses
// with independently fetched income figures.
type UnifiedExpenseReport struct {
	From             time.Time
	To               time.Time
	Fixed            FixedExpenseBreakdown
	DailyOperational decimal.Decimal
	Variable         decimal.Decimal
	Total            decimal.Decimal
	NetProfit        decimal.Decimal
}

// QuarterlyReport combines income totals with the unified expense breakdown
// for one calendar quarter.
type QuarterlyReport struct {
	Year        int
	Quarter     int
	From        time.Time
	To          time.Time
	Income      IncomeTotals
	Expenses    UnifiedExpenseReport
	GrossMargin decimal.Decimal
}

// QuarterBounds returns the inclusive first and last day of the given quarter.
func QuarterBounds(year, quarter int) (time.Time, time.Time) {
	firstMonth := time.Month((quarter-1)*3 + 1)
	from := time.Date(year, firstMonth, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 3, 0).AddDate(0, 0, -1)
	return from, to
}
