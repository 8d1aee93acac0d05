package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRecord is one driver shift: kilometers driven, income split by payment
// method, and operational spend recorded outside the expense ledger. The
// embedded FuelExpense/OtherExpenses fields are a second, parallel source of
// expense data that the aggregator merges without conflating with Expense rows.
type DailyRecord struct {
	RecordID      string          `json:"recordID"`
	DriverID      string          `json:"driverID"`
	Date          time.Time       `json:"date"`
	Kilometers    decimal.Decimal `json:"kilometers"`
	CashIncome    decimal.Decimal `json:"cashIncome"`
	CardIncome    decimal.Decimal `json:"cardIncome"`
	InvoiceIncome decimal.Decimal `json:"invoiceIncome"`
	FuelExpense   decimal.Decimal `json:"fuelExpense"`
	OtherExpenses decimal.Decimal `json:"otherExpenses"`
	Notes         string          `json:"notes,omitempty"`
	AuditFields
}

// TotalIncome sums the three income channels of the shift.
func (r DailyRecord) TotalIncome() decimal.Decimal {
	return r.CashIncome.Add(r.CardIncome).Add(r.InvoiceIncome)
}

// IncomeTotals aggregates daily-record income over a date range.
type IncomeTotals struct {
	Cash    decimal.Decimal `json:"cash"`
	Card    decimal.Decimal `json:"card"`
	Invoice decimal.Decimal `json:"invoice"`
}

// Total returns cash + card + invoice income.
func (t IncomeTotals) Total() decimal.Decimal {
	return t.Cash.Add(t.Card).Add(t.Invoice)
}
