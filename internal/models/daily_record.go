package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRecord mirrors the daily_records table.
type DailyRecord struct {
	RecordID      string          `db:"record_id"`
	DriverID      string          `db:"driver_id"`
	RecordDate    time.Time       `db:"record_date"`
	Kilometers    decimal.Decimal `db:"kilometers"`
	CashIncome    decimal.Decimal `db:"cash_income"`
	CardIncome    decimal.Decimal `db:"card_income"`
	InvoiceIncome decimal.Decimal `db:"invoice_income"`
	FuelExpense   decimal.Decimal `db:"fuel_expense"`
	OtherExpenses decimal.Decimal `db:"other_expenses"`
	Notes         string          `db:"notes"`
	AuditFields
}
