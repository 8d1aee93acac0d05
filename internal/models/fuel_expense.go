package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelExpense mirrors the fuel_expenses table.
type FuelExpense struct {
	FuelExpenseID string          `db:"fuel_expense_id"`
	ExpenseDate   time.Time       `db:"expense_date"`
	Liters        decimal.Decimal `db:"liters"`
	Amount        decimal.Decimal `db:"amount"`
	Station       string          `db:"station"`
	Notes         string          `db:"notes"`
	AuditFields
}
