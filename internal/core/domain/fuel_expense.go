package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FuelExpense is an entry in the dedicated fuel-purchase ledger. This ledger
// is an optional source: not every deployment carries it, and its absence must
// be tolerated by readers, never fatal.
type FuelExpense struct {
	FuelExpenseID string          `json:"fuelExpenseID"`
	Date          time.Time       `json:"date"`
	Liters        decimal.Decimal `json:"liters"`
	Amount        decimal.Decimal `json:"amount"`
	Station       string          `json:"station,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	AuditFields
}
