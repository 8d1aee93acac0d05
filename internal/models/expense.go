package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus indicates the approval state of an expense row.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
)

// Expense mirrors the expenses table. Templates and generated instances live
// in the same table; nullable columns use pointers.
type Expense struct {
	ExpenseID        string          `db:"expense_id"`
	ExpenseDate      time.Time       `db:"expense_date"`
	Category         string          `db:"category"`
	Description      string          `db:"description"`
	Amount           decimal.Decimal `db:"amount"`
	Status           ExpenseStatus   `db:"status"`
	IsRecurring      bool            `db:"is_recurring"`
	Frequency        string          `db:"frequency"` // Nullable, stored as '' when absent
	NextDueDate      *time.Time      `db:"next_due_date"`
	IsPaid           bool            `db:"is_paid"`
	PaymentDate      *time.Time      `db:"payment_date"`
	Notes            string          `db:"notes"`
	SourceTemplateID string          `db:"source_template_id"` // Nullable
	AuditFields
}
