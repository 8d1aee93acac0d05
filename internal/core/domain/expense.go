package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency defines how often a recurring expense template spawns a new entry.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyBiannual  Frequency = "biannual"
	FrequencyAnnual    Frequency = "annual"
)

// Months returns the number of months one period of this frequency spans.
// Returns 0 for an unknown frequency.
func (f Frequency) Months() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyBiannual:
		return 6
	case FrequencyAnnual:
		return 12
	default:
		return 0
	}
}

// IsValid reports whether f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	return f.Months() > 0
}

// NextOccurrence advances a due date by one period. The day of month is
// preserved, clamped to the last day of the target month when it does not
// exist there (Jan 31 + monthly = Feb 28, or Feb 29 in a leap year), so a
// month-end template never drifts past the month it is due in.
func (f Frequency) NextOccurrence(from time.Time) time.Time {
	first := time.Date(from.Year(), from.Month()+time.Month(f.Months()), 1, 0, 0, 0, 0, from.Location())
	day := from.Day()
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, from.Location())
}

// ExpenseStatus indicates the approval state of an expense entry.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
)

// Expense is a single entity with a dual role: a one-off expense entry, or a
// recurring *template* when IsRecurring is set. Only templates carry a live
// NextDueDate and a Frequency; rows materialized from a template always have
// IsRecurring = false and SourceTemplateID pointing back at the template.
type Expense struct {
	ExpenseID        string          `json:"expenseID"`
	Date             time.Time       `json:"date"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Status           ExpenseStatus   `json:"status"`
	IsRecurring      bool            `json:"isRecurring"`
	Frequency        Frequency       `json:"frequency,omitempty"`
	NextDueDate      *time.Time      `json:"nextDueDate,omitempty"`
	IsPaid           bool            `json:"isPaid"`
	PaymentDate      *time.Time      `json:"paymentDate,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	SourceTemplateID string          `json:"sourceTemplateID,omitempty"`
	AuditFields
}

// GenerationNotification is the payload accumulated per generated expense,
// handed back to the caller and published for external delivery.
type GenerationNotification struct {
	TemplateID  string          `json:"templateID"`
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
}

// GenerationResult is the outcome of one recurring-generation run.
// Zero generated expenses is a valid, non-error outcome.
type GenerationResult struct {
	Generated     []Expense
	Notifications []GenerationNotification
}
