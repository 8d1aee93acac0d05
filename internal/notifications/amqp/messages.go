package amqp

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// ExpenseGeneratedMessage is the payload published for each expense the
// recurring generator materializes. Consumers fetch the full row from the
// database when they need more than this.
type ExpenseGeneratedMessage struct {
	TemplateID  string          `json:"templateID"`
	ExpenseID   string          `json:"expenseID"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"dueDate"`
	Timestamp   time.Time       `json:"timestamp"`
}

// NewExpenseGeneratedMessage builds the message for one generated expense.
func NewExpenseGeneratedMessage(n domain.GenerationNotification) *ExpenseGeneratedMessage {
	return &ExpenseGeneratedMessage{
		TemplateID:  n.TemplateID,
		ExpenseID:   n.ExpenseID,
		Category:    n.Category,
		Description: n.Description,
		Amount:      n.Amount,
		DueDate:     n.DueDate,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *ExpenseGeneratedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExpenseGeneratedMessageFromJSON creates a message from JSON bytes
func ExpenseGeneratedMessageFromJSON(data []byte) (*ExpenseGeneratedMessage, error) {
	var msg ExpenseGeneratedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
