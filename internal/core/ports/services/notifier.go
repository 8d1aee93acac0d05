package services

import (
	"context"

	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
)

// ExpenseNotifier delivers generated-expense notifications to external
// consumers. Delivery is best effort: the generator logs publish failures and
// continues.
type ExpenseNotifier interface {
	ExpenseGenerated(ctx context.Context, notification domain.GenerationNotification) error
}
