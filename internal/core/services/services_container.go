package services

import (
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	portssvc "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/services"
)

// NewServiceContainer creates and wires up all application services.
// The notifier may be nil; generation then runs without publishing events.
func NewServiceContainer(repos portsrepo.RepositoryProvider, notifier portssvc.ExpenseNotifier) *portssvc.ServiceContainer {
	recurringOpts := []RecurringExpenseServiceOption{}
	if notifier != nil {
		recurringOpts = append(recurringOpts, WithNotifier(notifier))
	}

	aggregator := NewExpenseAggregatorService(repos.ExpenseRepo, repos.DailyRecordRepo, repos.FuelExpenseRepo)

	return &portssvc.ServiceContainer{
		Expense:     NewExpenseService(repos.ExpenseRepo),
		Recurring:   NewRecurringExpenseService(repos.ExpenseRepo, recurringOpts...),
		Aggregator:  aggregator,
		DailyRecord: NewDailyRecordService(repos.DailyRecordRepo),
		FuelExpense: NewFuelExpenseService(repos.FuelExpenseRepo),
		Report:      NewReportService(repos.DailyRecordRepo, aggregator),
	}
}
