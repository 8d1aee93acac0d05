package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		DailyRecordRepo: newPgxDailyRecordRepository(dbPool),
		FuelExpenseRepo: newPgxFuelExpenseRepository(dbPool),
	}
}
