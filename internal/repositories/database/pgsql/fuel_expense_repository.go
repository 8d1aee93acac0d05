package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	"github.com/Raular78/taxi-cash-register-sub000/internal/models"
	"github.com/Raular78/taxi-cash-register-sub000/internal/utils/mapping"
)

const fuelExpenseColumns = `fuel_expense_id, expense_date, liters, amount, station, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxFuelExpenseRepository struct {
	BaseRepository
}

// newPgxFuelExpenseRepository creates a new repository for the fuel ledger.
func newPgxFuelExpenseRepository(pool *pgxpool.Pool) portsrepo.FuelExpenseRepository {
	return &PgxFuelExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FuelExpenseRepository = (*PgxFuelExpenseRepository)(nil)

func scanFuelExpense(row pgx.Row) (models.FuelExpense, error) {
	var m models.FuelExpense
	err := row.Scan(
		&m.FuelExpenseID,
		&m.ExpenseDate,
		&m.Liters,
		&m.Amount,
		&m.Station,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveFuelExpense inserts a new fuel ledger entry.
func (r *PgxFuelExpenseRepository) SaveFuelExpense(ctx context.Context, fuel domain.FuelExpense) error {
	m := mapping.ToModelFuelExpense(fuel)

	query := `
		INSERT INTO fuel_expenses (` + fuelExpenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.FuelExpenseID,
		m.ExpenseDate,
		m.Liters,
		m.Amount,
		m.Station,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save fuel expense %s: %w", m.FuelExpenseID, err)
	}
	return nil
}

// FindFuelExpenseByID retrieves a fuel ledger entry by its ID.
func (r *PgxFuelExpenseRepository) FindFuelExpenseByID(ctx context.Context, fuelExpenseID string) (*domain.FuelExpense, error) {
	query := `SELECT ` + fuelExpenseColumns + ` FROM fuel_expenses WHERE fuel_expense_id = $1;`

	m, err := scanFuelExpense(r.Pool.QueryRow(ctx, query, fuelExpenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fuel expense by id %s: %w", fuelExpenseID, err)
	}

	d := mapping.ToDomainFuelExpense(m)
	return &d, nil
}

// DeleteFuelExpense removes a fuel ledger entry.
func (r *PgxFuelExpenseRepository) DeleteFuelExpense(ctx context.Context, fuelExpenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM fuel_expenses WHERE fuel_expense_id = $1;`, fuelExpenseID)
	if err != nil {
		return fmt.Errorf("failed to delete fuel expense %s: %w", fuelExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListFuelExpenses returns ledger entries dated within [from, to], newest first.
func (r *PgxFuelExpenseRepository) ListFuelExpenses(ctx context.Context, from, to time.Time) ([]domain.FuelExpense, error) {
	query := `
		SELECT ` + fuelExpenseColumns + `
		FROM fuel_expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		ORDER BY expense_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query fuel expenses: %w", err)
	}
	defer rows.Close()

	modelFuels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FuelExpense, error) {
		return scanFuelExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan fuel expenses: %w", err)
	}
	return mapping.ToDomainFuelExpenseSlice(modelFuels), nil
}

// SumFuelExpenses sums ledger amounts within [from, to].
func (r *PgxFuelExpenseRepository) SumFuelExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM fuel_expenses
		WHERE expense_date >= $1 AND expense_date <= $2;
	`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum fuel expenses: %w", err)
	}
	return total, nil
}
