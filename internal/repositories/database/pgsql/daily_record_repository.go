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

const dailyRecordColumns = `record_id, driver_id, record_date, kilometers, cash_income, card_income, invoice_income, fuel_expense, other_expenses, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxDailyRecordRepository struct {
	BaseRepository
}

// newPgxDailyRecordRepository creates a new repository for daily shift records.
func newPgxDailyRecordRepository(pool *pgxpool.Pool) portsrepo.DailyRecordRepository {
	return &PgxDailyRecordRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.DailyRecordRepository = (*PgxDailyRecordRepository)(nil)

func scanDailyRecord(row pgx.Row) (models.DailyRecord, error) {
	var m models.DailyRecord
	err := row.Scan(
		&m.RecordID,
		&m.DriverID,
		&m.RecordDate,
		&m.Kilometers,
		&m.CashIncome,
		&m.CardIncome,
		&m.InvoiceIncome,
		&m.FuelExpense,
		&m.OtherExpenses,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveDailyRecord inserts a new shift record.
func (r *PgxDailyRecordRepository) SaveDailyRecord(ctx context.Context, record domain.DailyRecord) error {
	m := mapping.ToModelDailyRecord(record)

	query := `
		INSERT INTO daily_records (` + dailyRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.RecordID,
		m.DriverID,
		m.RecordDate,
		m.Kilometers,
		m.CashIncome,
		m.CardIncome,
		m.InvoiceIncome,
		m.FuelExpense,
		m.OtherExpenses,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save daily record %s: %w", m.RecordID, err)
	}
	return nil
}

// FindDailyRecordByID retrieves a shift record by its ID.
func (r *PgxDailyRecordRepository) FindDailyRecordByID(ctx context.Context, recordID string) (*domain.DailyRecord, error) {
	query := `SELECT ` + dailyRecordColumns + ` FROM daily_records WHERE record_id = $1;`

	m, err := scanDailyRecord(r.Pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find daily record by id %s: %w", recordID, err)
	}

	d := mapping.ToDomainDailyRecord(m)
	return &d, nil
}

// UpdateDailyRecord rewrites the mutable fields of a shift record.
func (r *PgxDailyRecordRepository) UpdateDailyRecord(ctx context.Context, record domain.DailyRecord) error {
	m := mapping.ToModelDailyRecord(record)

	query := `
		UPDATE daily_records SET
			kilometers = $2,
			cash_income = $3,
			card_income = $4,
			invoice_income = $5,
			fuel_expense = $6,
			other_expenses = $7,
			notes = $8,
			last_updated_at = $9,
			last_updated_by = $10
		WHERE record_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.RecordID,
		m.Kilometers,
		m.CashIncome,
		m.CardIncome,
		m.InvoiceIncome,
		m.FuelExpense,
		m.OtherExpenses,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily record %s: %w", m.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDailyRecord removes a shift record.
func (r *PgxDailyRecordRepository) DeleteDailyRecord(ctx context.Context, recordID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM daily_records WHERE record_id = $1;`, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete daily record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListDailyRecords returns records dated within [from, to], newest first.
func (r *PgxDailyRecordRepository) ListDailyRecords(ctx context.Context, from, to time.Time) ([]domain.DailyRecord, error) {
	query := `
		SELECT ` + dailyRecordColumns + `
		FROM daily_records
		WHERE record_date >= $1 AND record_date <= $2
		ORDER BY record_date DESC, created_at DESC;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily records: %w", err)
	}
	defer rows.Close()

	modelRecords, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.DailyRecord, error) {
		return scanDailyRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily records: %w", err)
	}
	return mapping.ToDomainDailyRecordSlice(modelRecords), nil
}

// SumOperationalExpenses sums fuel_expense + other_expenses across [from, to].
func (r *PgxDailyRecordRepository) SumOperationalExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(fuel_expense + other_expenses), 0)
		FROM daily_records
		WHERE record_date >= $1 AND record_date <= $2;
	`

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum operational expenses: %w", err)
	}
	return total, nil
}

// SumIncome totals the three income channels across [from, to].
func (r *PgxDailyRecordRepository) SumIncome(ctx context.Context, from, to time.Time) (*domain.IncomeTotals, error) {
	query := `
		SELECT COALESCE(SUM(cash_income), 0), COALESCE(SUM(card_income), 0), COALESCE(SUM(invoice_income), 0)
		FROM daily_records
		WHERE record_date >= $1 AND record_date <= $2;
	`

	var totals domain.IncomeTotals
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&totals.Cash, &totals.Card, &totals.Invoice); err != nil {
		return nil, fmt.Errorf("failed to sum income: %w", err)
	}
	return &totals, nil
}
