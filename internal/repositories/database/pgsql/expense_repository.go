package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Raular78/taxi-cash-register-sub000/internal/apperrors"
	"github.com/Raular78/taxi-cash-register-sub000/internal/core/domain"
	portsrepo "github.com/Raular78/taxi-cash-register-sub000/internal/core/ports/repositories"
	"github.com/Raular78/taxi-cash-register-sub000/internal/models"
	"github.com/Raular78/taxi-cash-register-sub000/internal/utils/mapping"
	"github.com/Raular78/taxi-cash-register-sub000/internal/utils/pagination"
)

const expenseColumns = `expense_id, expense_date, category, description, amount, status, is_recurring, frequency, next_due_date, is_paid, payment_date, notes, source_template_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.ExpenseDate,
		&m.Category,
		&m.Description,
		&m.Amount,
		&m.Status,
		&m.IsRecurring,
		&m.Frequency,
		&m.NextDueDate,
		&m.IsPaid,
		&m.PaymentDate,
		&m.Notes,
		&m.SourceTemplateID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func collectExpenses(rows pgx.Rows) ([]domain.Expense, error) {
	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// SaveExpense inserts a new expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.ExpenseDate,
		m.Category,
		m.Description,
		m.Amount,
		m.Status,
		m.IsRecurring,
		m.Frequency,
		m.NextDueDate,
		m.IsPaid,
		m.PaymentDate,
		m.Notes,
		m.SourceTemplateID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_id = $1;`

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by id %s: %w", expenseID, err)
	}

	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// UpdateExpense rewrites the mutable fields of an expense row.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses SET
			expense_date = $2,
			category = $3,
			description = $4,
			amount = $5,
			status = $6,
			is_recurring = $7,
			frequency = $8,
			next_due_date = $9,
			is_paid = $10,
			payment_date = $11,
			notes = $12,
			last_updated_at = $13,
			last_updated_by = $14
		WHERE expense_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.ExpenseDate,
		m.Category,
		m.Description,
		m.Amount,
		m.Status,
		m.IsRecurring,
		m.Frequency,
		m.NextDueDate,
		m.IsPaid,
		m.PaymentDate,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense row.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListExpenses returns expenses dated within [from, to], newest first, using
// keyset pagination on (expense_date, created_at).
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, from, to time.Time, limit int, nextToken string) ([]domain.Expense, string, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE expense_date >= $1 AND expense_date <= $2`
	args := []any{from, to}

	if nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (expense_date, created_at) < ($3, $4)`
		args = append(args, lastDate, lastCreatedAt)
	}

	// Fetch one extra row to know whether a further page exists.
	query += fmt.Sprintf(` ORDER BY expense_date DESC, created_at DESC LIMIT %d;`, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := collectExpenses(rows)
	if err != nil {
		return nil, "", fmt.Errorf("failed to scan expenses: %w", err)
	}

	var newToken string
	if len(expenses) > limit {
		expenses = expenses[:limit]
		last := expenses[limit-1]
		newToken = pagination.EncodeToken(last.Date, last.CreatedAt)
	}
	return expenses, newToken, nil
}

// FindDueTemplates returns recurring templates whose next due date is at or
// before dueBefore. NULL next_due_date rows are included so callers can log
// and skip them.
func (r *PgxExpenseRepository) FindDueTemplates(ctx context.Context, dueBefore time.Time) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE is_recurring = TRUE
		AND (next_due_date IS NULL OR next_due_date <= $1)
		ORDER BY next_due_date ASC NULLS FIRST, expense_id ASC;
	`

	rows, err := r.Pool.Query(ctx, query, dueBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query due templates: %w", err)
	}
	defer rows.Close()

	expenses, err := collectExpenses(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan due templates: %w", err)
	}
	return expenses, nil
}

// likeEscaper escapes LIKE metacharacters so a pattern matches them
// literally. Backslash is PostgreSQL's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLikePrefix(s string) string {
	return likeEscaper.Replace(s)
}

// FindGeneratedExpense looks for a non-recurring expense matching the
// template's category and amount in the target month, with a description
// starting with descriptionPrefix. The prefix is matched literally, a
// description like "Descuento 10%" is not a wildcard.
func (r *PgxExpenseRepository) FindGeneratedExpense(ctx context.Context, category, descriptionPrefix string, amount decimal.Decimal, monthStart, monthEnd time.Time) (*domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE is_recurring = FALSE
		AND category = $1
		AND description LIKE $2
		AND amount = $3
		AND expense_date >= $4 AND expense_date < $5
		LIMIT 1;
	`
	pattern := escapeLikePrefix(descriptionPrefix) + "%"

	m, err := scanExpense(r.Pool.QueryRow(ctx, query, category, pattern, amount, monthStart, monthEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find generated expense for category %s: %w", category, err)
	}

	d := mapping.ToDomainExpense(m)
	return &d, nil
}

// UpdateNextDueDate persists the advanced next due date onto a template.
func (r *PgxExpenseRepository) UpdateNextDueDate(ctx context.Context, expenseID string, next time.Time, userID string, now time.Time) error {
	query := `
		UPDATE expenses SET
			next_due_date = $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE expense_id = $1 AND is_recurring = TRUE;
	`

	tag, err := r.Pool.Exec(ctx, query, expenseID, next, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update next due date for expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindFixedExpenses returns expenses in [from, to] that are recurring or whose
// category is in the allow-list.
func (r *PgxExpenseRepository) FindFixedExpenses(ctx context.Context, from, to time.Time, categories []string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		AND (is_recurring = TRUE OR LOWER(category) = ANY($3))
		ORDER BY expense_date ASC;
	`

	lowered := make([]string, len(categories))
	for i, c := range categories {
		lowered[i] = strings.ToLower(c)
	}

	rows, err := r.Pool.Query(ctx, query, from, to, lowered)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := collectExpenses(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan fixed expenses: %w", err)
	}
	return expenses, nil
}

// SumVariableExpenses sums non-recurring expenses in [from, to] outside the
// excluded categories.
func (r *PgxExpenseRepository) SumVariableExpenses(ctx context.Context, from, to time.Time, excludedCategories []string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE expense_date >= $1 AND expense_date <= $2
		AND is_recurring = FALSE
		AND LOWER(category) <> ALL($3);
	`

	lowered := make([]string, len(excludedCategories))
	for i, c := range excludedCategories {
		lowered[i] = strings.ToLower(c)
	}

	var total decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, from, to, lowered).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum variable expenses: %w", err)
	}
	return total, nil
}
