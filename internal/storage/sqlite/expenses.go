package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/models"
	"github.com/spendwise/api/internal/storage"
)

const expenseColumns = "id, user_id, title, category, amount, date, created_at"

// CreateExpense persists a new expense to the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Title,
		expense.Category,
		expense.Amount.String(),
		expense.Date.UTC().Unix(),
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// ListExpenses returns the user's expenses matching the filter, ordered per
// the filter's sort key (date descending by default).
func (s *SQLiteStore) ListExpenses(ctx context.Context, userID string, filter storage.ExpenseFilter) ([]models.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM expenses WHERE user_id = ?"
	args := []interface{}{userID}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}
	if !filter.From.IsZero() {
		query += " AND date >= ?"
		args = append(args, filter.From.UTC().Unix())
	}
	if !filter.Until.IsZero() {
		query += " AND date < ?"
		args = append(args, filter.Until.UTC().Unix())
	}

	// CAST is for ordering only; amounts stay exact decimal strings.
	switch filter.Sort {
	case storage.SortAmountAsc:
		query += " ORDER BY CAST(amount AS REAL) ASC, date DESC"
	case storage.SortAmountDesc:
		query += " ORDER BY CAST(amount AS REAL) DESC, date DESC"
	case storage.SortDateAsc:
		query += " ORDER BY date ASC"
	default:
		query += " ORDER BY date DESC"
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// GetExpense retrieves one expense scoped to its owner. A row owned by a
// different user is reported as storage.ErrNotFound.
func (s *SQLiteStore) GetExpense(ctx context.Context, id, userID string) (*models.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM expenses WHERE id = ? AND user_id = ?"

	row := s.db.QueryRowContext(ctx, query, id, userID)
	expense, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense rewrites the expense identified by (ID, UserID).
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	query := `
		UPDATE expenses
		SET title = ?, category = ?, amount = ?, date = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		expense.Title,
		expense.Category,
		expense.Amount.String(),
		expense.Date.UTC().Unix(),
		expense.ID,
		expense.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	return requireRowAffected(result)
}

// DeleteExpense removes the expense identified by (id, userID).
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return requireRowAffected(result)
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var amount string
	var date int64

	err := row.Scan(
		&expense.ID,
		&expense.UserID,
		&expense.Title,
		&expense.Category,
		&amount,
		&date,
		&expense.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan expense: %w", err)
	}

	expense.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored amount %q: %w", amount, err)
	}
	expense.Date = time.Unix(date, 0).UTC()

	return expense, nil
}

// requireRowAffected maps a zero-row write to storage.ErrNotFound, keeping
// "absent" and "owned by someone else" indistinguishable.
func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
