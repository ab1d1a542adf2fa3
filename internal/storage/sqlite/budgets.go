package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/models"
	"github.com/spendwise/api/internal/storage"
)

const budgetColumns = "id, user_id, category, limit_amount"

// CreateBudget persists a new budget. The unique index on
// (user_id, category) rejects duplicates that slip past the upsert path.
func (s *SQLiteStore) CreateBudget(ctx context.Context, budget *models.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}

	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		budget.ID,
		budget.UserID,
		budget.Category,
		budget.Limit.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert budget: %w", err)
	}

	return nil
}

// ListBudgets returns all budgets for the user in storage order.
func (s *SQLiteStore) ListBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	query := "SELECT " + budgetColumns + " FROM budgets WHERE user_id = ?"

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	budgets := make([]models.Budget, 0)
	for rows.Next() {
		budget, err := scanBudget(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, *budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// GetBudget retrieves one budget scoped to its owner.
func (s *SQLiteStore) GetBudget(ctx context.Context, id, userID string) (*models.Budget, error) {
	query := "SELECT " + budgetColumns + " FROM budgets WHERE id = ? AND user_id = ?"

	budget, err := scanBudget(s.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return budget, nil
}

// GetBudgetByCategory retrieves the user's budget for an exact category match.
func (s *SQLiteStore) GetBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error) {
	query := "SELECT " + budgetColumns + " FROM budgets WHERE user_id = ? AND category = ?"

	budget, err := scanBudget(s.db.QueryRowContext(ctx, query, userID, category))
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return budget, nil
}

// UpdateBudget rewrites the budget identified by (ID, UserID).
func (s *SQLiteStore) UpdateBudget(ctx context.Context, budget *models.Budget) error {
	query := `
		UPDATE budgets
		SET category = ?, limit_amount = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		budget.Category,
		budget.Limit.String(),
		budget.ID,
		budget.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}

	return requireRowAffected(result)
}

// DeleteBudget removes the budget identified by (id, userID).
func (s *SQLiteStore) DeleteBudget(ctx context.Context, id, userID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM budgets WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return requireRowAffected(result)
}

// DeleteBudgetByCategory removes the user's budget for an exact category match.
func (s *SQLiteStore) DeleteBudgetByCategory(ctx context.Context, userID, category string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM budgets WHERE user_id = ? AND category = ?",
		userID, category,
	)
	if err != nil {
		return fmt.Errorf("failed to delete budget by category: %w", err)
	}

	return requireRowAffected(result)
}

// HasBudgetCategory reports whether the user already has a budget under the
// given category, compared case-insensitively, excluding excludeID.
func (s *SQLiteStore) HasBudgetCategory(ctx context.Context, userID, category, excludeID string) (bool, error) {
	query := `
		SELECT COUNT(*) FROM budgets
		WHERE user_id = ? AND LOWER(category) = LOWER(?) AND id != ?
	`

	var count int
	err := s.db.QueryRowContext(ctx, query, userID, category, excludeID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check budget category: %w", err)
	}

	return count > 0, nil
}

func scanBudget(row rowScanner) (*models.Budget, error) {
	budget := &models.Budget{}
	var limit string

	err := row.Scan(
		&budget.ID,
		&budget.UserID,
		&budget.Category,
		&limit,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan budget: %w", err)
	}

	budget.Limit, err = decimal.NewFromString(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stored limit %q: %w", limit, err)
	}

	return budget, nil
}
