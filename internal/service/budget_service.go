package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/models"
	"github.com/spendwise/api/internal/report"
	"github.com/spendwise/api/internal/storage"
)

// BudgetService implements budget registry operations over a storage.Store.
type BudgetService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewBudgetService creates a new budget service.
func NewBudgetService(store storage.Store, logger *slog.Logger) *BudgetService {
	return &BudgetService{store: store, logger: logger}
}

// Upsert creates a budget for (userID, category) or, when one already
// exists for that exact category, updates its limit in place. This is the
// sole creation path; there is no create that rejects existing categories.
func (s *BudgetService) Upsert(ctx context.Context, userID, category string, limit decimal.Decimal) (*models.Budget, error) {
	if err := validateBudget(category, limit); err != nil {
		return nil, err
	}

	existing, err := s.store.GetBudgetByCategory(ctx, userID, category)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		existing.Limit = limit
		if err := s.store.UpdateBudget(ctx, existing); err != nil {
			return nil, err
		}
		s.logger.Debug("budget limit updated", "user_id", userID, "category", category)
		return existing, nil
	}

	budget := &models.Budget{
		UserID:   userID,
		Category: category,
		Limit:    limit,
	}
	if err := s.store.CreateBudget(ctx, budget); err != nil {
		return nil, err
	}

	s.logger.Debug("budget created", "user_id", userID, "category", category)
	return budget, nil
}

// List returns all of the user's budgets.
func (s *BudgetService) List(ctx context.Context, userID string) ([]models.Budget, error) {
	return s.store.ListBudgets(ctx, userID)
}

// Get returns the budget identified by (id, userID).
func (s *BudgetService) Get(ctx context.Context, id, userID string) (*models.Budget, error) {
	return s.store.GetBudget(ctx, id, userID)
}

// Update renames a budget and/or changes its limit. When the category
// changes (compared case-insensitively) and the user already has a budget
// under the new name, it fails with ErrCategoryConflict instead of merging.
func (s *BudgetService) Update(ctx context.Context, id, userID, category string, limit decimal.Decimal) (*models.Budget, error) {
	if err := validateBudget(category, limit); err != nil {
		return nil, err
	}

	budget, err := s.store.GetBudget(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(budget.Category, category) {
		taken, err := s.store.HasBudgetCategory(ctx, userID, category, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCategoryConflict
		}
	}

	budget.Category = category
	budget.Limit = limit

	if err := s.store.UpdateBudget(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

// Delete removes the budget identified by (id, userID).
func (s *BudgetService) Delete(ctx context.Context, id, userID string) error {
	return s.store.DeleteBudget(ctx, id, userID)
}

// DeleteByCategory removes the user's budget for an exact category match.
func (s *BudgetService) DeleteByCategory(ctx context.Context, userID, category string) error {
	return s.store.DeleteBudgetByCategory(ctx, userID, category)
}

// Compare returns one budget-vs-actual row per budget the user has.
func (s *BudgetService) Compare(ctx context.Context, userID string) ([]models.BudgetComparison, error) {
	budgets, err := s.store.ListBudgets(ctx, userID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, userID, storage.ExpenseFilter{})
	if err != nil {
		return nil, err
	}

	return report.CompareBudgets(budgets, report.TotalsByCategory(expenses)), nil
}

func validateBudget(category string, limit decimal.Decimal) error {
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if limit.IsNegative() {
		return fmt.Errorf("%w: limit must not be negative", ErrValidation)
	}
	return nil
}
