package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/models"
	"github.com/spendwise/api/internal/report"
	"github.com/spendwise/api/internal/storage"
)

// ExpenseDraft carries the client-supplied fields for creating or
// replacing an expense. Amount is a pointer so "absent" and "zero" can
// be told apart for the required-field check.
type ExpenseDraft struct {
	Title    string
	Category string
	Amount   *decimal.Decimal
	Date     time.Time
}

// ExpenseService implements ledger operations over a storage.Store.
// Every method takes the owning user's ID explicitly; there is no ambient
// current-user state.
type ExpenseService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewExpenseService creates a new expense service.
func NewExpenseService(store storage.Store, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{store: store, logger: logger}
}

// List returns the user's expenses matching the filter, date-descending
// unless the filter says otherwise. No matches is an empty list, not an error.
func (s *ExpenseService) List(ctx context.Context, userID string, filter storage.ExpenseFilter) ([]models.Expense, error) {
	if filter.Sort != "" && !filter.Sort.Valid() {
		return nil, fmt.Errorf("%w: unknown sort key %q", ErrValidation, filter.Sort)
	}
	return s.store.ListExpenses(ctx, userID, filter)
}

// Create validates the draft and persists a new expense owned by userID.
func (s *ExpenseService) Create(ctx context.Context, userID string, draft ExpenseDraft) (*models.Expense, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    strings.TrimSpace(draft.Title),
		Category: draft.Category,
		Amount:   *draft.Amount,
		Date:     draft.Date,
	}
	if expense.Category == "" {
		expense.Category = models.DefaultCategory
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now().UTC()
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Debug("expense created", "user_id", userID, "expense_id", expense.ID)
	return expense, nil
}

// Update replaces the mutable fields of the expense identified by
// (id, userID). A row that is absent or owned by another user yields
// storage.ErrNotFound either way.
func (s *ExpenseService) Update(ctx context.Context, id, userID string, draft ExpenseDraft) (*models.Expense, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	expense.Title = strings.TrimSpace(draft.Title)
	expense.Category = draft.Category
	if expense.Category == "" {
		expense.Category = models.DefaultCategory
	}
	expense.Amount = *draft.Amount
	if !draft.Date.IsZero() {
		expense.Date = draft.Date
	}

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// Delete removes the expense identified by (id, userID).
func (s *ExpenseService) Delete(ctx context.Context, id, userID string) error {
	return s.store.DeleteExpense(ctx, id, userID)
}

// SummaryByCategory returns per-category totals, largest first.
func (s *ExpenseService) SummaryByCategory(ctx context.Context, userID string) ([]models.CategoryTotal, error) {
	expenses, err := s.store.ListExpenses(ctx, userID, storage.ExpenseFilter{})
	if err != nil {
		return nil, err
	}
	return report.TotalsByCategory(expenses), nil
}

// SummaryByMonth returns per-month totals ("YYYY-MM"), oldest first.
func (s *ExpenseService) SummaryByMonth(ctx context.Context, userID string) ([]models.MonthTotal, error) {
	expenses, err := s.store.ListExpenses(ctx, userID, storage.ExpenseFilter{})
	if err != nil {
		return nil, err
	}
	return report.TotalsByMonth(expenses), nil
}

func validateDraft(draft ExpenseDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if draft.Amount == nil {
		return fmt.Errorf("%w: amount is required", ErrValidation)
	}
	if draft.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	return nil
}
