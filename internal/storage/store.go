// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/spendwise/api/internal/models"
)

// ErrNotFound is returned when a record does not exist or is not owned by
// the requesting user. The two cases are deliberately indistinguishable so
// callers cannot probe for other users' record IDs.
var ErrNotFound = errors.New("record not found")

// SortKey selects the ordering of an expense listing.
type SortKey string

const (
	SortDateDesc   SortKey = "date_desc"
	SortDateAsc    SortKey = "date_asc"
	SortAmountDesc SortKey = "amount_desc"
	SortAmountAsc  SortKey = "amount_asc"
)

// Valid reports whether s is a recognized sort key.
func (s SortKey) Valid() bool {
	switch s {
	case SortDateDesc, SortDateAsc, SortAmountDesc, SortAmountAsc:
		return true
	}
	return false
}

// ExpenseFilter narrows and orders an expense listing. Zero values mean
// "no constraint". From is inclusive, Until is exclusive.
type ExpenseFilter struct {
	Category string
	From     time.Time
	Until    time.Time
	Sort     SortKey
}

// Store defines the interface for persistence operations. This abstraction
// allows swapping storage backends without changing the service layer, and
// lets tests substitute fakes.
//
// All expense and budget lookups that take (id, userID) resolve through a
// single owner-scoped predicate: a row that exists but belongs to another
// user behaves exactly like a row that does not exist.
type Store interface {
	// CreateUser inserts a new user. Fails if the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	// Returns (nil, nil) when no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) when no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateExpense persists a new expense. ID and CreatedAt are
	// populated by the store when unset.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns the user's expenses matching the filter.
	// Default order is date descending. An empty result is not an error.
	ListExpenses(ctx context.Context, userID string, filter ExpenseFilter) ([]models.Expense, error)

	// GetExpense retrieves one expense scoped to its owner.
	GetExpense(ctx context.Context, id, userID string) (*models.Expense, error)

	// UpdateExpense rewrites the expense identified by (ID, UserID).
	// Returns ErrNotFound when no owned row matches.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes the expense identified by (id, userID).
	// Returns ErrNotFound when no owned row matches.
	DeleteExpense(ctx context.Context, id, userID string) error

	// CreateBudget persists a new budget. ID is populated when unset.
	CreateBudget(ctx context.Context, budget *models.Budget) error

	// ListBudgets returns all budgets for the user in storage order.
	ListBudgets(ctx context.Context, userID string) ([]models.Budget, error)

	// GetBudget retrieves one budget scoped to its owner.
	GetBudget(ctx context.Context, id, userID string) (*models.Budget, error)

	// GetBudgetByCategory retrieves the user's budget for an exact
	// category match. Returns ErrNotFound when absent.
	GetBudgetByCategory(ctx context.Context, userID, category string) (*models.Budget, error)

	// UpdateBudget rewrites the budget identified by (ID, UserID).
	// Returns ErrNotFound when no owned row matches.
	UpdateBudget(ctx context.Context, budget *models.Budget) error

	// DeleteBudget removes the budget identified by (id, userID).
	DeleteBudget(ctx context.Context, id, userID string) error

	// DeleteBudgetByCategory removes the user's budget for an exact
	// category match. Returns ErrNotFound when absent.
	DeleteBudgetByCategory(ctx context.Context, userID, category string) error

	// HasBudgetCategory reports whether the user has a budget whose
	// category equals the given one case-insensitively, excluding the
	// budget with excludeID. Used for rename-conflict checks.
	HasBudgetCategory(ctx context.Context, userID, category, excludeID string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}
