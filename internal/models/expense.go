package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to expenses created without an explicit category.
const DefaultCategory = "General"

// Expense represents a single expense record in a user's ledger.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// UserID identifies the owning user. Every read and write is scoped
	// by this field; rows of other users are never visible.
	UserID string `json:"user_id"`

	// Title is a short human-readable description. Required, non-empty.
	Title string `json:"title"`

	// Category groups expenses for budgets and summaries.
	// Defaults to DefaultCategory when not provided.
	Category string `json:"category"`

	// Amount is the monetary value of the expense. Decimal to avoid
	// floating-point drift in sums.
	Amount decimal.Decimal `json:"amount"`

	// Date is when the expense occurred (UTC). Defaults to creation time.
	Date time.Time `json:"date"`

	// CreatedAt is the Unix timestamp when the record was created.
	CreatedAt int64 `json:"created_at"`
}

// CategoryTotal is one row of a per-category spending summary.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthTotal is one row of a per-month spending summary.
// Month is formatted as zero-padded "YYYY-MM".
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}
