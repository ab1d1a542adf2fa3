package models

import "github.com/shopspring/decimal"

// Budget is a per-category spending limit. At most one Budget exists per
// (user, category) pair; creation goes through upsert-by-category.
type Budget struct {
	// ID is the unique identifier for the budget (UUID format).
	ID string `json:"id"`

	// UserID identifies the owning user.
	UserID string `json:"user_id"`

	// Category is the expense category this limit applies to. Matched
	// against expense categories by exact string equality.
	Category string `json:"category"`

	// Limit is the spending cap for the category.
	Limit decimal.Decimal `json:"limit"`
}

// BudgetComparison is one row of a budget-vs-actual report.
type BudgetComparison struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
}
