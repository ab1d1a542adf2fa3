// Package models defines the core domain models for the expense tracker.
//
// # Models
//
//   - User: a registered account; owns expenses and budgets
//   - Expense: one ledger entry (title, category, amount, date)
//   - Budget: a per-category spending limit, unique per (user, category)
//   - CategoryTotal / MonthTotal: aggregated summary rows
//   - BudgetComparison: budget-vs-actual report row
//
// # Design principles
//
//  1. Every Expense and Budget carries its owning UserID; all storage and
//     service operations are scoped by it.
//  2. Monetary values use decimal.Decimal, never float64.
//  3. Relationships use ID strings instead of pointers; Expense and Budget
//     are related only through the shared category string.
package models
