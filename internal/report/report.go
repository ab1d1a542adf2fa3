// Package report derives spending summaries and budget-vs-actual
// comparisons from raw ledger rows. All functions are pure: they take
// loaded records and return computed rows, which keeps the arithmetic
// exact (decimal, no SQL float coercion) and trivially testable.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/models"
)

// TotalsByCategory sums expense amounts per category, ordered by total
// descending. Categories are compared by exact string equality.
func TotalsByCategory(expenses []models.Expense) []models.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	totals := make([]models.CategoryTotal, 0, len(sums))
	for category, total := range sums {
		totals = append(totals, models.CategoryTotal{Category: category, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})

	return totals
}

// TotalsByMonth sums expense amounts per calendar month, ordered ascending.
// Months are formatted as zero-padded "YYYY-MM" in UTC.
func TotalsByMonth(expenses []models.Expense) []models.MonthTotal {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		month := e.Date.UTC().Format("2006-01")
		sums[month] = sums[month].Add(e.Amount)
	}

	totals := make([]models.MonthTotal, 0, len(sums))
	for month, total := range sums {
		totals = append(totals, models.MonthTotal{Month: month, Total: total})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Month < totals[j].Month
	})

	return totals
}

var hundred = decimal.NewFromInt(100)

// CompareBudgets computes one budget-vs-actual row per budget, in budget
// order. A budget category with no matching spending counts as spent 0.
// Categories with spending but no budget are omitted: the iteration is
// over budgets, not expense categories.
func CompareBudgets(budgets []models.Budget, totals []models.CategoryTotal) []models.BudgetComparison {
	spentByCategory := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		spentByCategory[t.Category] = t.Total
	}

	rows := make([]models.BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCategory[b.Category] // zero when absent

		// A zero limit substitutes divisor 1, so percentage becomes
		// spent*100 instead of a division-by-zero panic. Carried over
		// verbatim for compatibility; do not "fix" without migrating
		// clients that rely on it.
		divisor := b.Limit
		if divisor.IsZero() {
			divisor = decimal.NewFromInt(1)
		}

		rows = append(rows, models.BudgetComparison{
			Category:   b.Category,
			Limit:      b.Limit,
			Spent:      spent,
			Remaining:  b.Limit.Sub(spent),
			Percentage: spent.Div(divisor).Mul(hundred),
		})
	}

	return rows
}
