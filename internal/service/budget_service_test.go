package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/storage"
)

func TestBudgetUpsert(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "alice@upsert.test")
	svc := NewBudgetService(store, discardLogger())
	ctx := context.Background()

	first, err := svc.Upsert(ctx, user.ID, "Food", decimal.RequireFromString("100"))
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	second, err := svc.Upsert(ctx, user.ID, "Food", decimal.RequireFromString("150"))
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("upsert created a new row: %s vs %s", second.ID, first.ID)
	}

	budgets, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(budgets) != 1 {
		t.Fatalf("got %d budgets, want exactly 1", len(budgets))
	}
	if !budgets[0].Limit.Equal(decimal.RequireFromString("150")) {
		t.Errorf("limit = %s, want 150", budgets[0].Limit)
	}
}

func TestBudgetUpsertValidation(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "alice@upsert-validation.test")
	svc := NewBudgetService(store, discardLogger())
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, user.ID, "  ", decimal.RequireFromString("10")); !errors.Is(err, ErrValidation) {
		t.Errorf("blank category = %v, want ErrValidation", err)
	}
	if _, err := svc.Upsert(ctx, user.ID, "Food", decimal.RequireFromString("-5")); !errors.Is(err, ErrValidation) {
		t.Errorf("negative limit = %v, want ErrValidation", err)
	}
}

func TestBudgetRename(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "alice@rename.test")
	svc := NewBudgetService(store, discardLogger())
	ctx := context.Background()

	food, err := svc.Upsert(ctx, user.ID, "Food", decimal.RequireFromString("100"))
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	travel, err := svc.Upsert(ctx, user.ID, "Travel", decimal.RequireFromString("300"))
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	t.Run("conflict check is case-insensitive", func(t *testing.T) {
		if _, err := svc.Update(ctx, travel.ID, user.ID, "FOOD", decimal.RequireFromString("300")); !errors.Is(err, ErrCategoryConflict) {
			t.Fatalf("Update = %v, want ErrCategoryConflict", err)
		}

		// Both rows must be untouched after the failed rename.
		budgets, err := svc.List(ctx, user.ID)
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(budgets) != 2 {
			t.Fatalf("got %d budgets, want 2", len(budgets))
		}
		for _, b := range budgets {
			switch b.ID {
			case food.ID:
				if b.Category != "Food" || !b.Limit.Equal(decimal.RequireFromString("100")) {
					t.Errorf("food changed: %+v", b)
				}
			case travel.ID:
				if b.Category != "Travel" || !b.Limit.Equal(decimal.RequireFromString("300")) {
					t.Errorf("travel changed: %+v", b)
				}
			}
		}
	})

	t.Run("changing only the casing of own category is allowed", func(t *testing.T) {
		got, err := svc.Update(ctx, food.ID, user.ID, "food", decimal.RequireFromString("120"))
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if got.Category != "food" || !got.Limit.Equal(decimal.RequireFromString("120")) {
			t.Errorf("got %+v, want food/120", got)
		}
	})

	t.Run("rename to a free category", func(t *testing.T) {
		got, err := svc.Update(ctx, travel.ID, user.ID, "Vacation", decimal.RequireFromString("350"))
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if got.Category != "Vacation" {
			t.Errorf("category = %q, want Vacation", got.Category)
		}
	})

	t.Run("not found or not owned", func(t *testing.T) {
		bob := newTestUser(t, store, "bob@rename.test")
		if _, err := svc.Update(ctx, food.ID, bob.ID, "Anything", decimal.RequireFromString("1")); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Update as other user = %v, want ErrNotFound", err)
		}
	})
}

func TestBudgetCompare(t *testing.T) {
	store := newTestStore(t)
	user := newTestUser(t, store, "alice@compare.test")
	budgets := NewBudgetService(store, discardLogger())
	expenses := NewExpenseService(store, discardLogger())
	ctx := context.Background()

	if _, err := budgets.Upsert(ctx, user.ID, "Food", decimal.RequireFromString("100")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if _, err := budgets.Upsert(ctx, user.ID, "Idle", decimal.RequireFromString("40")); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	date, _ := time.Parse("2006-01-02", "2024-01-10")
	for _, amt := range []string{"30", "45"} {
		if _, err := expenses.Create(ctx, user.ID, ExpenseDraft{
			Title:    "meal",
			Category: "Food",
			Amount:   amountPtr(amt),
			Date:     date,
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	// Unbudgeted category: must not appear in the comparison.
	if _, err := expenses.Create(ctx, user.ID, ExpenseDraft{
		Title:    "cinema",
		Category: "Leisure",
		Amount:   amountPtr("15"),
		Date:     date,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	rows, err := budgets.Compare(ctx, user.ID)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (budgets only)", len(rows))
	}

	byCategory := map[string]int{}
	for i, r := range rows {
		byCategory[r.Category] = i
	}

	food := rows[byCategory["Food"]]
	if !food.Spent.Equal(decimal.RequireFromString("75")) {
		t.Errorf("Food spent = %s, want 75", food.Spent)
	}
	if !food.Remaining.Equal(decimal.RequireFromString("25")) {
		t.Errorf("Food remaining = %s, want 25", food.Remaining)
	}
	if !food.Percentage.Equal(decimal.RequireFromString("75")) {
		t.Errorf("Food percentage = %s, want 75", food.Percentage)
	}

	idle := rows[byCategory["Idle"]]
	if !idle.Spent.IsZero() {
		t.Errorf("Idle spent = %s, want 0", idle.Spent)
	}
	if !idle.Remaining.Equal(decimal.RequireFromString("40")) {
		t.Errorf("Idle remaining = %s, want 40", idle.Remaining)
	}
	if !idle.Percentage.IsZero() {
		t.Errorf("Idle percentage = %s, want 0", idle.Percentage)
	}
}
