package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/middleware"
	"github.com/spendwise/api/internal/service"
	"github.com/spendwise/api/internal/storage"
)

type expenseRequest struct {
	Title    string           `json:"title"`
	Category string           `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Date     string           `json:"date"`
}

func (req expenseRequest) toDraft() (service.ExpenseDraft, error) {
	draft := service.ExpenseDraft{
		Title:    req.Title,
		Category: req.Category,
		Amount:   req.Amount,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return draft, err
		}
		draft.Date = date
	}
	return draft, nil
}

// parseDate accepts RFC 3339 timestamps or bare "YYYY-MM-DD" dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, want YYYY-MM-DD or RFC 3339", service.ErrValidation, value)
	}
	return t.UTC(), nil
}

// handleListExpenses returns all of the caller's expenses, newest first.
// GET /api/expense
func (h *Handler) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	expenses, err := h.expenses.List(r.Context(), userID, storage.ExpenseFilter{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// handleFilterExpenses returns the caller's expenses narrowed by optional
// category, date range and sort key.
// GET /api/expense/filter?category=&startDate=&endDate=&sort=
func (h *Handler) handleFilterExpenses(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	q := r.URL.Query()

	filter := storage.ExpenseFilter{
		Category: q.Get("category"),
		Sort:     storage.SortKey(q.Get("sort")),
	}

	if v := q.Get("startDate"); v != "" {
		from, err := parseDate(v)
		if err != nil {
			writeError(w, err)
			return
		}
		filter.From = from
	}
	if v := q.Get("endDate"); v != "" {
		end, err := parseDate(v)
		if err != nil {
			writeError(w, err)
			return
		}
		// endDate is inclusive of the whole day
		filter.Until = end.AddDate(0, 0, 1)
	}

	expenses, err := h.expenses.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expenses)
}

// handleCategorySummary returns per-category totals, largest first.
// GET /api/expense/summary/category
func (h *Handler) handleCategorySummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	totals, err := h.expenses.SummaryByCategory(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, totals)
}

// handleMonthlySummary returns per-month totals, oldest first.
// GET /api/expense/summary/monthly
func (h *Handler) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	totals, err := h.expenses.SummaryByMonth(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, totals)
}

// handleCreateExpense records a new expense owned by the caller.
// POST /api/expense
func (h *Handler) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		writeError(w, err)
		return
	}

	expense, err := h.expenses.Create(r.Context(), userID, draft)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// handleUpdateExpense replaces an expense the caller owns.
// PUT /api/expense/{id}
func (h *Handler) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := chi.URLParam(r, "id")

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		writeError(w, err)
		return
	}

	expense, err := h.expenses.Update(r.Context(), id, userID, draft)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

// handleDeleteExpense removes an expense the caller owns.
// DELETE /api/expense/{id}
func (h *Handler) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.expenses.Delete(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
