package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/spendwise/api/internal/middleware"
	"github.com/spendwise/api/internal/service"
)

type budgetRequest struct {
	Category string           `json:"category"`
	Limit    *decimal.Decimal `json:"limit"`
}

func (req budgetRequest) limitOrError() (decimal.Decimal, error) {
	if req.Limit == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: limit is required", service.ErrValidation)
	}
	return *req.Limit, nil
}

// handleUpsertBudget creates a budget for the category or updates the
// existing one's limit.
// POST /api/budget
func (h *Handler) handleUpsertBudget(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	limit, err := req.limitOrError()
	if err != nil {
		writeError(w, err)
		return
	}

	budget, err := h.budgets.Upsert(r.Context(), userID, req.Category, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// handleListBudgets returns all of the caller's budgets.
// GET /api/budget
func (h *Handler) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	budgets, err := h.budgets.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budgets)
}

// handleCompareBudgets returns budget-vs-actual rows for every budget.
// GET /api/budget/compare
func (h *Handler) handleCompareBudgets(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	rows, err := h.budgets.Compare(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rows)
}

// handleGetBudget returns one budget the caller owns.
// GET /api/budget/{id}
func (h *Handler) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := chi.URLParam(r, "id")

	budget, err := h.budgets.Get(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// handleUpdateBudget renames a budget and/or changes its limit.
// Responds 409 when the new category collides with an existing budget.
// PUT /api/budget/{id}
func (h *Handler) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := chi.URLParam(r, "id")

	var req budgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	limit, err := req.limitOrError()
	if err != nil {
		writeError(w, err)
		return
	}

	budget, err := h.budgets.Update(r.Context(), id, userID, req.Category, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, budget)
}

// handleDeleteBudget removes one budget the caller owns.
// DELETE /api/budget/{id}
func (h *Handler) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.budgets.Delete(r.Context(), id, userID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDeleteBudgetByCategory removes the caller's budget for a category.
// DELETE /api/budget/by-category/{category}
func (h *Handler) handleDeleteBudgetByCategory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	category := chi.URLParam(r, "category")

	if err := h.budgets.DeleteByCategory(r.Context(), userID, category); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
