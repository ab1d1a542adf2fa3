// Package api exposes the expense tracker over REST. It is the single
// translation point between HTTP and the service layer: handlers decode
// JSON, pull the authenticated user ID from the request context, call a
// service, and map domain errors to statuses.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spendwise/api/internal/auth"
	"github.com/spendwise/api/internal/middleware"
	"github.com/spendwise/api/internal/service"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	auth     *service.AuthService
	expenses *service.ExpenseService
	budgets  *service.BudgetService
	users    auth.UserStorage
}

// NewHandler creates the API handler.
func NewHandler(authSvc *service.AuthService, expenses *service.ExpenseService, budgets *service.BudgetService, users auth.UserStorage) *Handler {
	return &Handler{
		auth:     authSvc,
		expenses: expenses,
		budgets:  budgets,
		users:    users,
	}
}

// NewRouter wires the full route tree. Everything under /api requires a
// valid bearer token; /auth/register and /auth/login do not.
func NewRouter(h *Handler, tokens *auth.TokenManager, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Metrics)
	r.Use(middleware.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
		r.With(middleware.RequireAuth(tokens)).Get("/me", h.handleMe)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens))

		r.Route("/expense", func(r chi.Router) {
			r.Get("/", h.handleListExpenses)
			r.Get("/filter", h.handleFilterExpenses)
			r.Get("/summary/category", h.handleCategorySummary)
			r.Get("/summary/monthly", h.handleMonthlySummary)
			r.Post("/", h.handleCreateExpense)
			r.Put("/{id}", h.handleUpdateExpense)
			r.Delete("/{id}", h.handleDeleteExpense)
		})

		r.Route("/budget", func(r chi.Router) {
			r.Get("/", h.handleListBudgets)
			r.Get("/compare", h.handleCompareBudgets)
			r.Get("/{id}", h.handleGetBudget)
			r.Post("/", h.handleUpsertBudget)
			r.Put("/{id}", h.handleUpdateBudget)
			r.Delete("/{id}", h.handleDeleteBudget)
			r.Delete("/by-category/{category}", h.handleDeleteBudgetByCategory)
		})
	})

	return r
}
