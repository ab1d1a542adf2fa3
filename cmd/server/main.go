package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spendwise/api/internal/api"
	"github.com/spendwise/api/internal/auth"
	"github.com/spendwise/api/internal/config"
	"github.com/spendwise/api/internal/service"
	"github.com/spendwise/api/internal/storage/sqlite"
	"github.com/spendwise/api/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)
	logger := slog.Default()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.DBPath)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	handler := api.NewHandler(
		service.NewAuthService(authenticator, tokens, logger),
		service.NewExpenseService(store, logger),
		service.NewBudgetService(store, logger),
		store,
	)
	router := api.NewRouter(handler, tokens, cfg.AllowedOrigins)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
