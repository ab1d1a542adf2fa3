package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendwise/api/internal/auth"
	"github.com/spendwise/api/internal/models"
)

// AuthService handles registration and login, returning signed bearer
// tokens for immediate use.
type AuthService struct {
	authenticator auth.Authenticator
	tokens        *auth.TokenManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, tokens *auth.TokenManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger,
	}
}

// Register creates a new user account and returns a fresh token so the
// client is logged in immediately.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *models.User, error) {
	if username == "" {
		return "", nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if email == "" {
		return "", nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	user, err := s.authenticator.Register(ctx, username, email, password)
	if err != nil {
		s.logger.Warn("registration failed", "email", email, "error", err)
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return token, user, nil
}

// Login authenticates a user and returns a token. All mismatches surface
// as auth.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", "email", email)
		return "", nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("failed to issue token", "user_id", user.ID, "error", err)
		return "", nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, user, nil
}
