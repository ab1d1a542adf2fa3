package api

import (
	"net/http"

	"github.com/spendwise/api/internal/auth"
	"github.com/spendwise/api/internal/middleware"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// handleRegister creates an account and returns a token for immediate login.
// POST /auth/register
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, _, err := h.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleLogin verifies credentials and returns a token.
// POST /auth/login
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	token, _, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

// handleMe returns the authenticated user's profile.
// GET /auth/me
func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		// Token is valid but the account is gone.
		writeError(w, auth.ErrInvalidToken)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
