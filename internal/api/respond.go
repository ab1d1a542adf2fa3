package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spendwise/api/internal/auth"
	"github.com/spendwise/api/internal/service"
	"github.com/spendwise/api/internal/storage"
)

// errorResponse is the JSON body for every failure.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// writeError translates a domain error into an HTTP status per the error
// taxonomy: validation 400, bad credentials 401, not-found-or-not-owned
// 404, category conflict 409, everything else 500. This is the single
// recovery point; no failure is fatal to the process.
func writeError(w http.ResponseWriter, err error) {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, auth.ErrEmailExists),
		errors.Is(err, auth.ErrWeakPassword):
		status = http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		status = http.StatusUnauthorized
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrCategoryConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
		slog.Error("unhandled error", "error", err)
	}

	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON parses the request body into dst, rejecting malformed JSON.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", service.ErrValidation)
	}
	return nil
}
