package auth

import (
	"context"

	"github.com/spendwise/api/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password,
// passkeys, OAuth, etc.) without changing the API layer.
type Authenticator interface {
	// Register creates a new user account with the given credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, username, email, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user
	// if successful. Failures are reported as ErrInvalidCredentials
	// without distinguishing unknown email from wrong password.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements (length, format, etc.).
	ValidateCredential(credential string) error
}
