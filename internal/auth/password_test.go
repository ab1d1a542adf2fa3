package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/spendwise/api/internal/models"
)

// memoryUserStore is an in-memory UserStorage for tests.
type memoryUserStore struct {
	byEmail map[string]*models.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{byEmail: make(map[string]*models.User)}
}

func (m *memoryUserStore) CreateUser(_ context.Context, user *models.User) error {
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.byEmail[email], nil
}

func (m *memoryUserStore) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUserStore())

	user, err := a.Register(ctx, "alice", "alice@example.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.ID == "" {
		t.Error("expected generated user ID")
	}
	if user.PasswordHash == "correct horse battery" {
		t.Error("password stored in plain text")
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := a.Register(ctx, "alice2", "alice@example.com", "another password")
		if !errors.Is(err, ErrEmailExists) {
			t.Errorf("got %v, want ErrEmailExists", err)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := a.Register(ctx, "bob", "bob@example.com", "short")
		if !errors.Is(err, ErrWeakPassword) {
			t.Errorf("got %v, want ErrWeakPassword", err)
		}
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	a := NewPasswordAuthenticator(newMemoryUserStore())

	if _, err := a.Register(ctx, "alice", "alice@example.com", "correct horse battery"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("valid credentials", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "alice@example.com", "correct horse battery")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("email = %q", user.Email)
		}
	})

	// Unknown email and wrong password must be indistinguishable.
	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "alice@example.com", "wrong password")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "nobody@example.com", "correct horse battery")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})
}
