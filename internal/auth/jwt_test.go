package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/spendwise/api/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:    "user-123",
		Email: "alice@example.com",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret-key-0123456789", "spendwise", "spendwise-web", time.Hour)

	token, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("subject = %q, want user-123", claims.Subject)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", claims.Email)
	}
	if claims.Issuer != "spendwise" {
		t.Errorf("issuer = %q, want spendwise", claims.Issuer)
	}
}

func TestTokenRejections(t *testing.T) {
	issuerA := NewTokenManager("test-secret-key-0123456789", "spendwise", "spendwise-web", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewTokenManager("test-secret-key-0123456789", "spendwise", "spendwise-web", -time.Minute)
				token, err := expired.Issue(testUser())
				if err != nil {
					t.Fatalf("Issue failed: %v", err)
				}
				return token
			},
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) string {
				other := NewTokenManager("another-secret-key-98765432", "spendwise", "spendwise-web", time.Hour)
				token, err := other.Issue(testUser())
				if err != nil {
					t.Fatalf("Issue failed: %v", err)
				}
				return token
			},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				other := NewTokenManager("test-secret-key-0123456789", "someone-else", "spendwise-web", time.Hour)
				token, err := other.Issue(testUser())
				if err != nil {
					t.Fatalf("Issue failed: %v", err)
				}
				return token
			},
		},
		{
			name: "wrong audience",
			token: func(t *testing.T) string {
				other := NewTokenManager("test-secret-key-0123456789", "spendwise", "other-app", time.Hour)
				token, err := other.Issue(testUser())
				if err != nil {
					t.Fatalf("Issue failed: %v", err)
				}
				return token
			},
		},
		{
			name: "garbage token",
			token: func(t *testing.T) string {
				return "not.a.jwt"
			},
		},
		{
			name: "tampered payload",
			token: func(t *testing.T) string {
				token, err := issuerA.Issue(testUser())
				if err != nil {
					t.Fatalf("Issue failed: %v", err)
				}
				parts := strings.Split(token, ".")
				parts[1] = "eyJmYWtlIjoicGF5bG9hZCJ9"
				return strings.Join(parts, ".")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuerA.Validate(tt.token(t)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
