package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ADBranches/cse340/internal/core/domain"
)

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(42, "Alice", domain.RoleEmployee)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	account, ok := svc.Verify(token)
	if !ok {
		t.Fatalf("Verify rejected a freshly issued token")
	}
	if account.AccountID != 42 {
		t.Fatalf("account_id = %d, want 42", account.AccountID)
	}
	if account.FirstName != "Alice" {
		t.Fatalf("first_name = %q, want Alice", account.FirstName)
	}
	if account.Role != domain.RoleEmployee {
		t.Fatalf("role = %q, want %q", account.Role, domain.RoleEmployee)
	}
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(1, "Bob", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Flip one byte in the payload section.
	raw := []byte(token)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	if _, ok := svc.Verify(string(raw)); ok {
		t.Fatalf("Verify accepted a tampered token")
	}
}

func TestTokenService_Expired(t *testing.T) {
	// Negative TTL mints a token whose expiry is already in the past.
	svc := NewTokenService("secret", -time.Minute)

	token, err := svc.Issue(1, "Bob", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, ok := svc.Verify(token); ok {
		t.Fatalf("Verify accepted an expired token")
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(1, "Bob", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, ok := verifier.Verify(token); ok {
		t.Fatalf("Verify accepted a token signed with another key")
	}
}

func TestTokenService_MissingKeyFailsClosed(t *testing.T) {
	svc := NewTokenService("", time.Hour)

	if _, err := svc.Issue(1, "Bob", domain.RoleClient); !errors.Is(err, domain.ErrSigningKeyMissing) {
		t.Fatalf("Issue error = %v, want ErrSigningKeyMissing", err)
	}

	good, err := NewTokenService("secret", time.Hour).Issue(1, "Bob", domain.RoleClient)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, ok := svc.Verify(good); ok {
		t.Fatalf("Verify accepted a token with no signing key configured")
	}
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, ok := svc.Verify(token); ok {
			t.Fatalf("Verify accepted %q", token)
		}
	}
}
