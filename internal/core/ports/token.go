package ports

import "github.com/ADBranches/cse340/internal/core/domain"

// TokenService issues and verifies signed session tokens.
//
// Verify never returns an error: a missing signing key, a malformed or
// tampered token and an expired token are all reported as not-ok, exactly
// like an absent token. Callers must not distinguish between these cases.
type TokenService interface {
	Issue(accountID int, firstName, role string) (string, error)
	Verify(token string) (*domain.SessionAccount, bool)
}
