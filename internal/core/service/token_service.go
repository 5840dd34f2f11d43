package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// DefaultTokenTTL is the fixed validity window for session tokens.
const DefaultTokenTTL = time.Hour

// TokenService mints and verifies HS256 session tokens carrying the account
// projection {account_id, first_name, role}.
//
// An empty signing key fails closed: Issue returns an error and Verify
// reports every token as invalid. There is no server-side revocation; a
// stolen token stays valid until natural expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token asserting the three claims plus issuance and
// expiry timestamps.
func (s *TokenService) Issue(accountID int, firstName, role string) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrSigningKeyMissing
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": accountID,
		"first_name": firstName,
		"role":       role,
		"iat":        now.Unix(),
		"exp":        now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry. Any failure yields (nil, false);
// callers treat that identically to "no token present".
func (s *TokenService) Verify(token string) (*domain.SessionAccount, bool) {
	if len(s.secret) == 0 || token == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}

	id, ok := claims["account_id"].(float64)
	if !ok {
		return nil, false
	}
	firstName, _ := claims["first_name"].(string)
	role, _ := claims["role"].(string)
	if firstName == "" || role == "" {
		return nil, false
	}

	return &domain.SessionAccount{
		AccountID: int(id),
		FirstName: firstName,
		Role:      role,
	}, true
}
