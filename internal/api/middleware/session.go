package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/ADBranches/cse340/internal/core/domain"
	"github.com/ADBranches/cse340/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "session"

const accountKey = "session_account"

// Session reads the session cookie, verifies the token, and attaches the
// account projection to the request context. It runs first in the pipeline
// and never aborts: a missing cookie, missing signing key, or invalid token
// all leave the request anonymous.
//
// The claims are trusted as asserted; the account record is not re-fetched
// per request, so role or name changes only take effect once the token is
// refreshed (next login, or the forced re-issue after a self-update).
func Session(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				if account, ok := tokens.Verify(cookie.Value); ok {
					c.Set(accountKey, account)
				}
			}
			return next(c)
		}
	}
}

// Account returns the session account attached by Session, if any.
func Account(c echo.Context) (*domain.SessionAccount, bool) {
	account, ok := c.Get(accountKey).(*domain.SessionAccount)
	return account, ok && account != nil
}

// SetAccount replaces the request's session account. The only legitimate
// caller is a handler that just mutated the account's own record and must
// render the new name within the same response.
func SetAccount(c echo.Context, account *domain.SessionAccount) {
	c.Set(accountKey, account)
}
