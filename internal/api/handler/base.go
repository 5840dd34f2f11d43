package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ADBranches/cse340/internal/api/flash"
	"github.com/ADBranches/cse340/internal/api/middleware"
)

const sessionMaxAge = 3600 // one hour, matching the token TTL

// Base carries the pieces every page handler needs: the flash-notice
// manager and the deployment's secure-cookie flag.
type Base struct {
	Notices *flash.Manager
	Secure  bool
}

// Render executes a page template with the common view context attached:
// the current session account (or nil) and any pending one-shot notices.
func (b *Base) Render(c echo.Context, code int, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if account, ok := middleware.Account(c); ok {
		data["Account"] = account
	}
	data["Notices"] = b.Notices.Consume(c)
	return c.Render(code, name, data)
}

// RedirectWithNotice queues a one-shot notice and redirects.
func (b *Base) RedirectWithNotice(c echo.Context, message, location string) error {
	b.Notices.Notify(c, message)
	return c.Redirect(http.StatusSeeOther, location)
}

// SetSessionCookie attaches a fresh session token to the response.
func (b *Base) SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   b.Secure,
	})
}

// ClearSessionCookie removes the session cookie, not just expires it.
func (b *Base) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   b.Secure,
	})
}
