// Package flash carries one-shot user notices across a redirect. Messages
// live in a server-side store keyed by a per-visitor cookie and are consumed
// (read and cleared) by the next render.
package flash

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ADBranches/cse340/internal/core/ports"
)

const (
	cookieName = "flash_id"
	ctxKey     = "flash_id"
)

// Manager pairs the notice store with the visitor cookie lifecycle. Flash
// failures never fail the request; a lost notice is logged and dropped.
type Manager struct {
	store  ports.FlashStore
	secure bool
	log    zerolog.Logger
}

func NewManager(store ports.FlashStore, secure bool, log zerolog.Logger) *Manager {
	return &Manager{store: store, secure: secure, log: log}
}

// Notify queues a notice for this visitor's next rendered page.
func (m *Manager) Notify(c echo.Context, message string) {
	if err := m.store.Add(c.Request().Context(), m.visitorID(c), message); err != nil {
		m.log.Warn().Err(err).Msg("flash notice dropped")
	}
}

// Consume returns the visitor's pending notices and clears them. It also
// covers the notify-then-render path within a single request, where the
// visitor cookie exists only on the outgoing response.
func (m *Manager) Consume(c echo.Context) []string {
	id, _ := c.Get(ctxKey).(string)
	if id == "" {
		cookie, err := c.Cookie(cookieName)
		if err != nil {
			return nil
		}
		id = cookie.Value
	}

	messages, err := m.store.Pop(c.Request().Context(), id)
	if err != nil {
		m.log.Warn().Err(err).Msg("flash notices unavailable")
		return nil
	}
	return messages
}

// visitorID returns the visitor's flash key, minting the cookie on first use.
func (m *Manager) visitorID(c echo.Context) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		c.Set(ctxKey, cookie.Value)
		return cookie.Value
	}

	id := uuid.NewString()
	c.Set(ctxKey, id)
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
	})
	return id
}
