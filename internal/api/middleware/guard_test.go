package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ADBranches/cse340/internal/api/flash"
	"github.com/ADBranches/cse340/internal/core/domain"
)

type memFlashStore struct {
	messages map[string][]string
}

func newMemFlashStore() *memFlashStore {
	return &memFlashStore{messages: make(map[string][]string)}
}

func (s *memFlashStore) Add(_ context.Context, key, message string) error {
	s.messages[key] = append(s.messages[key], message)
	return nil
}

func (s *memFlashStore) Pop(_ context.Context, key string) ([]string, error) {
	messages := s.messages[key]
	delete(s.messages, key)
	return messages, nil
}

func (s *memFlashStore) all() []string {
	var out []string
	for _, msgs := range s.messages {
		out = append(out, msgs...)
	}
	return out
}

func guardContext(account *domain.SessionAccount) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/inv", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if account != nil {
		SetAccount(c, account)
	}
	return c, rec
}

func TestRequireLogin_Anonymous(t *testing.T) {
	store := newMemFlashStore()
	notices := flash.NewManager(store, false, zerolog.Nop())

	c, rec := guardContext(nil)
	handler := RequireLogin(notices)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/account/login" {
		t.Fatalf("redirect target = %q, want /account/login", loc)
	}
	if msgs := store.all(); len(msgs) != 1 || msgs[0] != NoticeLoginRequired {
		t.Fatalf("notices = %v, want [%q]", msgs, NoticeLoginRequired)
	}
}

func TestRequireLogin_Authenticated(t *testing.T) {
	notices := flash.NewManager(newMemFlashStore(), false, zerolog.Nop())

	c, rec := guardContext(&domain.SessionAccount{AccountID: 1, FirstName: "Cal", Role: domain.RoleClient})
	called := false
	handler := RequireLogin(notices)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("authenticated request was not passed through")
	}
}

func TestRequireStaff_Roles(t *testing.T) {
	tests := []struct {
		name       string
		account    *domain.SessionAccount
		wantPass   bool
		wantNotice string
	}{
		{name: "anonymous", account: nil, wantNotice: NoticeLoginRequired},
		{name: "client", account: &domain.SessionAccount{AccountID: 1, FirstName: "Cal", Role: domain.RoleClient}, wantNotice: NoticeNotAuthorized},
		{name: "employee", account: &domain.SessionAccount{AccountID: 2, FirstName: "Em", Role: domain.RoleEmployee}, wantPass: true},
		{name: "admin", account: &domain.SessionAccount{AccountID: 3, FirstName: "Ada", Role: domain.RoleAdmin}, wantPass: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemFlashStore()
			notices := flash.NewManager(store, false, zerolog.Nop())

			c, rec := guardContext(tt.account)
			called := false
			handler := RequireStaff(notices)(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			if err := handler(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}

			if tt.wantPass {
				if !called || rec.Code != http.StatusOK {
					t.Fatalf("%s should pass the gate", tt.name)
				}
				return
			}

			if called {
				t.Fatalf("%s reached the handler", tt.name)
			}
			if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/account/login" {
				t.Fatalf("%s: expected redirect to login, got %d %q", tt.name, rec.Code, rec.Header().Get(echo.HeaderLocation))
			}
			if msgs := store.all(); len(msgs) != 1 || msgs[0] != tt.wantNotice {
				t.Fatalf("%s notices = %v, want [%q]", tt.name, msgs, tt.wantNotice)
			}
		})
	}
}
