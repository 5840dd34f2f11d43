package domain

import "time"

// Account roles, from least to most privileged.
const (
	RoleClient   = "Client"
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

// Account is a dealership account record. PasswordHash is populated only on
// the login lookup path and must never reach a template.
type Account struct {
	ID           int       `json:"account_id"`
	FirstName    string    `json:"account_firstname"`
	LastName     string    `json:"account_lastname"`
	Email        string    `json:"account_email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"account_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionAccount is the projection of an account carried by the session
// token and attached to each request. It is computed once per request at
// pipeline entry and treated as read-only afterwards.
type SessionAccount struct {
	AccountID int
	FirstName string
	Role      string
}

// IsStaff reports whether the account may reach management views.
func (a SessionAccount) IsStaff() bool {
	return a.Role == RoleEmployee || a.Role == RoleAdmin
}
