package ports

import (
	"context"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// AccountRepository defines persistence for account records.
//
// GetByEmail is the only lookup that returns the password hash; it exists for
// credential verification and uniqueness checks.
type AccountRepository interface {
	GetByID(ctx context.Context, id int) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, id int, firstName, lastName, email string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}

// AccountService implements registration, login and self-service updates.
type AccountService interface {
	// Login verifies credentials and mints a session token on success.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Register(ctx context.Context, firstName, lastName, email, password string) (*domain.Account, error)
	GetAccount(ctx context.Context, id int) (*domain.Account, error)
	// UpdateAccount persists the new profile and re-issues a session token so
	// the caller's context reflects the write within the same response.
	UpdateAccount(ctx context.Context, id int, firstName, lastName, email string) (string, *domain.Account, error)
	UpdatePassword(ctx context.Context, id int, password string) error
	// EmailInUse reports whether email belongs to an account other than excludeID.
	EmailInUse(ctx context.Context, email string, excludeID int) (bool, error)
}
