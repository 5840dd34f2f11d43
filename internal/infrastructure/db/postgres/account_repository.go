package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ADBranches/cse340/internal/core/domain"
)

// AccountRepository implements ports.AccountRepository on PostgreSQL.
type AccountRepository struct {
	db DB
}

func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
		SELECT account_id, account_firstname, account_lastname, account_email, account_type
		FROM public.account
		WHERE account_id = $1
	`

	var account domain.Account
	err := r.db.QueryRow(ctx, query, id).Scan(
		&account.ID, &account.FirstName, &account.LastName, &account.Email, &account.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}
	return &account, nil
}

// GetByEmail includes the password hash so credential checks can compare it.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT account_id, account_firstname, account_lastname, account_email, account_type, account_password
		FROM public.account
		WHERE account_email = $1
	`

	var account domain.Account
	err := r.db.QueryRow(ctx, query, email).Scan(
		&account.ID, &account.FirstName, &account.LastName, &account.Email, &account.Role, &account.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account by email: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO public.account (account_firstname, account_lastname, account_email, account_password, account_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING account_id, account_firstname, account_lastname, account_email, account_type
	`

	var created domain.Account
	err := r.db.QueryRow(ctx, query,
		account.FirstName, account.LastName, account.Email, account.PasswordHash, account.Role,
	).Scan(&created.ID, &created.FirstName, &created.LastName, &created.Email, &created.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return &created, nil
}

func (r *AccountRepository) Update(ctx context.Context, id int, firstName, lastName, email string) (*domain.Account, error) {
	query := `
		UPDATE public.account
		SET account_firstname = $1, account_lastname = $2, account_email = $3
		WHERE account_id = $4
		RETURNING account_id, account_firstname, account_lastname, account_email, account_type
	`

	var updated domain.Account
	err := r.db.QueryRow(ctx, query, firstName, lastName, email, id).Scan(
		&updated.ID, &updated.FirstName, &updated.LastName, &updated.Email, &updated.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	return &updated, nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `
		UPDATE public.account
		SET account_password = $1
		WHERE account_id = $2
	`

	tag, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
