package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ADBranches/cse340/internal/core/domain"
	"github.com/ADBranches/cse340/internal/core/ports"
)

// AccountService implements registration, login and self-service updates.
type AccountService struct {
	repo   ports.AccountRepository
	tokens ports.TokenService
}

func NewAccountService(repo ports.AccountRepository, tokens ports.TokenService) *AccountService {
	return &AccountService{repo: repo, tokens: tokens}
}

// Login verifies the credentials and mints a session token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	account, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.FirstName, account.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue session token: %w", err)
	}

	account.PasswordHash = ""
	return token, account, nil
}

// Register creates a Client account with a bcrypt-hashed password.
func (s *AccountService) Register(ctx context.Context, firstName, lastName, email, password string) (*domain.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &domain.Account{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	})
	if err != nil {
		return nil, err
	}

	created.PasswordHash = ""
	return created, nil
}

func (s *AccountService) GetAccount(ctx context.Context, id int) (*domain.Account, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateAccount persists the new profile and re-issues the session token so
// the current response already carries the updated first name.
func (s *AccountService) UpdateAccount(ctx context.Context, id int, firstName, lastName, email string) (string, *domain.Account, error) {
	updated, err := s.repo.Update(ctx, id, firstName, lastName, email)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(updated.ID, updated.FirstName, updated.Role)
	if err != nil {
		return "", nil, fmt.Errorf("reissue session token: %w", err)
	}

	return token, updated, nil
}

func (s *AccountService) UpdatePassword(ctx context.Context, id int, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

// EmailInUse reports whether email belongs to an account other than excludeID.
// Pass excludeID 0 for registration, where any match blocks the email.
func (s *AccountService) EmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != excludeID, nil
}
