package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ADBranches/cse340/internal/core/domain"
)

type stubAccountRepo struct {
	accounts map[int]*domain.Account
}

func newStubAccountRepo(accounts ...*domain.Account) *stubAccountRepo {
	repo := &stubAccountRepo{accounts: make(map[int]*domain.Account)}
	for _, a := range accounts {
		clone := *a
		repo.accounts[a.ID] = &clone
	}
	return repo
}

func (r *stubAccountRepo) GetByID(_ context.Context, id int) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	clone.PasswordHash = ""
	return &clone, nil
}

func (r *stubAccountRepo) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := *account
	clone.ID = len(r.accounts) + 1
	r.accounts[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubAccountRepo) Update(_ context.Context, id int, firstName, lastName, email string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.FirstName, a.LastName, a.Email = firstName, lastName, email
	clone := *a
	clone.PasswordHash = ""
	return &clone, nil
}

func (r *stubAccountRepo) UpdatePassword(_ context.Context, id int, hash string) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.PasswordHash = hash
	return nil
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestAccountService_Login_Success(t *testing.T) {
	repo := newStubAccountRepo(&domain.Account{
		ID:           7,
		FirstName:    "Alice",
		Email:        "a@b.com",
		PasswordHash: hashFor(t, "correct horse battery"),
		Role:         domain.RoleClient,
	})
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAccountService(repo, tokens)

	token, account, err := svc.Login(context.Background(), "a@b.com", "correct horse battery")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if account.PasswordHash != "" {
		t.Fatalf("password hash leaked out of the service")
	}

	claims, ok := tokens.Verify(token)
	if !ok {
		t.Fatalf("issued token did not verify")
	}
	if claims.AccountID != 7 || claims.FirstName != "Alice" || claims.Role != domain.RoleClient {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	repo := newStubAccountRepo(&domain.Account{
		ID:           7,
		Email:        "a@b.com",
		PasswordHash: hashFor(t, "right"),
	})
	svc := NewAccountService(repo, NewTokenService("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "a@b.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	svc := NewAccountService(newStubAccountRepo(), NewTokenService("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "nobody@b.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
	}
}

func TestAccountService_Register(t *testing.T) {
	repo := newStubAccountRepo()
	svc := NewAccountService(repo, NewTokenService("secret", time.Hour))

	account, err := svc.Register(context.Background(), "Carol", "Jones", "c@d.com", "Str0ng&LongPassw0rd!")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if account.Role != domain.RoleClient {
		t.Fatalf("role = %q, want Client", account.Role)
	}

	stored := repo.accounts[account.ID]
	if stored.PasswordHash == "Str0ng&LongPassw0rd!" {
		t.Fatalf("password stored in the clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Str0ng&LongPassw0rd!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAccountService_UpdateAccount_ReissuesToken(t *testing.T) {
	repo := newStubAccountRepo(&domain.Account{
		ID:        3,
		FirstName: "Bob",
		LastName:  "Smith",
		Email:     "bob@b.com",
		Role:      domain.RoleEmployee,
	})
	tokens := NewTokenService("secret", time.Hour)
	svc := NewAccountService(repo, tokens)

	token, updated, err := svc.UpdateAccount(context.Background(), 3, "Robert", "Smith", "bob@b.com")
	if err != nil {
		t.Fatalf("UpdateAccount returned error: %v", err)
	}
	if updated.FirstName != "Robert" {
		t.Fatalf("FirstName = %q, want Robert", updated.FirstName)
	}

	claims, ok := tokens.Verify(token)
	if !ok {
		t.Fatalf("reissued token did not verify")
	}
	if claims.FirstName != "Robert" {
		t.Fatalf("reissued token carries stale first name %q", claims.FirstName)
	}
}

func TestAccountService_UpdateAccount_Idempotent(t *testing.T) {
	repo := newStubAccountRepo(&domain.Account{ID: 3, FirstName: "Bob", LastName: "Smith", Email: "bob@b.com", Role: domain.RoleClient})
	svc := NewAccountService(repo, NewTokenService("secret", time.Hour))

	_, first, err := svc.UpdateAccount(context.Background(), 3, "Robert", "Smith", "bob@b.com")
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	_, second, err := svc.UpdateAccount(context.Background(), 3, "Robert", "Smith", "bob@b.com")
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if *first != *second {
		t.Fatalf("repeated identical update changed the record: %+v vs %+v", first, second)
	}
}

func TestAccountService_EmailInUse(t *testing.T) {
	repo := newStubAccountRepo(&domain.Account{ID: 5, Email: "taken@b.com"})
	svc := NewAccountService(repo, NewTokenService("secret", time.Hour))
	ctx := context.Background()

	inUse, err := svc.EmailInUse(ctx, "taken@b.com", 9)
	if err != nil || !inUse {
		t.Fatalf("EmailInUse(other account) = %v, %v; want true, nil", inUse, err)
	}

	inUse, err = svc.EmailInUse(ctx, "taken@b.com", 5)
	if err != nil || inUse {
		t.Fatalf("EmailInUse(own account) = %v, %v; want false, nil", inUse, err)
	}

	inUse, err = svc.EmailInUse(ctx, "free@b.com", 0)
	if err != nil || inUse {
		t.Fatalf("EmailInUse(unused email) = %v, %v; want false, nil", inUse, err)
	}
}

func TestAccountService_UpdatePassword_Hashes(t *testing.T) {
	repo := newStubAccountRepo(&domain.Account{ID: 2, Email: "p@b.com"})
	svc := NewAccountService(repo, NewTokenService("secret", time.Hour))

	if err := svc.UpdatePassword(context.Background(), 2, "N3w&VeryL0ngPassword"); err != nil {
		t.Fatalf("UpdatePassword returned error: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.accounts[2].PasswordHash), []byte("N3w&VeryL0ngPassword")); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}
