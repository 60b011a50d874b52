package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	findErr  error
	creates  int
	// onCreate runs before an account is stored.
	onCreate func(ctx context.Context)
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAccountRepo) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	r.creates++
	if r.onCreate != nil {
		r.onCreate(ctx)
	}
	key := strings.ToLower(account.Email)
	if _, exists := r.accounts[key]; exists {
		return nil, domain.ErrUserExists
	}
	r.accounts[key] = cloneAccount(account)
	return cloneAccount(account), nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.accounts[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneAccount(a), nil
}

func newTestAccountGateway(repo *stubAccountRepo) *AccountGateway {
	g := NewAccountGateway(repo, NewTokenIssuer(testSecret))
	g.cost = bcrypt.MinCost
	return g
}

func TestAccountGateway_Signup_Success(t *testing.T) {
	repo := newStubAccountRepo()
	g := newTestAccountGateway(repo)

	creds, err := g.Signup(context.Background(), "Ann", "ann@x.com", "pass123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if creds.Identity.ID == "" || creds.Identity.Role != domain.RoleMarketer || creds.Identity.Name != "Ann" {
		t.Fatalf("unexpected identity: %+v", creds.Identity)
	}
	if creds.Token == "" {
		t.Fatalf("expected token")
	}

	stored := repo.accounts["ann@x.com"]
	if stored == nil {
		t.Fatalf("account was not stored")
	}
	if stored.PasswordHash == "pass123" {
		t.Fatalf("password stored in plain text")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAccountGateway_Signup_Duplicate(t *testing.T) {
	g := newTestAccountGateway(newStubAccountRepo())

	if _, err := g.Signup(context.Background(), "Ann", "ann@x.com", "pass123"); err != nil {
		t.Fatalf("first Signup returned error: %v", err)
	}
	_, err := g.Signup(context.Background(), "Ann", "ann@x.com", "other")
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	var failure *domain.AuthFailure
	if !errors.As(err, &failure) || failure.Op != "signup" {
		t.Fatalf("expected signup AuthFailure, got %v", err)
	}
}

func TestAccountGateway_Login_Success(t *testing.T) {
	g := newTestAccountGateway(newStubAccountRepo())

	signed, err := g.Signup(context.Background(), "Ann", "ann@x.com", "pass123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	creds, err := g.Login(context.Background(), "ann@x.com", "pass123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if creds.Identity != signed.Identity {
		t.Fatalf("login identity %+v != signup identity %+v", creds.Identity, signed.Identity)
	}
}

func TestAccountGateway_Login_InvalidPassword(t *testing.T) {
	g := newTestAccountGateway(newStubAccountRepo())
	if _, err := g.Signup(context.Background(), "Ann", "ann@x.com", "pass123"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	_, err := g.Login(context.Background(), "ann@x.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountGateway_Login_UnknownUser(t *testing.T) {
	g := newTestAccountGateway(newStubAccountRepo())

	_, err := g.Login(context.Background(), "ghost@x.com", "pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown users must not be distinguishable: %v", err)
	}
}

func TestAccountGateway_Login_RepositoryError(t *testing.T) {
	repo := newStubAccountRepo()
	repo.findErr = errors.New("connection reset")
	g := newTestAccountGateway(repo)

	_, err := g.Login(context.Background(), "ann@x.com", "pw")
	var failure *domain.AuthFailure
	if !errors.As(err, &failure) || failure.Reason != domain.ReasonLogin {
		t.Fatalf("expected login AuthFailure, got %v", err)
	}
}

func TestAccountGateway_MissingFields(t *testing.T) {
	g := newTestAccountGateway(newStubAccountRepo())

	if _, err := g.Login(context.Background(), "", "pw"); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("Login: expected ErrMissingFields, got %v", err)
	}
	if _, err := g.Signup(context.Background(), "Ann", "ann@x.com", ""); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("Signup: expected ErrMissingFields, got %v", err)
	}
}

func TestAccountGateway_Signup_CancelledBeforeCreate(t *testing.T) {
	repo := newStubAccountRepo()
	g := newTestAccountGateway(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Signup(ctx, "Ann", "ann@x.com", "pass123")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("account should not be created, got %d inserts", repo.creates)
	}
}

func TestAccountGateway_Signup_CreateOutlivesCancellation(t *testing.T) {
	repo := newStubAccountRepo()
	g := newTestAccountGateway(repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	repo.onCreate = func(createCtx context.Context) {
		cancel()
		if createCtx.Err() != nil {
			t.Errorf("insert context should not be cancelled with the request")
		}
	}

	creds, err := g.Signup(ctx, "Ann", "ann@x.com", "pass123")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if creds.Identity.Email != "ann@x.com" || repo.accounts["ann@x.com"] == nil {
		t.Fatalf("expected the created account to be returned, got %+v", creds.Identity)
	}
}
