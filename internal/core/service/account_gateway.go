package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

// AccountGateway authenticates against registered accounts with bcrypt
// password hashes.
type AccountGateway struct {
	repo   ports.AccountRepository
	tokens *TokenIssuer
	cost   int
}

func NewAccountGateway(repo ports.AccountRepository, tokens *TokenIssuer) *AccountGateway {
	return &AccountGateway{repo: repo, tokens: tokens, cost: bcrypt.DefaultCost}
}

func (g *AccountGateway) Login(ctx context.Context, email, password string) (domain.Credentials, error) {
	if email == "" || password == "" {
		return domain.Credentials{}, domain.NewLoginFailure(domain.ErrMissingFields)
	}

	account, err := g.repo.FindByEmail(ctx, email)
	if err != nil {
		// Unknown users look the same as wrong passwords to the caller.
		if errors.Is(err, domain.ErrUserNotFound) {
			err = domain.ErrInvalidCredentials
		}
		return domain.Credentials{}, domain.NewLoginFailure(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return domain.Credentials{}, domain.NewLoginFailure(domain.ErrInvalidCredentials)
	}
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, domain.NewLoginFailure(err)
	}

	return g.credentials(account.Identity(), domain.NewLoginFailure)
}

func (g *AccountGateway) Signup(ctx context.Context, name, email, password string) (domain.Credentials, error) {
	if name == "" || email == "" || password == "" {
		return domain.Credentials{}, domain.NewSignupFailure(domain.ErrMissingFields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), g.cost)
	if err != nil {
		return domain.Credentials{}, domain.NewSignupFailure(err)
	}

	// Past this point the account exists, so the insert is not tied to the
	// caller's deadline and a success is final.
	if err := ctx.Err(); err != nil {
		return domain.Credentials{}, domain.NewSignupFailure(err)
	}

	now := time.Now().UTC()
	created, err := g.repo.Create(context.WithoutCancel(ctx), &domain.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleMarketer,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return domain.Credentials{}, domain.NewSignupFailure(err)
	}

	return g.credentials(created.Identity(), domain.NewSignupFailure)
}

func (g *AccountGateway) credentials(identity domain.Identity, fail func(error) *domain.AuthFailure) (domain.Credentials, error) {
	token, err := g.tokens.Issue(identity)
	if err != nil {
		return domain.Credentials{}, fail(err)
	}
	return domain.Credentials{Identity: identity, Token: token}, nil
}
