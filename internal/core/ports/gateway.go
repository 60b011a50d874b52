package ports

import (
	"context"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

// CredentialGateway turns user-supplied credentials into an identity and token.
// Implementations return *domain.AuthFailure on any fault and never touch the
// session store.
type CredentialGateway interface {
	Login(ctx context.Context, email, password string) (domain.Credentials, error)
	Signup(ctx context.Context, name, email, password string) (domain.Credentials, error)
}

// AccountRepository persists registered accounts for the accounts gateway.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
