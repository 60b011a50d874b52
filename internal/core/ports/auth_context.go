package ports

import (
	"context"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

// AuthContext exposes one client's session and credential operations to the
// transport layer.
type AuthContext interface {
	Scope() string
	State() domain.Session
	Ready() <-chan struct{}
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Signup(ctx context.Context, name, email, password string) (*domain.Identity, error)
	Logout(ctx context.Context)
}

// Notifier delivers notices to the toast surface. Delivery is fire-and-forget.
type Notifier interface {
	Notify(notice domain.Notice)
}
