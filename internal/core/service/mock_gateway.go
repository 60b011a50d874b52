package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
)

const defaultLatency = time.Second

// mockProfiles are the fixed identities handed out per role tier.
var mockProfiles = map[domain.Role]struct{ id, name string }{
	domain.RoleAdmin:    {"1", "Admin User"},
	domain.RoleAnalyst:  {"2", "Analyst User"},
	domain.RoleMarketer: {"3", "Marketing User"},
}

// MockGateway simulates a remote auth backend. It accepts any password and
// derives the role from the email address. It is not authentication.
type MockGateway struct {
	latency time.Duration
	tokens  *TokenIssuer
	newID   func() string
}

// NewMockGateway returns a gateway that waits latency before resolving. A
// negative latency uses the default of one second.
func NewMockGateway(latency time.Duration, tokens *TokenIssuer) *MockGateway {
	if latency < 0 {
		latency = defaultLatency
	}
	return &MockGateway{latency: latency, tokens: tokens, newID: uuid.NewString}
}

// DeriveRole maps an email to a role: "admin" beats "analyst", anything else
// is a marketer.
func DeriveRole(email string) domain.Role {
	switch {
	case strings.Contains(email, "admin"):
		return domain.RoleAdmin
	case strings.Contains(email, "analyst"):
		return domain.RoleAnalyst
	default:
		return domain.RoleMarketer
	}
}

func (g *MockGateway) Login(ctx context.Context, email, password string) (domain.Credentials, error) {
	if email == "" || password == "" {
		return domain.Credentials{}, domain.NewLoginFailure(domain.ErrMissingFields)
	}
	if err := g.wait(ctx); err != nil {
		return domain.Credentials{}, domain.NewLoginFailure(err)
	}

	role := DeriveRole(email)
	profile := mockProfiles[role]
	identity := domain.Identity{ID: profile.id, Name: profile.name, Email: email, Role: role}

	token, err := g.tokens.Issue(identity)
	if err != nil {
		return domain.Credentials{}, domain.NewLoginFailure(err)
	}
	return domain.Credentials{Identity: identity, Token: token}, nil
}

func (g *MockGateway) Signup(ctx context.Context, name, email, password string) (domain.Credentials, error) {
	if name == "" || email == "" || password == "" {
		return domain.Credentials{}, domain.NewSignupFailure(domain.ErrMissingFields)
	}
	if err := g.wait(ctx); err != nil {
		return domain.Credentials{}, domain.NewSignupFailure(err)
	}

	identity := domain.Identity{ID: g.newID(), Name: name, Email: email, Role: domain.RoleMarketer}
	token, err := g.tokens.Issue(identity)
	if err != nil {
		return domain.Credentials{}, domain.NewSignupFailure(err)
	}
	return domain.Credentials{Identity: identity, Token: token}, nil
}

// wait models network latency. It returns ctx.Err() if ctx ends first.
func (g *MockGateway) wait(ctx context.Context) error {
	if g.latency == 0 {
		return ctx.Err()
	}
	t := time.NewTimer(g.latency)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
