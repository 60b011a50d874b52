// Package authctx bridges one client's session store and the credential
// gateway to the rest of the application.
package authctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
	"github.com/prismatech/marketing-dashboard/internal/core/session"
)

const rehydrateTimeout = 5 * time.Second

// Context is the auth state holder for one storage scope.
type Context struct {
	store    *session.Store
	gateway  ports.CredentialGateway
	notifier ports.Notifier
	log      zerolog.Logger

	once  sync.Once
	ready chan struct{}
}

// New builds a Context. Call Activate before serving consumers.
func New(store *session.Store, gateway ports.CredentialGateway, notifier ports.Notifier, log zerolog.Logger) *Context {
	return &Context{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
		log:      log.With().Str("scope", store.Scope()).Logger(),
		ready:    make(chan struct{}),
	}
}

// Activate starts rehydration of the persisted session. Only the first call
// has any effect; rehydration runs in its own goroutine and Ready is closed
// once it has finished.
func (c *Context) Activate(ctx context.Context) {
	c.once.Do(func() {
		go func() {
			defer close(c.ready)

			rctx, cancel := context.WithTimeout(ctx, rehydrateTimeout)
			defer cancel()
			c.store.Rehydrate(rctx)
		}()
	})
}

// Ready is closed after rehydration completes.
func (c *Context) Ready() <-chan struct{} { return c.ready }

// Scope returns the storage scope of this context.
func (c *Context) Scope() string { return c.store.Scope() }

// State returns the current session. Identity and loading flag are read
// together.
func (c *Context) State() domain.Session { return c.store.Snapshot() }

// Login authenticates through the gateway and commits the resulting identity.
// A failure, including ctx ending before the gateway answers, leaves the
// session untouched and is returned as *domain.AuthFailure.
func (c *Context) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	release := c.store.Busy()
	defer release()

	creds, err := c.gateway.Login(ctx, email, password)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		failure := asFailure(err, domain.NewLoginFailure)
		c.log.Info().Err(failure.Err).Msg("login failed")
		c.notify(domain.Notice{Title: "Login failed", Message: failure.Reason, Severity: domain.SeverityDestructive})
		return nil, failure
	}

	c.store.Commit(context.WithoutCancel(ctx), creds.Identity, creds.Token)
	c.log.Info().Str("user_id", creds.Identity.ID).Str("role", string(creds.Identity.Role)).Msg("login succeeded")
	c.notify(domain.Notice{
		Title:   "Login successful",
		Message: fmt.Sprintf("Welcome back, %s!", creds.Identity.Name),
	})

	id := creds.Identity
	return &id, nil
}

// Signup registers a new identity and commits it. Failures leave the session
// untouched and are returned as *domain.AuthFailure.
func (c *Context) Signup(ctx context.Context, name, email, password string) (*domain.Identity, error) {
	release := c.store.Busy()
	defer release()

	// A successful signup has created the account, so it commits even when
	// ctx ended meanwhile.
	creds, err := c.gateway.Signup(ctx, name, email, password)
	if err != nil {
		failure := asFailure(err, domain.NewSignupFailure)
		c.log.Info().Err(failure.Err).Msg("signup failed")
		c.notify(domain.Notice{Title: "Signup failed", Message: failure.Reason, Severity: domain.SeverityDestructive})
		return nil, failure
	}

	c.store.Commit(context.WithoutCancel(ctx), creds.Identity, creds.Token)
	c.log.Info().Str("user_id", creds.Identity.ID).Msg("account created")
	c.notify(domain.Notice{
		Title:   "Account created",
		Message: "Your account has been successfully created!",
	})

	id := creds.Identity
	return &id, nil
}

// Logout clears the session. It always succeeds and is idempotent.
func (c *Context) Logout(ctx context.Context) {
	c.store.Clear(context.WithoutCancel(ctx))
	c.log.Info().Msg("logged out")
	c.notify(domain.Notice{
		Title:   "Logged out",
		Message: "You have been successfully logged out.",
	})
}

func (c *Context) notify(n domain.Notice) {
	if c.notifier == nil {
		return
	}
	n.Scope = c.store.Scope()
	if n.Severity == "" {
		n.Severity = domain.SeverityDefault
	}
	n.CreatedAt = time.Now().UTC()
	c.notifier.Notify(n)
}

// asFailure keeps gateway failures as they are and wraps anything else.
func asFailure(err error, wrap func(error) *domain.AuthFailure) *domain.AuthFailure {
	var failure *domain.AuthFailure
	if errors.As(err, &failure) {
		return failure
	}
	return wrap(err)
}
