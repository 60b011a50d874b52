package authctx

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/ports"
	"github.com/prismatech/marketing-dashboard/internal/core/session"
)

const defaultIdleTTL = 30 * time.Minute

// Options wires the collaborators every Context in a Registry shares.
type Options struct {
	Storage  ports.Storage
	Gateway  ports.CredentialGateway
	Notifier ports.Notifier
	Logger   zerolog.Logger
	// IdleTTL is how long an unused Context stays in memory. Evicted scopes
	// rehydrate from storage on their next request.
	IdleTTL time.Duration
}

// Registry hands out one activated Context per storage scope.
type Registry struct {
	base  context.Context
	opts  Options
	mu    sync.Mutex
	cache *cache.Cache
}

// NewRegistry returns a Registry. base bounds background rehydration and
// should live as long as the server.
func NewRegistry(base context.Context, opts Options) *Registry {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = defaultIdleTTL
	}
	return &Registry{
		base:  base,
		opts:  opts,
		cache: cache.New(opts.IdleTTL, opts.IdleTTL/2),
	}
}

// Get returns the Context for scope, creating and activating it on first use.
// Every call pushes the idle deadline back.
func (r *Registry) Get(scope string) *Context {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.cache.Get(scope); ok {
		c := v.(*Context)
		r.cache.SetDefault(scope, c)
		return c
	}

	log := r.opts.Logger
	c := New(session.NewStore(r.opts.Storage, scope, log), r.opts.Gateway, r.opts.Notifier, log)
	r.cache.SetDefault(scope, c)
	c.Activate(r.base)
	return c
}

// Len returns the number of contexts held in memory, including expired ones
// not yet swept.
func (r *Registry) Len() int {
	return r.cache.ItemCount()
}
