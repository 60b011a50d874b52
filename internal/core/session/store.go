// Package session holds the single source of truth for who is logged in
// within one storage scope, backed by a ports.Storage medium.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/domain"
	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

// Persisted Record keys. Both are written and removed together.
const (
	IdentityKey = "prismatech_user"
	TokenKey    = "prismatech_token"
)

var errIncompleteRecord = errors.New("persisted record incomplete")

// Store keeps the current identity for a scope and mirrors it to storage.
type Store struct {
	storage ports.Storage
	scope   string
	log     zerolog.Logger

	// writeMu serializes Commit and Clear so storage and memory agree on
	// which write landed last.
	writeMu sync.Mutex

	mu         sync.RWMutex
	identity   *domain.Identity
	rehydrated bool
	inflight   int
	generation uint64
}

// NewStore returns a Store for scope. The store reports Loading until
// Rehydrate has run.
func NewStore(storage ports.Storage, scope string, log zerolog.Logger) *Store {
	return &Store{
		storage: storage,
		scope:   scope,
		log:     log.With().Str("scope", scope).Logger(),
	}
}

// Scope returns the storage scope this store is bound to.
func (s *Store) Scope() string { return s.scope }

// Snapshot returns the identity and loading flag as one consistent view.
func (s *Store) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var id *domain.Identity
	if s.identity != nil {
		cp := *s.identity
		id = &cp
	}
	return domain.Session{Identity: id, Loading: !s.rehydrated || s.inflight > 0}
}

// Busy marks a credential operation as in flight until the returned release
// func is called. Release is safe to call more than once.
func (s *Store) Busy() (release func()) {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.inflight--
			s.mu.Unlock()
		})
	}
}

// Rehydrate restores the identity from the Persisted Record. Any problem with
// the record is logged and treated as "no session". It always clears the
// rehydration part of the loading flag.
func (s *Store) Rehydrate(ctx context.Context) {
	s.mu.RLock()
	gen := s.generation
	s.mu.RUnlock()

	restored, err := s.readRecord(ctx)
	if err != nil {
		s.log.Debug().Err(&domain.RehydrationError{Scope: s.scope, Err: err}).Msg("no session restored")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// A commit or clear that landed while we were reading wins.
	if s.generation == gen {
		s.identity = restored
	}
	s.rehydrated = true
}

// Commit persists identity and token as one unit and makes identity current.
// Storage failures degrade to an in-memory session.
func (s *Store) Commit(ctx context.Context, identity domain.Identity, token string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	raw, err := json.Marshal(identity)
	if err == nil {
		err = s.storage.SetItems(ctx, s.scope, map[string]string{
			IdentityKey: string(raw),
			TokenKey:    token,
		})
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("session not persisted, keeping it in memory only")
		// Never leave half a record behind.
		if rmErr := s.storage.RemoveItems(ctx, s.scope, IdentityKey, TokenKey); rmErr != nil {
			s.log.Debug().Err(rmErr).Msg("cleanup after failed commit")
		}
	}

	cp := identity
	s.mu.Lock()
	s.identity = &cp
	s.generation++
	s.mu.Unlock()
}

// Clear removes the Persisted Record and forgets the current identity.
func (s *Store) Clear(ctx context.Context) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.storage.RemoveItems(ctx, s.scope, IdentityKey, TokenKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to remove persisted session")
	}

	s.mu.Lock()
	s.identity = nil
	s.generation++
	s.mu.Unlock()
}

func (s *Store) readRecord(ctx context.Context) (*domain.Identity, error) {
	items, err := s.storage.GetItems(ctx, s.scope, IdentityKey, TokenKey)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	rawIdentity, okIdentity := items[IdentityKey]
	token, okToken := items[TokenKey]
	if !okIdentity || !okToken || rawIdentity == "" || token == "" {
		return nil, errIncompleteRecord
	}

	var id domain.Identity
	if err := json.Unmarshal([]byte(rawIdentity), &id); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	if !id.Valid() {
		return nil, fmt.Errorf("decode identity: invalid identity %q", id.ID)
	}
	return &id, nil
}
