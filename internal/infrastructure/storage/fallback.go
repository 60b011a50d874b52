package storage

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/prismatech/marketing-dashboard/internal/core/ports"
)

// Fallback serves every operation from primary and, when primary fails,
// from an in-memory secondary. Sessions written during an outage live only
// as long as the process.
type Fallback struct {
	primary   ports.Storage
	secondary *Memory
	log       zerolog.Logger
}

// NewFallback wraps primary with an in-memory fallback.
func NewFallback(primary ports.Storage, log zerolog.Logger) *Fallback {
	return &Fallback{primary: primary, secondary: NewMemory(), log: log}
}

// GetItems prefers the in-memory copy. It only holds records written during
// an outage, and those are newer than whatever the primary still has.
func (f *Fallback) GetItems(ctx context.Context, scope string, keys ...string) (map[string]string, error) {
	if items, _ := f.secondary.GetItems(ctx, scope, keys...); len(items) > 0 {
		return items, nil
	}

	items, err := f.primary.GetItems(ctx, scope, keys...)
	if err != nil {
		f.log.Warn().Err(err).Str("scope", scope).Msg("storage read failed, using memory")
		return map[string]string{}, nil
	}
	return items, nil
}

func (f *Fallback) SetItems(ctx context.Context, scope string, items map[string]string) error {
	if err := f.primary.SetItems(ctx, scope, items); err != nil {
		f.log.Warn().Err(err).Str("scope", scope).Msg("storage write failed, using memory")
		return f.secondary.SetItems(ctx, scope, items)
	}
	// Drop any stale outage copy so reads see the primary record.
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	return f.secondary.RemoveItems(ctx, scope, keys...)
}

// RemoveItems clears the fallback copy and then the primary. A primary
// failure is returned because the record may reappear once it recovers.
func (f *Fallback) RemoveItems(ctx context.Context, scope string, keys ...string) error {
	_ = f.secondary.RemoveItems(ctx, scope, keys...)
	return f.primary.RemoveItems(ctx, scope, keys...)
}
