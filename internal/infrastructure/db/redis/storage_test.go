package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, ttl time.Duration) (*Storage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStorage(client, ttl), mr
}

func TestStorage_SetAndGet(t *testing.T) {
	s, mr := newTestStorage(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, "scope-1", map[string]string{"user": `{"id":"1"}`, "token": "tok"}))

	items, err := s.GetItems(ctx, "scope-1", "user", "token", "missing")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"user": `{"id":"1"}`, "token": "tok"}, items)

	assert.Equal(t, "tok", mr.HGet("storage:scope-1", "token"))
	assert.Equal(t, time.Hour, mr.TTL("storage:scope-1"))
}

func TestStorage_GetUnknownScope(t *testing.T) {
	s, _ := newTestStorage(t, time.Hour)

	items, err := s.GetItems(context.Background(), "nobody", "user", "token")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorage_RemoveItems(t *testing.T) {
	s, mr := newTestStorage(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, "scope-1", map[string]string{"user": "u", "token": "t"}))
	require.NoError(t, s.RemoveItems(ctx, "scope-1", "user", "token"))
	assert.False(t, mr.Exists("storage:scope-1"))

	// Removing again is a no-op.
	require.NoError(t, s.RemoveItems(ctx, "scope-1", "user", "token"))
}

func TestStorage_ScopesExpire(t *testing.T) {
	s, mr := newTestStorage(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, s.SetItems(ctx, "scope-1", map[string]string{"user": "u", "token": "t"}))
	mr.FastForward(2 * time.Minute)

	items, err := s.GetItems(ctx, "scope-1", "user", "token")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorage_DefaultTTL(t *testing.T) {
	s, _ := newTestStorage(t, 0)
	assert.Equal(t, defaultRecordTTL, s.ttl)
}

func TestStorage_Unavailable(t *testing.T) {
	s, mr := newTestStorage(t, time.Hour)
	mr.Close()
	ctx := context.Background()

	_, err := s.GetItems(ctx, "scope-1", "user")
	assert.Error(t, err)
	assert.Error(t, s.SetItems(ctx, "scope-1", map[string]string{"user": "u"}))
	assert.Error(t, s.RemoveItems(ctx, "scope-1", "user"))
}
