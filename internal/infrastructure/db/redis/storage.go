package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRecordTTL = 30 * 24 * time.Hour

// Storage keeps each scope's items in one Redis hash.
// Key format: storage:<scope>
type Storage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStorage creates a Storage wrapping the given Redis client. Scopes expire
// ttl after their last write; a non-positive ttl uses defaultRecordTTL.
func NewStorage(client *redis.Client, ttl time.Duration) *Storage {
	if ttl <= 0 {
		ttl = defaultRecordTTL
	}
	return &Storage{client: client, ttl: ttl}
}

// GetItems reads the requested fields of the scope hash.
func (s *Storage) GetItems(ctx context.Context, scope string, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	vals, err := s.client.HMGet(ctx, s.key(scope), keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("storage get: %w", err)
	}
	for i, v := range vals {
		if str, ok := v.(string); ok {
			out[keys[i]] = str
		}
	}
	return out, nil
}

// SetItems writes all items and refreshes the scope TTL inside one MULTI/EXEC.
func (s *Storage) SetItems(ctx context.Context, scope string, items map[string]string) error {
	if len(items) == 0 {
		return nil
	}

	key := s.key(scope)
	fields := make([]any, 0, len(items)*2)
	for k, v := range items {
		fields = append(fields, k, v)
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields...)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage set: %w", err)
	}
	return nil
}

// RemoveItems deletes the given fields with a single HDEL.
func (s *Storage) RemoveItems(ctx context.Context, scope string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.HDel(ctx, s.key(scope), keys...).Err(); err != nil {
		return fmt.Errorf("storage remove: %w", err)
	}
	return nil
}

func (s *Storage) key(scope string) string {
	return fmt.Sprintf("storage:%s", scope)
}
