package ports

import "context"

// Storage is a scope-partitioned key-value medium standing in for the
// browser's origin-scoped storage. Multi-key writes and removals apply to all
// keys or none.
type Storage interface {
	// GetItems returns the values present for keys. Missing keys are absent
	// from the returned map.
	GetItems(ctx context.Context, scope string, keys ...string) (map[string]string, error)
	SetItems(ctx context.Context, scope string, items map[string]string) error
	RemoveItems(ctx context.Context, scope string, keys ...string) error
}
