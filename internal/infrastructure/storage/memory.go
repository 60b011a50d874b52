// Package storage provides in-process implementations of ports.Storage.
package storage

import (
	"context"
	"sync"
)

// Memory is a map-backed storage medium. A single lock makes multi-key
// writes atomic.
type Memory struct {
	mu     sync.RWMutex
	scopes map[string]map[string]string
}

// NewMemory returns an empty in-memory medium.
func NewMemory() *Memory {
	return &Memory{scopes: make(map[string]map[string]string)}
}

func (m *Memory) GetItems(_ context.Context, scope string, keys ...string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]string, len(keys))
	items := m.scopes[scope]
	for _, k := range keys {
		if v, ok := items[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (m *Memory) SetItems(_ context.Context, scope string, items map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.scopes[scope]
	if !ok {
		bucket = make(map[string]string, len(items))
		m.scopes[scope] = bucket
	}
	for k, v := range items {
		bucket[k] = v
	}
	return nil
}

func (m *Memory) RemoveItems(_ context.Context, scope string, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.scopes[scope]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(bucket, k)
	}
	if len(bucket) == 0 {
		delete(m.scopes, scope)
	}
	return nil
}

// Len returns the number of scopes holding at least one item.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.scopes)
}
