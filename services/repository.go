package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"construction-tracker/backend/storage"
)

const dateLayout = "2006-01-02"

// Repository holds the authoritative in-memory collection for one record
// type and writes it through to the durable store as a whole on every
// mutation. Queries never touch storage.
type Repository[T any] struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	seed  []T
	items []T
}

func NewRepository[T any](store storage.Store, key string, seed []T) *Repository[T] {
	return &Repository[T]{store: store, key: key, seed: seed}
}

// Load reads the collection from the store. An absent key seeds the default
// collection and persists it immediately so the key exists on the next run.
func (r *Repository[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.store.Get(ctx, r.key)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrPersistence, r.key, err)
	}
	if raw == nil {
		r.items = append([]T(nil), r.seed...)
		return r.persistLocked(ctx)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrCorruptState, r.key, err)
	}
	r.items = items
	return nil
}

// All returns a copy of the current collection in stored order.
func (r *Repository[T]) All() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.items...)
}

// Replace swaps in the new collection value first and then persists it under
// the same key. A failed persist leaves memory on the new value.
func (r *Repository[T]) Replace(ctx context.Context, items []T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	return r.persistLocked(ctx)
}

func (r *Repository[T]) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, r.key, err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, r.key, err)
	}
	return nil
}
