// Package storage provides the durable key-value adapter the record stores
// persist through. Each store serializes its whole collection as one opaque
// value under one key.
package storage

import "context"

// Store is the persistence primitive: async get/set/remove by key. Get
// returns a nil slice and nil error when the key has never been written.
// Implementations may fail any call with an I/O error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
