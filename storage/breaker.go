package storage

import (
	"context"
	"time"

	"construction-tracker/backend/logging"

	"github.com/sony/gobreaker"
)

// BreakerStore runs every storage call through a circuit breaker so a
// flapping database trips fast instead of stalling every command.
type BreakerStore struct {
	store Store
	cb    *gobreaker.CircuitBreaker
}

func NewBreakerStore(store Store) *BreakerStore {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "StorageCB",
		MaxRequests: 1,
		Timeout:     2 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
	return &BreakerStore{store: store, cb: cb}
}

func (b *BreakerStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.store.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.([]byte), nil
}

func (b *BreakerStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.store.Set(ctx, key, value)
	})
	return err
}

func (b *BreakerStore) Remove(ctx context.Context, key string) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, b.store.Remove(ctx, key)
	})
	return err
}
