package services

import (
	"context"
	"errors"
	"testing"

	"construction-tracker/backend/models"
	"construction-tracker/backend/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingStore wraps a real store and fails selected calls, for exercising
// the persistence-error paths.
type failingStore struct {
	storage.Store
	failGet bool
	failSet bool
}

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet {
		return nil, errors.New("disk error")
	}
	return s.Store.Get(ctx, key)
}

func (s *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if s.failSet {
		return errors.New("disk error")
	}
	return s.Store.Set(ctx, key, value)
}

func TestRepositoryLoadSeedsAbsentKey(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	seed := []models.ConstructionLog{{ID: "1", WorkItems: "Roadbed leveling"}}

	repo := NewRepository(store, "test_logs", seed)
	require.NoError(t, repo.Load(ctx))

	assert.Equal(t, seed, repo.All())

	// The seed must be written through immediately so the key exists for
	// the next run.
	raw, err := store.Get(ctx, "test_logs")
	require.NoError(t, err)
	require.NotNil(t, raw)

	second := NewRepository(store, "test_logs", []models.ConstructionLog{})
	require.NoError(t, second.Load(ctx))
	assert.Equal(t, seed, second.All())
}

func TestRepositoryRoundTripPreservesOrderAndFields(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	repo := NewRepository(store, "test_logs", []models.ConstructionLog{})
	require.NoError(t, repo.Load(ctx))

	logs := []models.ConstructionLog{
		{ID: "3", Date: "2024-03-01", Weather: "Rain", ProjectRef: "Bridge B", WorkItems: "Pile driving", Workers: 12, Notes: "half day"},
		{ID: "2", Date: "2024-02-01", Weather: "Sunny", ProjectRef: "Bridge B", WorkItems: "Excavation", Workers: 7},
		{ID: "1", Date: "2024-01-01", Weather: "Cloudy", ProjectRef: "Road A", WorkItems: "Survey", Workers: 2},
	}
	require.NoError(t, repo.Replace(ctx, logs))

	reloaded := NewRepository(store, "test_logs", []models.ConstructionLog{})
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, logs, reloaded.All())
}

func TestRepositoryLoadCorruptBytes(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "test_logs", []byte("{not json")))

	repo := NewRepository(store, "test_logs", []models.ConstructionLog{})
	err := repo.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptState)
}

func TestRepositoryLoadReadFailure(t *testing.T) {
	store := &failingStore{Store: storage.NewMemoryStore(), failGet: true}
	repo := NewRepository(store, "test_logs", []models.ConstructionLog{})
	err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestRepositoryReplaceFailureLeavesMemoryMutated(t *testing.T) {
	ctx := context.Background()
	memory := storage.NewMemoryStore()
	store := &failingStore{Store: memory}

	repo := NewRepository(store, "test_logs", []models.ConstructionLog{})
	require.NoError(t, repo.Load(ctx))

	store.failSet = true
	err := repo.Replace(ctx, []models.ConstructionLog{{ID: "9"}})
	assert.ErrorIs(t, err, ErrPersistence)

	// Memory holds the new collection while durable storage still has the
	// old one; the divergence is deliberate.
	assert.Len(t, repo.All(), 1)
	raw, getErr := memory.Get(ctx, "test_logs")
	require.NoError(t, getErr)
	assert.JSONEq(t, "[]", string(raw))
}
