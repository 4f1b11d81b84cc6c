// Package cache provides the durable selection storage backing the
// session manager, with Redis for deployments and an in-memory variant
// for tests and single-process use.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bazaarmind/console/internal/infrastructure/config"
)

// selectionKey is the fixed namespaced key holding the current shop id.
// There is exactly one selection per deployment scope.
const selectionKey = "bazaarmind:current_shop"

// RedisSelectionStore implements session.SelectionStore using Redis,
// suitable when several console instances share one selection.
type RedisSelectionStore struct {
	client *redis.Client
	key    string
}

// NewRedisSelectionStore creates a store with its own Redis connection
func NewRedisSelectionStore(cfg config.RedisConfig) (*RedisSelectionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSelectionStore{client: client, key: selectionKey}, nil
}

// NewRedisSelectionStoreWithClient creates a store sharing an existing client
func NewRedisSelectionStoreWithClient(client *redis.Client, key string) *RedisSelectionStore {
	if key == "" {
		key = selectionKey
	}
	return &RedisSelectionStore{client: client, key: key}
}

// LoadSelection returns the persisted shop id, empty when none was saved
func (s *RedisSelectionStore) LoadSelection(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load selection: %w", err)
	}
	return val, nil
}

// SaveSelection persists the shop id under the fixed key, without expiry
func (s *RedisSelectionStore) SaveSelection(ctx context.Context, shopID string) error {
	if err := s.client.Set(ctx, s.key, shopID, 0).Err(); err != nil {
		return fmt.Errorf("failed to save selection: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection
func (s *RedisSelectionStore) Close() error {
	return s.client.Close()
}
