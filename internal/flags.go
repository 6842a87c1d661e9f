package internal

import (
	"context"
	"errors"
	"sync"

	"github.com/redis/go-redis/v9"
)

// KeyPostAuthFailure marks a processor decline observed after authorization.
// The next update inquiry consumes it and reports the transaction as refused.
const KeyPostAuthFailure = "riskgate:post_auth_failure:"

// IFlagStore is a one-shot marker store with get-then-clear semantics.
type IFlagStore interface {
	Set(ctx context.Context, key string) error
	TakeAndClear(ctx context.Context, key string) (bool, error)
}

// MemoryFlags keeps markers in process memory. Used in tests and in
// single-instance deployments without Redis.
type MemoryFlags struct {
	mu    sync.Mutex
	flags map[string]struct{}
}

func NewMemoryFlags() *MemoryFlags {
	return &MemoryFlags{flags: make(map[string]struct{})}
}

func (m *MemoryFlags) Set(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[key] = struct{}{}
	return nil
}

func (m *MemoryFlags) TakeAndClear(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.flags[key]
	delete(m.flags, key)
	return ok, nil
}

// RedisFlags shares markers between instances.
type RedisFlags struct {
	client *redis.Client
}

func NewRedisFlags(ctx context.Context, address, password string) (*RedisFlags, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &RedisFlags{client: client}, nil
}

func (r *RedisFlags) Set(ctx context.Context, key string) error {
	return r.client.Set(ctx, key, "1", 0).Err()
}

func (r *RedisFlags) TakeAndClear(ctx context.Context, key string) (bool, error) {
	err := r.client.GetDel(ctx, key).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
