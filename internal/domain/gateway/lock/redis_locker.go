package lock

import (
	"context"
	"time"

	"zipcode-web/internal/domain/model"
	"zipcode-web/pkg/redis"
)

const lockNamespace = "zipcode-reconciliation"

type RedisLocker struct {
	client  *redis.Client
	options *redis.LockOptions
	health  *redis.HealthChecker
}

var _ Locker = (*RedisLocker)(nil)

// NewRedisLocker holds keys for at most ttl
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	options := redis.NewLockOptions()
	options.TTL = ttl
	options.LockNamespace = lockNamespace

	return &RedisLocker{
		client:  client,
		options: options,
		health:  redis.NewHealthChecker(client),
	}
}

func (l *RedisLocker) WithLock(ctx context.Context, key string, fn func() error) error {
	return redis.LockWithFunc(ctx, l.client, key, l.options, fn)
}

// Health reports the Redis server shared by the lock and the lookup cache
func (l *RedisLocker) Health(ctx context.Context) model.ComponentHealthStatus {
	check := l.health.HealthCheck(ctx)
	return model.ComponentHealthStatus{
		Status:  model.HealthStatus(check.Status),
		Details: check.Details,
	}
}
