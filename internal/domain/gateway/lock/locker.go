package lock

import (
	"context"

	"zipcode-web/internal/domain/model"
)

// Locker serializes work on one key across application instances
type Locker interface {
	WithLock(ctx context.Context, key string, fn func() error) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
