package lock

import (
	"context"

	"zipcode-web/internal/domain/model"
)

// NoopLocker runs fn directly. The database unique indexes still reject concurrent duplicates.
type NoopLocker struct{}

func (NoopLocker) WithLock(_ context.Context, _ string, fn func() error) error {
	return fn()
}

func (NoopLocker) Health(context.Context) model.ComponentHealthStatus {
	return model.DisabledComponent()
}
