package queue

import (
	"context"

	"zipcode-web/internal/domain/model"
)

// EventPublisher announces committed registrations to downstream consumers
type EventPublisher interface {
	PublishZipRegistered(ctx context.Context, event model.ZipRegisteredEvent) error
}

// HealthGateway reports the reachability of the outbound queue
type HealthGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
