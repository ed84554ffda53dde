package queue

import (
	"context"

	"zipcode-web/internal/domain/model"
)

// NoopPublisher drops every event. It is used when app.queue.enabled is false.
type NoopPublisher struct{}

func (NoopPublisher) PublishZipRegistered(context.Context, model.ZipRegisteredEvent) error {
	return nil
}

func (NoopPublisher) Health(context.Context) model.ComponentHealthStatus {
	return model.DisabledComponent()
}
