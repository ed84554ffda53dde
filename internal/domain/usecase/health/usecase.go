package health

import (
	"context"

	"zipcode-web/internal/domain/model"
)

type UseCase interface {
	CheckHealth(ctx context.Context) model.HealthResponse
}

// ComponentGateway is implemented by every dependency reporting its health
type ComponentGateway interface {
	Health(ctx context.Context) model.ComponentHealthStatus
}
