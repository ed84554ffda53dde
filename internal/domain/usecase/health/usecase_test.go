package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"zipcode-web/internal/domain/model"
)

type staticGateway model.HealthStatus

func (s staticGateway) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.HealthStatus(s)}
}

func TestCheckHealth(t *testing.T) {
	up := staticGateway(model.StatusUp)
	down := staticGateway(model.StatusDown)
	unknown := staticGateway(model.StatusUnknown)

	cases := []struct {
		name     string
		db       ComponentGateway
		cache    ComponentGateway
		queue    ComponentGateway
		expected model.HealthStatus
	}{
		{name: "all up", db: up, cache: up, queue: up, expected: model.StatusUp},
		{name: "optional components disabled", db: up, cache: unknown, queue: unknown, expected: model.StatusUp},
		{name: "database down", db: down, cache: unknown, queue: unknown, expected: model.StatusDown},
		{name: "queue down", db: up, cache: up, queue: down, expected: model.StatusDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			response := NewHealthUseCase(tc.db, tc.cache, tc.queue).CheckHealth(context.Background())
			assert.Equal(t, tc.expected, response.Status)
			assert.Equal(t, model.HealthStatus(tc.cache.(staticGateway)), response.Cache.Status)
		})
	}
}
