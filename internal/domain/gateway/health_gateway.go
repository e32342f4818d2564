package gateway

import (
	"context"

	"workon/internal/domain/model"
)

// HealthGateway is a named component taking part in the health report.
type HealthGateway interface {
	Name() string
	Health(ctx context.Context) model.ComponentHealthStatus
}
