package health

import (
	"context"

	"workon/internal/domain/model"
)

type UseCase interface {
	// CheckHealth runs every registered health gateway and aggregates their results
	CheckHealth(ctx context.Context) model.HealthReport
}
