package health

import (
	"context"
	"sync"
	"time"

	"workon/internal/domain/gateway"
	"workon/internal/domain/model"
)

type healthUseCase struct {
	gateways []gateway.HealthGateway
	timeout  time.Duration
}

// NewHealthUseCase builds the aggregation over gateways. A non-positive timeout leaves checks unbounded.
func NewHealthUseCase(timeout time.Duration, gateways ...gateway.HealthGateway) UseCase {
	return &healthUseCase{
		gateways: gateways,
		timeout:  timeout,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthReport {
	start := time.Now()
	components := make(map[string]model.ComponentHealthStatus, len(useCase.gateways))

	var (
		wg    sync.WaitGroup
		mutex sync.Mutex
	)
	for _, healthGateway := range useCase.gateways {
		wg.Add(1)
		go func(healthGateway gateway.HealthGateway) {
			defer wg.Done()
			health := useCase.check(ctx, healthGateway)

			mutex.Lock()
			components[healthGateway.Name()] = health
			mutex.Unlock()
		}(healthGateway)
	}
	wg.Wait()

	overallStatus := model.StatusHealthy
	for _, health := range components {
		if health.Status != model.StatusHealthy {
			overallStatus = model.StatusUnhealthy
		}
	}

	return model.HealthReport{
		Status:        overallStatus,
		TotalDuration: time.Since(start).String(),
		Components:    components,
	}
}

func (useCase *healthUseCase) check(ctx context.Context, healthGateway gateway.HealthGateway) model.ComponentHealthStatus {
	if useCase.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, useCase.timeout)
		defer cancel()
	}
	return healthGateway.Health(ctx)
}
