package schedule

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"workon/internal/domain/usecase/health"
	"workon/pkg/log"
	"workon/pkg/msg"
)

// HealthScheduler periodically runs the health aggregation and logs degraded components
type HealthScheduler struct {
	cron           *cron.Cron
	useCase        health.UseCase
	cronExpression string
}

func NewHealthScheduler(useCase health.UseCase, cronExpression string) *HealthScheduler {
	return &HealthScheduler{
		cron:           cron.New(),
		useCase:        useCase,
		cronExpression: cronExpression,
	}
}

// InitHealthScheduleTasks registers the probe and starts the cron runner
func (scheduler *HealthScheduler) InitHealthScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.ProbeHealth); err != nil {
		log.Error(msg.GetMessage("health.probe.invalid-cron", scheduler.cronExpression, err))
		return fmt.Errorf("schedule health probe %q: %w", scheduler.cronExpression, err)
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("health.probe.scheduled", scheduler.cronExpression))
	return nil
}

func (scheduler *HealthScheduler) ProbeHealth() {
	report := scheduler.useCase.CheckHealth(context.Background())

	if report.Healthy() {
		log.Debug(msg.GetMessage("health.probe.healthy", report.Status, report.TotalDuration))
		return
	}

	log.Warn(msg.GetMessage("health.probe.unhealthy", report.Status, report.TotalDuration),
		zap.Any("components", report.Components),
	)
}

// Stop halts the cron runner; the returned context ends once a running probe finishes
func (scheduler *HealthScheduler) Stop() context.Context {
	return scheduler.cron.Stop()
}
