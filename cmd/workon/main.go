package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"workon/configs"
	_ "workon/docs"
	"workon/internal/application/router"
	"workon/internal/application/schedule"
	"workon/internal/domain/gateway"
	"workon/internal/domain/gateway/cache"
	"workon/internal/domain/gateway/db"
	"workon/internal/domain/usecase/health"
	"workon/internal/domain/usecase/weather"
	"workon/internal/infra/database"
	"workon/internal/infra/redis"
	"workon/pkg/log"
	"workon/pkg/msg"
	"workon/pkg/resource"
)

// @title workon API
// @version 1.0
// @description Weather forecast placeholder service with health check.
// @BasePath /
func main() {
	defer log.Sync()
	log.Info(msg.GetMessage("app.start", configs.Env.ApplicationName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init health gateways
	var gateways []gateway.HealthGateway
	var closers []func() error

	if resource.GetBool("app.health.redis.enabled") {
		redisClient := redis.NewClient()
		closers = append(closers, redisClient.Close)
		gateways = append(gateways, cache.NewRedisHealthGateway(redisClient))
	}
	if resource.GetBool("app.health.database.enabled") {
		sqlDB, err := database.Open()
		if err != nil {
			log.Fatal(msg.GetMessage("app.error.config", err), zap.Error(err))
		}
		closers = append(closers, sqlDB.Close)
		gateways = append(gateways, db.NewSQLHealthDBGateway(sqlDB))
	}

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase()
	healthUseCase := health.NewHealthUseCase(resource.GetDuration("app.health.timeout"), gateways...)

	// Init Routes
	e := router.New(router.ConfigFromProperties(), router.Dependencies{
		WeatherUseCase: weatherUseCase,
		HealthUseCase:  healthUseCase,
	})
	e.Server.ReadTimeout = resource.GetDuration("app.server.read-timeout")
	e.Server.WriteTimeout = resource.GetDuration("app.server.write-timeout")
	e.Server.IdleTimeout = resource.GetDuration("app.server.idle-timeout")

	// Init Schedule
	var healthScheduler *schedule.HealthScheduler
	if resource.GetBool("app.health.probe.enabled") {
		healthScheduler = schedule.NewHealthScheduler(healthUseCase, resource.GetString("app.health.probe.cron"))
		if err := healthScheduler.InitHealthScheduleTasks(); err != nil {
			log.Fatal(msg.GetMessage("app.error.config", err), zap.Error(err))
		}
	}

	// Start Routes
	address := net.JoinHostPort("", resource.GetString("app.server.port"))
	go func() {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(msg.GetMessage("app.error.server", err), zap.Error(err))
			stop()
		}
	}()
	log.Info(msg.GetMessage("app.started", configs.Env.ApplicationName, address))

	<-ctx.Done()
	log.Info(msg.GetMessage("app.stopping", configs.Env.ApplicationName))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), resource.GetDuration("app.server.shutdown-timeout"))
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error(msg.GetMessage("app.error.shutdown", err), zap.Error(err))
	}
	if healthScheduler != nil {
		<-healthScheduler.Stop().Done()
	}
	for _, closeResource := range closers {
		_ = closeResource()
	}

	log.Info(msg.GetMessage("app.stopped", configs.Env.ApplicationName))
}
