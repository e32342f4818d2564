package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"workon/internal/domain/gateway"
	"workon/internal/domain/model"
)

// Pinger is satisfied by *redis.Client.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type RedisHealthGateway struct {
	client Pinger
}

var _ gateway.HealthGateway = (*RedisHealthGateway)(nil)

func NewRedisHealthGateway(client Pinger) *RedisHealthGateway {
	return &RedisHealthGateway{client: client}
}

func (gateway *RedisHealthGateway) Name() string {
	return "redis"
}

func (gateway *RedisHealthGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	pong, err := gateway.client.Ping(ctx).Result()
	if err != nil {
		return model.Unhealthy(err)
	}
	return model.Healthy(pong)
}
