package redis

import (
	"net"

	"github.com/redis/go-redis/v9"

	"workon/pkg/resource"
)

// NewClient builds a client from the app.health.redis properties. No connection is made until first use.
func NewClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:       net.JoinHostPort(resource.GetString("app.health.redis.host"), resource.GetString("app.health.redis.port")),
		Password:   resource.GetString("app.health.redis.password"),
		DB:         resource.GetInt("app.health.redis.database"),
		MaxRetries: 1,
	})
}
