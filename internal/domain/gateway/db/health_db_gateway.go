package db

import (
	"context"

	"workon/internal/domain/gateway"
	"workon/internal/domain/model"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type SQLHealthDBGateway struct {
	DB Pinger
}

var _ gateway.HealthGateway = (*SQLHealthDBGateway)(nil)

func NewSQLHealthDBGateway(db Pinger) *SQLHealthDBGateway {
	return &SQLHealthDBGateway{DB: db}
}

func (gateway *SQLHealthDBGateway) Name() string {
	return "database"
}

func (gateway *SQLHealthDBGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := gateway.DB.PingContext(ctx); err != nil {
		return model.Unhealthy(err)
	}
	return model.Healthy(string(model.StatusHealthy))
}
