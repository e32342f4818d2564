package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"workon/pkg/resource"
)

// DSN builds the lib/pq connection string from the app.health.database properties.
func DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		resource.GetString("app.health.database.host"),
		resource.GetString("app.health.database.port"),
		resource.GetString("app.health.database.username"),
		resource.GetString("app.health.database.password"),
		resource.GetString("app.health.database.database"),
		resource.GetString("app.health.database.ssl-mode"))
}

// Open returns a lazily connected pool; reachability is left to the health check.
func Open() (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	return db, nil
}
