package health

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/superadmin-catalog/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Endpoints holds already-open handles that get an extra liveness probe.
type Endpoints struct {
	DB *sql.DB
}

func NewHealthHandler(cfg *config.Config, version string, endpoints *Endpoints) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check:   postgres.New(postgres.Config{DSN: cfg.Database.GetDSN()}),
		},
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check:   healthRedis.New(healthRedis.Config{DSN: cfg.RedisConnect.GetDSN()}),
		},
	}

	if endpoints != nil && endpoints.DB != nil {
		checks = append(checks, health.Config{
			Name:    "catalog-schema",
			Timeout: 3 * time.Second,
			Check:   schemaCheck(endpoints.DB),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    cfg.Otel.ServiceName,
			Version: version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// schemaCheck fails until migrations have created the catalog tables.
func schemaCheck(db *sql.DB) health.CheckFunc {
	return func(ctx context.Context) error {
		var exists bool

		err := db.QueryRowContext(ctx, `SELECT to_regclass('public.products') IS NOT NULL AND to_regclass('public.skus') IS NOT NULL`).Scan(&exists)
		if err != nil {
			return fmt.Errorf("checking catalog tables: %w", err)
		}

		if !exists {
			return fmt.Errorf("catalog tables are missing, run migrations")
		}

		return nil
	}
}
