package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/stores"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

const version = "1.0.0"

// Endpoints are the live dependencies worth probing. Only the catalog is
// always present; redis and postgres are checked when configured.
type Endpoints struct {
	Catalog stores.CatalogStore
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "catalog",
			Timeout:   time.Second,
			SkipOnErr: false,
			Check:     CatalogCheck(endpoints.Catalog),
		},
	}

	if cfg.Storage.Driver == config.StorageRedis || cfg.RateConfig.Enabled {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	if cfg.Catalog.Source == config.CatalogPostgres {
		checks = append(checks, health.Config{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront",
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

// CatalogCheck fails until the one-shot catalog load has succeeded.
func CatalogCheck(catalog stores.CatalogStore) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		switch catalog.Status() {
		case stores.CatalogReady:
			return nil
		case stores.CatalogFailed:
			return fmt.Errorf("catalog load failed: %s", catalog.Err())
		default:
			return fmt.Errorf("catalog is still loading")
		}
	}
}
