package catalog

import (
	"context"
	"io/fs"

	assistantroot "github.com/techstore/assistant"
	"github.com/techstore/assistant/internal/config"
	"github.com/techstore/assistant/internal/domain"
)

// Load reads the catalog from the configured source and returns the
// populated store. For the postgres source the pool is only held for the
// duration of the load.
func Load(ctx context.Context, cfg *config.Config) (*Store, error) {
	var products []domain.Product

	switch cfg.CatalogSource {
	case "postgres":
		pool, err := NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		migrationsFS, err := fs.Sub(assistantroot.MigrationsFS, "migrations")
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			return nil, err
		}

		products, err = LoadPostgres(ctx, pool)
		if err != nil {
			return nil, err
		}
	default:
		var err error
		products, err = LoadJSON(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
	}

	return NewStore(products), nil
}
