// Package store abre el repositorio de importaciones según DB_DRIVER.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Importaciones-api/pkg/config"
)

// Open conecta, aplica el esquema y devuelve el repositorio junto con su cierre.
func Open(ctx context.Context, cfg config.DBConfig) (repository.ImportRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return postgres.NewImportRepository(pool), pool.Close, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewImportRepository(db), func() { _ = db.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("store: driver no soportado %q", cfg.Driver)
	}
}
