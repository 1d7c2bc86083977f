package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Importaciones-api/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de la app.
// Si está definido DATABASE_URL se usa tal cual; si no, se construye el DSN desde DB_HOST, DB_PORT, etc.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC -> shopspring/decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS importaciones (
    id                   BIGINT PRIMARY KEY,
    despacho             TEXT NOT NULL DEFAULT '',
    item                 TEXT NOT NULL DEFAULT '',
    posicion_arancelaria TEXT NOT NULL DEFAULT '',
    mercaderia           TEXT NOT NULL DEFAULT '',
    importador           TEXT NOT NULL DEFAULT '',
    fob_dolar            NUMERIC,
    cantidad             NUMERIC,
    valor_lista          NUMERIC,
    valor_planilla       NUMERIC,
    valor_res            NUMERIC,
    oficializacion       TIMESTAMPTZ,
    observacion          TEXT NOT NULL DEFAULT '',
    extra                JSONB NOT NULL DEFAULT '{}'::jsonb
);
CREATE INDEX IF NOT EXISTS idx_importaciones_despacho_item ON importaciones (despacho, item);`

// Migrate crea la tabla de importaciones si no existe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrar esquema: %w", err)
	}
	return nil
}
