// Package sqlite adaptador de persistencia sobre SQLite (driver puro Go, sin cgo).
// Es el motor por defecto: un único archivo, igual que la herramienta de escritorio original.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryPath abre una base en memoria (tests).
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS importaciones (
    id                   INTEGER PRIMARY KEY,
    despacho             TEXT NOT NULL DEFAULT '',
    item                 TEXT NOT NULL DEFAULT '',
    posicion_arancelaria TEXT NOT NULL DEFAULT '',
    mercaderia           TEXT NOT NULL DEFAULT '',
    importador           TEXT NOT NULL DEFAULT '',
    fob_dolar            REAL,
    cantidad             REAL,
    valor_lista          REAL,
    valor_planilla       REAL,
    valor_res            REAL,
    oficializacion       TEXT,
    observacion          TEXT NOT NULL DEFAULT '',
    extra                TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_importaciones_despacho_item ON importaciones (despacho, item);`

// Open abre (o crea) la base SQLite en path y aplica el esquema.
// En memoria se limita el pool a una conexión: cada conexión tendría su propia base.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := path
	if path != MemoryPath {
		dsn = path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: aplicar esquema: %w", err)
	}
	return db, nil
}
