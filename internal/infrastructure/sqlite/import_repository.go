package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Importaciones-api/internal/domain/entity"
	"github.com/jhoicas/Importaciones-api/internal/domain/query"
	"github.com/jhoicas/Importaciones-api/internal/domain/repository"
	"github.com/jhoicas/Importaciones-api/internal/infrastructure/sqlbuild"
)

var _ repository.ImportRepository = (*ImportRepo)(nil)

// ImportRepo implementación de ImportRepository sobre SQLite.
type ImportRepo struct {
	db *sqlx.DB
}

// NewImportRepository construye el adaptador.
func NewImportRepository(db *sqlx.DB) *ImportRepo {
	return &ImportRepo{db: db}
}

// importRow fila tal como la devuelve SQLite (numéricos REAL, fecha RFC 3339 en TEXT).
type importRow struct {
	ID                  int64               `db:"id"`
	Despacho            string              `db:"despacho"`
	Item                string              `db:"item"`
	PosicionArancelaria string              `db:"posicion_arancelaria"`
	Mercaderia          string              `db:"mercaderia"`
	Importador          string              `db:"importador"`
	FOBDolar            decimal.NullDecimal `db:"fob_dolar"`
	Cantidad            decimal.NullDecimal `db:"cantidad"`
	ValorLista          decimal.NullDecimal `db:"valor_lista"`
	ValorPlanilla       decimal.NullDecimal `db:"valor_planilla"`
	ValorRes            decimal.NullDecimal `db:"valor_res"`
	Oficializacion      sql.NullString      `db:"oficializacion"`
	Observacion         string              `db:"observacion"`
	Extra               string              `db:"extra"`
}

func (r importRow) toEntity() (*entity.ImportRecord, error) {
	rec := &entity.ImportRecord{
		ID:                  r.ID,
		Despacho:            r.Despacho,
		Item:                r.Item,
		PosicionArancelaria: r.PosicionArancelaria,
		Mercaderia:          r.Mercaderia,
		Importador:          r.Importador,
		FOBDolar:            r.FOBDolar,
		Cantidad:            r.Cantidad,
		Observacion:         r.Observacion,
	}
	vals := map[string]decimal.NullDecimal{
		entity.ColValorLista:    r.ValorLista,
		entity.ColValorPlanilla: r.ValorPlanilla,
		entity.ColValorRes:      r.ValorRes,
	}
	for col, v := range vals {
		if !v.Valid {
			continue
		}
		if rec.Valoraciones == nil {
			rec.Valoraciones = make(map[string]decimal.Decimal, len(vals))
		}
		rec.Valoraciones[col] = v.Decimal
	}
	if r.Oficializacion.Valid && r.Oficializacion.String != "" {
		t, err := time.Parse(time.RFC3339, r.Oficializacion.String)
		if err != nil {
			return nil, fmt.Errorf("oficializacion %q: %w", r.Oficializacion.String, err)
		}
		rec.Oficializacion = &t
	}
	extra, err := sqlbuild.DecodeExtra([]byte(r.Extra))
	if err != nil {
		return nil, err
	}
	rec.Extra = extra
	return rec, nil
}

const insertQuery = `
	INSERT INTO importaciones (id, despacho, item, posicion_arancelaria, mercaderia, importador,
		fob_dolar, cantidad, valor_lista, valor_planilla, valor_res, oficializacion, observacion, extra)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ReplaceAll reemplaza la tabla completa dentro de una transacción.
// El id de cada fila es su posición en el archivo (1..n).
func (r *ImportRepo) ReplaceAll(ctx context.Context, dataset *entity.ImportDataset) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("importaciones.ReplaceAll begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM importaciones`); err != nil {
		return fmt.Errorf("importaciones.ReplaceAll delete: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("importaciones.ReplaceAll prepare: %w", err)
	}
	defer stmt.Close()

	for i, rec := range dataset.Records {
		rec.ID = int64(i + 1)
		extra, err := sqlbuild.EncodeExtra(rec.Extra)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			rec.ID, rec.Despacho, rec.Item, rec.PosicionArancelaria, rec.Mercaderia, rec.Importador,
			toReal(rec.FOBDolar), toReal(rec.Cantidad),
			valuation(rec, entity.ColValorLista), valuation(rec, entity.ColValorPlanilla), valuation(rec, entity.ColValorRes),
			toText(rec.Oficializacion), rec.Observacion, extra,
		); err != nil {
			return fmt.Errorf("importaciones.ReplaceAll insert fila %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("importaciones.ReplaceAll commit: %w", err)
	}
	return nil
}

// FindRanked filas del filtro ordenadas por valor unitario.
func (r *ImportRepo) FindRanked(ctx context.Context, f query.Filter, dir query.Direction, limit int) ([]*entity.ImportRecord, error) {
	q, args, err := sqlbuild.SQLite.Ranked(f, dir, limit)
	if err != nil {
		return nil, fmt.Errorf("importaciones.FindRanked: %w", err)
	}
	var rows []importRow
	if err := r.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("importaciones.FindRanked: %w", err)
	}
	return toEntities(rows)
}

// Suggest valores distintos del campo que contienen el fragmento.
func (r *ImportRepo) Suggest(ctx context.Context, field query.Field, fragment string, limit int) ([]string, error) {
	q, args, err := sqlbuild.SQLite.Suggest(field, fragment, limit)
	if err != nil {
		return nil, fmt.Errorf("importaciones.Suggest: %w", err)
	}
	values := []string{}
	if err := r.db.SelectContext(ctx, &values, q, args...); err != nil {
		return nil, fmt.Errorf("importaciones.Suggest: %w", err)
	}
	return values, nil
}

// UpdateObservation actualiza la observación por DESPACHO + ITEM.
func (r *ImportRepo) UpdateObservation(ctx context.Context, despacho, item, observacion string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE importaciones SET observacion = ? WHERE despacho = ? AND item = ?`,
		observacion, despacho, item,
	)
	if err != nil {
		return 0, fmt.Errorf("importaciones.UpdateObservation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("importaciones.UpdateObservation rows: %w", err)
	}
	return n, nil
}

// ListAll toda la tabla en orden de carga.
func (r *ImportRepo) ListAll(ctx context.Context) ([]*entity.ImportRecord, error) {
	var rows []importRow
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", sqlbuild.SelectColumns, sqlbuild.TableName)
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("importaciones.ListAll: %w", err)
	}
	return toEntities(rows)
}

// Count cantidad de filas cargadas.
func (r *ImportRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM importaciones`); err != nil {
		return 0, fmt.Errorf("importaciones.Count: %w", err)
	}
	return n, nil
}

func toEntities(rows []importRow) ([]*entity.ImportRecord, error) {
	out := make([]*entity.ImportRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toEntity()
		if err != nil {
			return nil, fmt.Errorf("importaciones: fila %d: %w", row.ID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func toReal(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}

func valuation(rec *entity.ImportRecord, col string) any {
	v, ok := rec.Valoraciones[col]
	if !ok {
		return nil
	}
	return v.InexactFloat64()
}

func toText(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
